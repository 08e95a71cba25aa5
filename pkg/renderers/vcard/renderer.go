// Package vcard exports a contact as a vCard 3.0 card.
package vcard

import (
	"context"
	"regexp"
	"strings"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/render"
	"github.com/goliatone/go-sigstudio/pkg/social"
)

const lineBreak = "\r\n"

// ContentType is the media type of the export.
const ContentType = "text/vcard; charset=utf-8"

var whitespace = regexp.MustCompile(`\s+`)

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns the vCard renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return render.FormatVCard
}

func (r *Renderer) ContentType() string {
	return ContentType
}

func (r *Renderer) Render(ctx context.Context, sig model.Signature, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(Format(sig.Contact)), nil
}

// Format builds the card. Lines are CRLF separated in a fixed order and
// there is no line break after END:VCARD.
func Format(contact model.ContactData) string {
	contact = contact.Trimmed()

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + escape(contact.FullName()),
		"N:" + escape(contact.LastName) + ";" + escape(contact.FirstName) + ";;;",
	}
	add := func(name, value string) {
		if value != "" {
			lines = append(lines, name+":"+value)
		}
	}
	add("ORG", escape(contact.Company))
	add("TITLE", escape(contact.Title))
	add("EMAIL", escape(contact.Email))
	add("TEL", escape(contact.Phone))
	add("URL", social.WebsiteURL(contact.Website))
	for _, link := range social.Links(contact) {
		add("URL", link.URL)
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, lineBreak)
}

// Filename is the download name: the full name with whitespace runs replaced
// by underscores, suffixed with "_signature.vcf".
func Filename(contact model.ContactData) string {
	return whitespace.ReplaceAllString(contact.FullName(), "_") + "_signature.vcf"
}

func escape(value string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		",", `\,`,
		";", `\;`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return replacer.Replace(value)
}
