// Package text renders the plain-text signature fallback.
package text

import (
	"context"
	"strings"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/render"
	"github.com/goliatone/go-sigstudio/pkg/social"
)

// Contact line prefixes.
const (
	PrefixEmail   = "📧"
	PrefixPhone   = "📱"
	PrefixWebsite = "🌐"
)

// Separator divides the identity block from the contact lines.
const Separator = "---"

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns the plain-text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return render.FormatText
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes name, title, company, the separator, the non-empty contact
// lines and one "Platform: url" line per populated link.
func (r *Renderer) Render(ctx context.Context, sig model.Signature, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(Format(sig)), nil
}

// Format is the pure text rendering used by Render.
func Format(sig model.Signature) string {
	contact := sig.Normalized().Contact

	var b strings.Builder
	line := func(parts ...string) {
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}

	line(contact.FullName())
	if contact.Title != "" {
		line(contact.Title)
	}
	if contact.Company != "" {
		line(contact.Company)
	}
	b.WriteString("\n" + Separator + "\n\n")

	if contact.Email != "" {
		line(PrefixEmail, contact.Email)
	}
	if contact.Phone != "" {
		line(PrefixPhone, contact.Phone)
	}
	if url := social.WebsiteURL(contact.Website); url != "" {
		line(PrefixWebsite, url)
	}
	for _, link := range social.Links(contact) {
		line(link.Name+":", link.URL)
	}
	return b.String()
}
