package html

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/social"
	"github.com/goliatone/go-sigstudio/pkg/styles"
)

// Contact line glyphs, in render order.
const (
	IconEmail   = "✉"
	IconPhone   = "☎"
	IconWebsite = "🌐"
)

// Contact line kinds.
const (
	LineEmail   = "email"
	LinePhone   = "phone"
	LineWebsite = "website"
)

// contactLine carries the raw value; the website text is shortened by the
// displayurl filter in the contact partial.
type contactLine struct {
	Kind string `json:"kind"`
	Icon string `json:"icon"`
	Text string `json:"text"`
	Href string `json:"href"`
}

type imageView struct {
	Src  string `json:"src"`
	Alt  string `json:"alt"`
	Size string `json:"size"`
}

func contactLines(contact model.ContactData) []contactLine {
	var lines []contactLine
	if email := contact.Email; email != "" {
		lines = append(lines, contactLine{Kind: LineEmail, Icon: IconEmail, Text: email, Href: "mailto:" + email})
	}
	if phone := contact.Phone; phone != "" {
		lines = append(lines, contactLine{Kind: LinePhone, Icon: IconPhone, Text: phone, Href: "tel:" + dialable(phone)})
	}
	if href := social.WebsiteURL(contact.Website); href != "" {
		lines = append(lines, contactLine{
			Kind: LineWebsite,
			Icon: IconWebsite,
			Text: contact.Website,
			Href: href,
		})
	}
	return lines
}

func dialable(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

func imageFor(sig model.Signature, st styles.Styles) *imageView {
	if !sig.Spec().ShowsImage() {
		return nil
	}
	src := strings.TrimSpace(sig.Image)
	if src == "" {
		src = PlaceholderImage
	}
	return &imageView{
		Src:  src,
		Alt:  sig.Contact.FullName(),
		Size: strconv.Itoa(st.ImageSize),
	}
}

func identity(sig model.Signature) map[string]any {
	spec := sig.Spec()
	data := map[string]any{
		"name":    sig.Contact.FullName(),
		"title":   "",
		"company": "",
	}
	if spec.ShowTitle {
		data["title"] = sig.Contact.Title
	}
	if spec.ShowCompany {
		data["company"] = sig.Contact.Company
	}
	return data
}
