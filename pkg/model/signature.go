package model

// Signature is the complete render input: contact data, template and size
// selection, and the embeddable image reference (a data URI, or empty to use
// the built-in placeholder).
type Signature struct {
	Contact  ContactData  `json:"contact" yaml:"contact"`
	Template TemplateKind `json:"template,omitempty" yaml:"template,omitempty"`
	Size     SizeProfile  `json:"size,omitempty" yaml:"size,omitempty"`
	Image    string       `json:"image,omitempty" yaml:"image,omitempty"`
}

// Normalized returns a copy with trimmed contact fields and unknown or empty
// template/size selections replaced by their defaults.
func (s Signature) Normalized() Signature {
	out := s
	out.Contact = s.Contact.Trimmed()
	if !out.Template.Valid() {
		out.Template = DefaultTemplate
	}
	if !out.Size.Valid() {
		out.Size = DefaultSize
	}
	return out
}

// Spec returns the presentation switches of the selected template.
func (s Signature) Spec() TemplateSpec {
	return s.Template.Spec()
}
