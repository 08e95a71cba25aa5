package studio

import "github.com/goliatone/go-sigstudio/pkg/model"

// TemplateInfo describes a template for listings.
type TemplateInfo struct {
	model.TemplateSpec
	Default bool `json:"default,omitempty"`
}

// SizeInfo describes a size profile for listings.
type SizeInfo struct {
	Name    model.SizeProfile `json:"name"`
	Scale   float64           `json:"scale"`
	Default bool              `json:"default,omitempty"`
}

// Catalogue is the set of selectable templates and sizes.
type Catalogue struct {
	Templates []TemplateInfo `json:"templates"`
	Sizes     []SizeInfo     `json:"sizes"`
}

// Templates lists the built-in templates and size profiles in display order.
func Templates() Catalogue {
	var out Catalogue
	for _, kind := range model.TemplateKinds() {
		out.Templates = append(out.Templates, TemplateInfo{
			TemplateSpec: kind.Spec(),
			Default:      kind == model.DefaultTemplate,
		})
	}
	for _, size := range model.SizeProfiles() {
		out.Sizes = append(out.Sizes, SizeInfo{
			Name:    size,
			Scale:   size.Scale(),
			Default: size == model.DefaultSize,
		})
	}
	return out
}
