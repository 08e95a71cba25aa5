package model

import (
	"fmt"
	"strings"
)

// TemplateKind names one of the fixed signature layouts.
type TemplateKind string

const (
	TemplateModern       TemplateKind = "modern"
	TemplateClassic      TemplateKind = "classic"
	TemplateMinimal      TemplateKind = "minimal"
	TemplateCorporate    TemplateKind = "corporate"
	TemplateProfessional TemplateKind = "professional"
	TemplateExecutive    TemplateKind = "executive"
)

// DefaultTemplate is used when no template was chosen.
const DefaultTemplate = TemplateModern

// ImageStyle controls how the profile image is presented.
type ImageStyle string

const (
	ImageRounded ImageStyle = "rounded"
	ImageSquare  ImageStyle = "square"
	ImageHidden  ImageStyle = "hidden"
)

// Layout is the structural family a template belongs to.
type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
	LayoutTextOnly   Layout = "text-only"
)

// TemplateSpec describes the presentation switches for a template.
type TemplateSpec struct {
	Kind          TemplateKind `json:"kind"`
	ImageStyle    ImageStyle   `json:"imageStyle"`
	Layout        Layout       `json:"layout"`
	ShowTitle     bool         `json:"showTitle"`
	ShowCompany   bool         `json:"showCompany"`
	CompanyWeight string       `json:"companyWeight"`
	Description   string       `json:"description"`
}

// ShowsImage reports whether the template renders an image block.
func (s TemplateSpec) ShowsImage() bool {
	return s.ImageStyle != ImageHidden
}

var templateOrder = []TemplateKind{
	TemplateModern,
	TemplateClassic,
	TemplateMinimal,
	TemplateCorporate,
	TemplateProfessional,
	TemplateExecutive,
}

var templateSpecs = map[TemplateKind]TemplateSpec{
	TemplateModern: {
		Kind:          TemplateModern,
		ImageStyle:    ImageRounded,
		Layout:        LayoutHorizontal,
		ShowTitle:     true,
		ShowCompany:   true,
		CompanyWeight: "normal",
		Description:   "Clean lines with colored accent border",
	},
	TemplateClassic: {
		Kind:          TemplateClassic,
		ImageStyle:    ImageSquare,
		Layout:        LayoutHorizontal,
		ShowTitle:     true,
		ShowCompany:   true,
		CompanyWeight: "normal",
		Description:   "Traditional professional layout",
	},
	TemplateMinimal: {
		Kind:          TemplateMinimal,
		ImageStyle:    ImageHidden,
		Layout:        LayoutTextOnly,
		CompanyWeight: "normal",
		Description:   "Clean, distraction-free text design",
	},
	TemplateCorporate: {
		Kind:          TemplateCorporate,
		ImageStyle:    ImageSquare,
		Layout:        LayoutVertical,
		ShowTitle:     true,
		ShowCompany:   true,
		CompanyWeight: "bold",
		Description:   "Formal business-focused with border",
	},
	TemplateProfessional: {
		Kind:          TemplateProfessional,
		ImageStyle:    ImageRounded,
		Layout:        LayoutHorizontal,
		ShowTitle:     true,
		ShowCompany:   true,
		CompanyWeight: "semibold",
		Description:   "Elegant with gradient background",
	},
	TemplateExecutive: {
		Kind:          TemplateExecutive,
		ImageStyle:    ImageRounded,
		Layout:        LayoutHorizontal,
		ShowTitle:     true,
		ShowCompany:   true,
		CompanyWeight: "bold",
		Description:   "Premium design with shadows",
	},
}

// TemplateKinds returns every template in catalogue order.
func TemplateKinds() []TemplateKind {
	return append([]TemplateKind(nil), templateOrder...)
}

// Valid reports whether k is one of the known templates.
func (k TemplateKind) Valid() bool {
	_, ok := templateSpecs[k]
	return ok
}

// Spec returns the template's presentation switches. Unknown kinds resolve
// to the default template.
func (k TemplateKind) Spec() TemplateSpec {
	if spec, ok := templateSpecs[k]; ok {
		return spec
	}
	return templateSpecs[DefaultTemplate]
}

func (k TemplateKind) String() string {
	return string(k)
}

// ParseTemplateKind resolves a template name case-insensitively. An empty
// name yields DefaultTemplate.
func ParseTemplateKind(name string) (TemplateKind, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return DefaultTemplate, nil
	}
	kind := TemplateKind(trimmed)
	if !kind.Valid() {
		return "", fmt.Errorf("model: unknown template %q", name)
	}
	return kind, nil
}
