package styles

import (
	"math"
	"strconv"

	"github.com/goliatone/go-sigstudio/pkg/model"
	theme "github.com/goliatone/go-theme"
)

const manifestVersion = "2.0.0"

const (
	systemFont = "-apple-system, BlinkMacSystemFont, Segoe UI, Roboto, Arial, sans-serif"
	serifFont  = "Georgia, Times New Roman, serif"
	arialFont  = "Arial, Helvetica, sans-serif"
)

// templateTokens is the medium-size style table keyed by template.
var templateTokens = map[model.TemplateKind]map[string]string{
	model.TemplateModern: tokens(systemFont, DensityMedium, map[string]string{
		TokenNameSize:            "22",
		TokenNameWeight:          "700",
		TokenNameMargin:          "6",
		TokenTitleSize:           "15",
		TokenTitleColor:          "#666666",
		TokenTitleWeight:         "500",
		TokenTitleMargin:         "8",
		TokenCompanySize:         "17",
		TokenCompanyColor:        AccentValue,
		TokenCompanyMargin:       "8",
		TokenImageSize:           "80",
		TokenImageBorder:         "3",
		TokenCellPadding:         "20",
		TokenCellWidth:           "95",
		TokenContainerInset:      "20",
		TokenContainerAccentBar:  "4",
		TokenContainerBackground: "linear-gradient(135deg, #ffffff 0%, #f8f9fa 100%)",
	}),
	model.TemplateClassic: tokens(serifFont, DensityCompact, map[string]string{
		TokenNameSize:          "20",
		TokenNameWeight:        "600",
		TokenNameMargin:        "5",
		TokenTitleSize:         "14",
		TokenTitleStyle:        "italic",
		TokenTitleMargin:       "5",
		TokenCompanySize:       "16",
		TokenCompanyColor:      "#333333",
		TokenCompanyMargin:     "8",
		TokenImageSize:         "80",
		TokenCellPadding:       "20",
		TokenCellWidth:         "95",
		TokenContainerPaddingY: "4",
	}),
	model.TemplateMinimal: tokens(systemFont, DensityCompact, map[string]string{
		TokenNameSize:    "18",
		TokenNameWeight:  "600",
		TokenNameMargin:  "3",
		TokenContactSize: "13",
	}),
	model.TemplateCorporate: tokens(arialFont, DensityMedium, map[string]string{
		TokenAlign:                "center",
		TokenNameSize:             "20",
		TokenNameWeight:           "700",
		TokenNameMargin:           "6",
		TokenNameTransform:        "uppercase",
		TokenNameSpacing:          "0.8px",
		TokenTitleSize:            "14",
		TokenTitleMargin:          "6",
		TokenCompanySize:          "18",
		TokenCompanyColor:         "#333333",
		TokenCompanyMargin:        "10",
		TokenCompanyTransform:     "uppercase",
		TokenImageSize:            "90",
		TokenImageBorder:          "3",
		TokenCellPadding:          "16",
		TokenContainerPaddingY:    "24",
		TokenContainerPaddingX:    "24",
		TokenContainerBorder:      "2",
		TokenContainerBorderColor: AccentValue,
		TokenContainerRadius:      "8",
		TokenContainerBackground:  "#fafafa",
	}),
	model.TemplateProfessional: tokens(serifFont, DensityLoose, map[string]string{
		TokenNameSize:             "24",
		TokenNameWeight:           "700",
		TokenNameMargin:           "8",
		TokenTitleSize:            "16",
		TokenTitleColor:           "#555555",
		TokenTitleStyle:           "italic",
		TokenTitleMargin:          "8",
		TokenCompanySize:          "18",
		TokenCompanyColor:         AccentValue,
		TokenCompanyMargin:        "10",
		TokenImageSize:            "85",
		TokenImageBorder:          "4",
		TokenCellPadding:          "24",
		TokenCellWidth:            "100",
		TokenContainerPaddingY:    "28",
		TokenContainerPaddingX:    "28",
		TokenContainerBorder:      "1",
		TokenContainerBorderColor: "#dee2e6",
		TokenContainerRadius:      "12",
		TokenContainerBackground:  "#ffffff",
		TokenContainerShadow:      "0 4px 12px rgba(0, 0, 0, 0.08)",
	}),
	model.TemplateExecutive: tokens(systemFont, DensityLoose, map[string]string{
		TokenNameSize:            "26",
		TokenNameWeight:          "800",
		TokenNameMargin:          "10",
		TokenTitleSize:           "17",
		TokenTitleColor:          "#444444",
		TokenTitleWeight:         "600",
		TokenTitleMargin:         "10",
		TokenTitleTransform:      "uppercase",
		TokenTitleSpacing:        "1.2px",
		TokenCompanySize:         "19",
		TokenCompanyColor:        "#222222",
		TokenCompanyMargin:       "12",
		TokenImageSize:           "95",
		TokenImageBorder:         "5",
		TokenImageSide:           "right",
		TokenCellPadding:         "28",
		TokenCellWidth:           "110",
		TokenContainerPaddingY:   "32",
		TokenContainerPaddingX:   "32",
		TokenContainerRadius:     "16",
		TokenContainerBackground: "#ffffff",
		TokenContainerShadow:     "0 8px 24px rgba(0, 0, 0, 0.12)",
	}),
}

var templateLayouts = map[model.TemplateKind]string{
	model.TemplateModern:       "layouts/horizontal.tpl",
	model.TemplateClassic:      "layouts/horizontal.tpl",
	model.TemplateMinimal:      "layouts/minimal.tpl",
	model.TemplateCorporate:    "layouts/card.tpl",
	model.TemplateProfessional: "layouts/professional.tpl",
	model.TemplateExecutive:    "layouts/executive.tpl",
}

// tokens fills the shared defaults, applies the density level, then layers
// the template overrides on top.
func tokens(font string, density Density, overrides map[string]string) map[string]string {
	out := map[string]string{
		TokenFontFamily:        font,
		TokenAlign:             "left",
		TokenLineHeight:        density.LineHeight,
		TokenGap:               strconv.Itoa(density.Gap),
		TokenNameColor:         "#222222",
		TokenNameWeight:        "700",
		TokenTitleColor:        "#666666",
		TokenTitleWeight:       "normal",
		TokenTitleStyle:        "normal",
		TokenCompanyColor:      "#333333",
		TokenContactSize:       "14",
		TokenContactColor:      "#666666",
		TokenImageBorder:       "0",
		TokenImageSide:         "left",
		TokenCellPadding:       "0",
		TokenCellWidth:         "0",
		TokenContainerPaddingY: "0",
		TokenContainerPaddingX: "0",
		TokenContainerInset:    "0",
		TokenContainerBorder:   "0",
		TokenContainerRadius:   "0",
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// Manifest builds the go-theme manifest for a template. The base tokens are
// the medium profile; every size profile is registered as a variant with its
// scaled pixel tokens.
func Manifest(kind model.TemplateKind) *theme.Manifest {
	if !kind.Valid() {
		kind = model.DefaultTemplate
	}
	base := templateTokens[kind]

	manifest := &theme.Manifest{
		Name:    kind.String(),
		Version: manifestVersion,
		Tokens:  copyTokens(base),
		Templates: map[string]string{
			PartialLayout: templateLayouts[kind],
		},
		Variants: make(map[string]theme.Variant, len(model.SizeProfiles())),
	}
	for _, size := range model.SizeProfiles() {
		manifest.Variants[size.String()] = theme.Variant{
			Tokens: ScaleTokens(base, size.Scale()),
		}
	}
	return manifest
}

// Manifests returns one manifest per template in catalogue order.
func Manifests() []*theme.Manifest {
	kinds := model.TemplateKinds()
	out := make([]*theme.Manifest, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, Manifest(kind))
	}
	return out
}

// ScaleTokens returns the pixel tokens of base multiplied by factor and
// rounded to whole pixels. Non-numeric values are skipped.
func ScaleTokens(base map[string]string, factor float64) map[string]string {
	out := make(map[string]string, len(scaledTokens))
	for _, key := range scaledTokens {
		value, ok := base[key]
		if !ok {
			continue
		}
		px, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		out[key] = strconv.Itoa(Scale(px, factor))
	}
	return out
}

// Scale multiplies px by factor rounding half away from zero.
func Scale(px int, factor float64) int {
	return int(math.Round(float64(px) * factor))
}

func copyTokens(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
