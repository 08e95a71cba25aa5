package styles

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-sigstudio/pkg/model"
	theme "github.com/goliatone/go-theme"
)

func TestScale_RoundsToWholePixels(t *testing.T) {
	cases := []struct {
		px     int
		factor float64
		want   int
	}{
		{22, 0.85, 19},
		{22, 1.2, 26},
		{80, 1.2, 96},
		{3, 0.85, 3},
		{14, 0.85, 12},
		{0, 1.2, 0},
	}
	for _, tc := range cases {
		if got := Scale(tc.px, tc.factor); got != tc.want {
			t.Fatalf("Scale(%d, %v): want %d, got %d", tc.px, tc.factor, tc.want, got)
		}
	}
}

func TestManifest_HasVariantPerSize(t *testing.T) {
	for _, kind := range model.TemplateKinds() {
		manifest := Manifest(kind)
		if manifest.Name != kind.String() {
			t.Fatalf("manifest name: want %s, got %s", kind, manifest.Name)
		}
		if manifest.Templates[PartialLayout] == "" {
			t.Fatalf("%s: layout partial missing", kind)
		}
		for _, size := range model.SizeProfiles() {
			if _, ok := manifest.Variants[size.String()]; !ok {
				t.Fatalf("%s: variant %s missing", kind, size)
			}
		}
	}
}

func TestCatalog_SelectDefaultsAndErrors(t *testing.T) {
	catalog := DefaultCatalog()

	selection, err := catalog.Select("", "")
	if err != nil {
		t.Fatalf("select defaults: %v", err)
	}
	if selection.Theme != model.DefaultTemplate.String() || selection.Variant != model.DefaultSize.String() {
		t.Fatalf("unexpected default selection: %s/%s", selection.Theme, selection.Variant)
	}

	if _, err := catalog.Select("Executive", "LARGE"); err != nil {
		t.Fatalf("select is case-insensitive: %v", err)
	}
	if _, err := catalog.Select("retro", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := catalog.Select("modern", "huge"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme for variant, got %v", err)
	}

	if got := len(catalog.Names()); got != len(model.TemplateKinds()) {
		t.Fatalf("expected %d manifests, got %d", len(model.TemplateKinds()), got)
	}
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	if _, err := NewCatalog(Manifest(model.TemplateModern), Manifest(model.TemplateModern)); err == nil {
		t.Fatalf("expected duplicate manifest error")
	}
	if _, err := NewCatalog(); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func TestConfig_MergesVariantTokensAndPartials(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenNameSize: "20",
			"brand":       "#123456",
		},
		Templates: map[string]string{
			PartialLayout: "themes/acme/layout.tpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/acme",
			Files:  map[string]string{"logo": "logo.png"},
		},
		Variants: map[string]theme.Variant{
			"large": {
				Tokens:    map[string]string{TokenNameSize: "24"},
				Templates: map[string]string{PartialSocial: "themes/acme/social.tpl"},
			},
		},
	}

	cfg := Config(&theme.Selection{Theme: "acme", Variant: "large", Manifest: manifest}, DefaultPartials())
	if cfg == nil {
		t.Fatalf("expected config")
	}
	if cfg.Tokens[TokenNameSize] != "24" {
		t.Fatalf("variant token not applied: %s", cfg.Tokens[TokenNameSize])
	}
	if cfg.CSSVars["--sig-name-size"] != "24" {
		t.Fatalf("css var not derived: %v", cfg.CSSVars)
	}
	if cfg.Partials[PartialLayout] != "themes/acme/layout.tpl" {
		t.Fatalf("manifest template not applied: %s", cfg.Partials[PartialLayout])
	}
	if cfg.Partials[PartialSocial] != "themes/acme/social.tpl" {
		t.Fatalf("variant template not applied: %s", cfg.Partials[PartialSocial])
	}
	if cfg.Partials[PartialContact] != DefaultPartials()[PartialContact] {
		t.Fatalf("fallback partial not applied: %s", cfg.Partials[PartialContact])
	}
	if got := cfg.AssetURL("logo"); got != "/assets/acme/logo.png" {
		t.Fatalf("asset url: %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset should resolve empty, got %s", got)
	}

	if Config(nil, nil) != nil {
		t.Fatalf("nil selection should produce nil config")
	}
}

func TestResolve_SizeChangesNameFontSize(t *testing.T) {
	spec := model.TemplateModern.Spec()

	small := Resolve(BuiltinConfig(model.TemplateModern, model.SizeSmall), spec, "#0055aa")
	large := Resolve(BuiltinConfig(model.TemplateModern, model.SizeLarge), spec, "#0055aa")

	if small.NameFontSize != 19 || large.NameFontSize != 26 {
		t.Fatalf("unexpected name sizes: small=%d large=%d", small.NameFontSize, large.NameFontSize)
	}
	if !strings.Contains(large.Name, "font-size: 26px;") {
		t.Fatalf("large name style missing font size: %s", large.Name)
	}
	if large.ImageSize != 96 {
		t.Fatalf("large image size: want 96, got %d", large.ImageSize)
	}
}

func TestResolve_AccentAndImageTreatment(t *testing.T) {
	modern := Resolve(nil, model.TemplateModern.Spec(), "#ff0000")
	if !strings.Contains(modern.Container, "border-left: 4px solid #ff0000;") {
		t.Fatalf("modern accent bar missing: %s", modern.Container)
	}
	if !strings.Contains(modern.Company, "color: #ff0000;") {
		t.Fatalf("modern company should use accent: %s", modern.Company)
	}
	if !strings.Contains(modern.Image, "border-radius: 50%;") {
		t.Fatalf("rounded image expected: %s", modern.Image)
	}

	classic := Resolve(nil, model.TemplateClassic.Spec(), "#ff0000")
	if !strings.Contains(classic.Image, "border-radius: 8px;") || !strings.Contains(classic.Image, "border: none;") {
		t.Fatalf("classic image expected square without border: %s", classic.Image)
	}

	minimal := Resolve(nil, model.TemplateMinimal.Spec(), "#ff0000")
	if minimal.Image != "" || minimal.ImageCell != "" {
		t.Fatalf("minimal should not style an image")
	}

	executive := Resolve(nil, model.TemplateExecutive.Spec(), "#ff0000")
	if executive.ImageSide != "right" || !strings.Contains(executive.ImageCell, "padding-left: 28px;") {
		t.Fatalf("executive image should sit on the right: %s", executive.ImageCell)
	}

	corporate := Resolve(nil, model.TemplateCorporate.Spec(), "#ff0000")
	if corporate.Align != "center" || !strings.Contains(corporate.Container, "border: 2px solid #ff0000;") {
		t.Fatalf("corporate card expected: %s", corporate.Container)
	}
	if !strings.Contains(corporate.Company, "font-weight: 700;") {
		t.Fatalf("corporate company should be bold: %s", corporate.Company)
	}
}

func TestForSignature_UsesDefaultsForUnknownSelections(t *testing.T) {
	got := ForSignature(model.Signature{Template: "retro", Size: "huge"})
	want := Resolve(nil, model.DefaultTemplate.Spec(), model.DefaultAccentColor)
	if got != want {
		t.Fatalf("expected default styles, got %+v", got)
	}
}
