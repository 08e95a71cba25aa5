package styles

import (
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// CSSVarPrefix is prepended to token keys when exposing them as CSS custom
// properties.
const CSSVarPrefix = "--sig-"

// Config flattens a selection into the renderer configuration: base tokens
// overlaid with the variant tokens, fallback partials overlaid with the
// manifest and variant templates, and an asset resolver.
func Config(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant, hasVariant := manifest.Variants[selection.Variant]

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	partials := make(map[string]string, len(fallbacks)+len(manifest.Templates))
	for key, value := range fallbacks {
		partials[key] = value
	}
	for key, value := range manifest.Templates {
		partials[key] = value
	}

	assets := map[string]string{}
	for key, value := range manifest.Assets.Files {
		assets[key] = joinAsset(manifest.Assets.Prefix, value)
	}

	if hasVariant {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
		for key, value := range variant.Templates {
			partials[key] = value
		}
		prefix := variant.Assets.Prefix
		if prefix == "" {
			prefix = manifest.Assets.Prefix
		}
		for key, value := range variant.Assets.Files {
			assets[key] = joinAsset(prefix, value)
		}
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars(tokens),
		AssetURL: func(key string) string {
			return assets[key]
		},
	}
}

func cssVars(tokens map[string]string) map[string]string {
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.NewReplacer(".", "-", "_", "-").Replace(key)
		out[CSSVarPrefix+name] = value
	}
	return out
}

func joinAsset(prefix, file string) string {
	if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "data:") {
		return file
	}
	return path.Join(prefix, file)
}
