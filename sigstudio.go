// Package sigstudio renders email signatures from contact details: an HTML
// fragment for mail clients, a plain-text fallback and a vCard export.
package sigstudio

import (
	"context"

	"github.com/goliatone/go-sigstudio/pkg/model"
	"github.com/goliatone/go-sigstudio/pkg/studio"
	theme "github.com/goliatone/go-theme"
)

// Signature aliases model.Signature for callers using the root package.
type Signature = model.Signature

// ContactData aliases model.ContactData.
type ContactData = model.ContactData

// Output aliases studio.Output.
type Output = studio.Output

// NewStudio exposes the studio constructor from the top-level module.
func NewStudio(options ...studio.Option) *studio.Studio {
	return studio.New(options...)
}

// Render builds the HTML and plain-text signature for the given template and
// size. Unknown or empty selections use the defaults.
func Render(ctx context.Context, contact ContactData, template model.TemplateKind, size model.SizeProfile, options ...studio.Option) (Output, error) {
	return studio.New(options...).Render(ctx, Signature{
		Contact:  contact,
		Template: template,
		Size:     size,
	})
}

// VCard exports contact as a vCard 3.0 card.
func VCard(ctx context.Context, contact ContactData, options ...studio.Option) ([]byte, error) {
	return studio.New(options...).VCard(ctx, contact)
}

// WithThemeSelector passes a go-theme selector through to the studio so
// template/size choices resolve against custom manifests.
func WithThemeSelector(selector theme.ThemeSelector) studio.Option {
	return studio.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) studio.Option {
	return studio.WithThemeFallbacks(fallbacks)
}
