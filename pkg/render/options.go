package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use without
// changing the signature itself.
type RenderOptions struct {
	// Theme carries the resolved style tokens and layout partials for the
	// selected template and size. Renderers resolve the built-in manifest
	// when it is nil.
	Theme *theme.RendererConfig
}
