// Package styles holds the signature style table. Each template is a
// go-theme manifest whose variants are the size profiles; a selection is
// flattened into a theme.RendererConfig and resolved into inline CSS
// declarations for the renderers.
package styles
