package sigstudio

import (
	"io/fs"

	htmlrenderer "github.com/goliatone/go-sigstudio/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in signature templates so callers can
// copy or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return htmlrenderer.TemplatesFS()
}
