package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/layouts/*.tpl templates/partials/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded signature bundle rooted at the templates
// directory, so partial names resolve as "layouts/..." and "partials/...".
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
