package render

import (
	"context"

	"github.com/goliatone/go-sigstudio/pkg/model"
)

// Renderer converts a Signature into one export format (HTML fragment,
// plain text, vCard).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, sig model.Signature, options RenderOptions) ([]byte, error)
}

// Built-in renderer names.
const (
	FormatHTML  = "html"
	FormatText  = "text"
	FormatVCard = "vcard"
)
