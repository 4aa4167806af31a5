package render

import (
	"context"

	"github.com/goliatone/go-formboard/pkg/schema"
)

// Renderer converts a form template into a byte representation (HTML,
// plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, tpl schema.Template, options RenderOptions) ([]byte, error)
}
