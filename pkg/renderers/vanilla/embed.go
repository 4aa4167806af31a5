package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

// TemplatesFS exposes the embedded template bundle so callers can extend
// or replace individual files.
func TemplatesFS() fs.FS {
	return templatesFS
}
