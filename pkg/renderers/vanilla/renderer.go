// Package vanilla renders form templates to standalone HTML pages using
// an embedded pongo2 template bundle. One control is emitted per field:
// label fields become static text, text and number fields become text
// inputs, boolean fields become checkboxes, and enum fields become
// selects populated from the field's options.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formboard/pkg/render"
	"github.com/goliatone/go-formboard/pkg/schema"
)

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	mu        sync.Mutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// Ensure the renderer satisfies the contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return &Renderer{
		set:       pongo2.NewSet("formboard", pongo2.NewFSLoader(cfg.templateFS)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, tpl schema.Template, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := r.template(formTemplate)
	if err != nil {
		return nil, err
	}

	result, err := page.ExecuteBytes(buildContext(tpl, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: execute template: %w", err)
	}
	return result, nil
}

func (r *Renderer) template(path string) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: load template %q: %w", path, err)
	}
	r.templates[path] = tmpl
	return tmpl, nil
}

func buildContext(tpl schema.Template, options render.RenderOptions) pongo2.Context {
	sections := make([]map[string]any, 0, len(tpl.Sections))
	for _, section := range tpl.Sections {
		fields := make([]map[string]any, 0, len(section.Fields))
		for _, field := range section.Fields {
			fields = append(fields, buildFieldContext(field, options))
		}
		sections = append(sections, map[string]any{
			"id":     section.ID,
			"title":  SanitizeText(section.Title),
			"fields": fields,
		})
	}

	action := strings.TrimSpace(options.Action)
	if action == "" {
		action = "#"
	}

	return pongo2.Context{
		"form": map[string]any{
			"id":       tpl.ID,
			"name":     SanitizeText(tpl.Name),
			"sections": sections,
		},
		"action":      action,
		"notice":      options.Notice,
		"form_errors": options.Errors[""],
		"theme_css":   options.Theme.CSSVarBlock(),
	}
}

func buildFieldContext(field schema.Field, options render.RenderOptions) map[string]any {
	value := ""
	checked := false
	if raw, ok := options.Values[field.ID]; ok {
		switch typed := raw.(type) {
		case bool:
			checked = typed
		case string:
			value = typed
		default:
			value = fmt.Sprint(typed)
		}
	}

	return map[string]any{
		"id":      field.ID,
		"kind":    string(field.Type),
		"label":   SanitizeText(field.Label),
		"options": append([]string(nil), field.Options...),
		"value":   value,
		"checked": checked,
		"errors":  options.Errors[field.ID],
	}
}
