// Package formboard is a form-template builder: templates hold sections,
// sections hold typed fields, and filled-out forms append to per-template
// submission logs in local key-value storage. The root package wires the
// storage, builder, and controller layers into a ready application.
package formboard

import (
	"io/fs"

	"github.com/goliatone/go-formboard/pkg/app"
	"github.com/goliatone/go-formboard/pkg/builder"
	"github.com/goliatone/go-formboard/pkg/render"
	"github.com/goliatone/go-formboard/pkg/renderers/vanilla"
	"github.com/goliatone/go-formboard/pkg/schema"
	"github.com/goliatone/go-formboard/pkg/storage"
)

// Template aliases the core template type for callers that only import
// the root package.
type Template = schema.Template

// Section groups fields inside a template.
type Section = schema.Section

// Field is a single form control definition.
type Field = schema.Field

// Submission maps field ids to answered values.
type Submission = schema.Submission

// RenderOptions carries per-render values, errors, and theme data.
type RenderOptions = render.RenderOptions

// MaxTemplates is the hard cap on stored templates.
const MaxTemplates = builder.MaxTemplates

// App bundles the wired layers of a running installation.
type App struct {
	// Controller toggles builder/fill mode and records submissions.
	Controller *app.Controller
	// Store funnels every template mutation through a single pathway.
	Store *builder.Store

	kv storage.KV
}

// Open loads (or creates) a file-backed installation at path and returns
// the wired application.
func Open(path string, options ...app.Option) (*App, error) {
	kv, err := storage.NewFileKV(path)
	if err != nil {
		return nil, err
	}
	return fromKV(kv, options...), nil
}

// OpenInMemory wires an application over volatile storage, for tests and
// one-off sessions.
func OpenInMemory(options ...app.Option) *App {
	return fromKV(storage.NewMemoryKV(), options...)
}

func fromKV(kv storage.KV, options ...app.Option) *App {
	store := builder.NewStore(storage.NewTemplateRepository(kv))
	controller := app.NewController(store, storage.NewSubmissionRepository(kv), options...)
	return &App{
		Controller: controller,
		Store:      store,
		kv:         kv,
	}
}

// KV exposes the underlying key-value store for callers that need raw
// access, such as backup tooling.
func (a *App) KV() storage.KV {
	return a.kv
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so
// callers can reuse or extend them without importing the renderer package
// directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
