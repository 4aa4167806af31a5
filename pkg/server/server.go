// Package server exposes the form builder over HTTP: an HTML surface that
// lists templates and serves generated forms, plus a JSON API for
// template and submission management.
package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-formboard/pkg/app"
	"github.com/goliatone/go-formboard/pkg/render"
	"github.com/goliatone/go-formboard/pkg/renderers/vanilla"
)

// Option configures the server.
type Option func(*Server)

// WithRenderer registers an extra renderer and makes it the default for
// form pages.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.registry.MustRegister(renderer)
			s.defaultRenderer = renderer.Name()
		}
	}
}

// WithTheme attaches resolved theme configuration to every rendered page.
func WithTheme(theme *render.ThemeConfig) Option {
	return func(s *Server) {
		s.theme = theme
	}
}

// WithLogger replaces the request error logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Server serves the builder's templates and accepts submissions.
type Server struct {
	controller      *app.Controller
	registry        *render.Registry
	defaultRenderer string
	theme           *render.ThemeConfig
	logger          *log.Logger
}

// New wires a server around a controller. The vanilla HTML renderer is
// registered and used by default; options can register alternatives.
func New(controller *app.Controller, options ...Option) (*Server, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	registry.MustRegister(html)

	s := &Server{
		controller:      controller,
		registry:        registry,
		defaultRenderer: html.Name(),
		logger:          log.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s, nil
}

// renderer resolves the renderer for a request: the renderer query
// parameter when present and registered, the default otherwise.
func (s *Server) pickRenderer(r *http.Request) (render.Renderer, error) {
	name := r.URL.Query().Get("renderer")
	if name == "" {
		name = s.defaultRenderer
	}
	return s.registry.Get(name)
}

// Handler builds the router: HTML pages at the root, JSON under /api/v1.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.listForms)
	r.Get("/forms/{templateID}", s.showForm)
	r.Post("/forms/{templateID}", s.submitForm)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/forms", s.apiListForms)
		r.Post("/forms", s.apiCreateForm)
		r.Get("/forms/{templateID}", s.apiGetForm)
		r.Put("/forms/{templateID}", s.apiRenameForm)
		r.Delete("/forms/{templateID}", s.apiDeleteForm)
		r.Get("/forms/{templateID}/submissions", s.apiListSubmissions)
		r.Post("/forms/{templateID}/submissions", s.apiCreateSubmission)
	})

	return r
}
