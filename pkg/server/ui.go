package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formboard/pkg/builder"
	"github.com/goliatone/go-formboard/pkg/render"
	"github.com/goliatone/go-formboard/pkg/renderers/vanilla"
	"github.com/goliatone/go-formboard/pkg/schema"
)

// listForms is the HTML index: one link per template.
func (s *Server) listForms(w http.ResponseWriter, r *http.Request) {
	templates := s.controller.Templates()

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Forms</title></head>\n<body>\n<h1>Forms</h1>\n")
	if len(templates) == 0 {
		page.WriteString("<p>No templates yet.</p>\n")
	} else {
		page.WriteString("<ul>\n")
		for _, tpl := range templates {
			name := vanilla.SanitizeText(tpl.Name)
			if strings.TrimSpace(name) == "" {
				name = tpl.ID
			}
			fmt.Fprintf(&page, "<li><a href=\"/forms/%s\">%s</a></li>\n", tpl.ID, name)
		}
		page.WriteString("</ul>\n")
	}
	page.WriteString("</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page.String()))
}

func (s *Server) showForm(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.template(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.renderForm(w, r, tpl, render.RenderOptions{}, http.StatusOK)
}

// submitForm coerces posted values field by field. Invalid input re-renders
// the form with per-field messages and the submitted values intact; valid
// input appends to the submission log and re-renders with a notice.
func (s *Server) submitForm(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.template(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	answers := make(schema.Submission)
	values := make(map[string]any)
	fieldErrors := make(map[string][]string)

	for _, field := range tpl.Fields() {
		raw := r.PostForm.Get(field.ID)
		if raw != "" {
			values[field.ID] = raw
		}
		value, answered, err := render.CoerceAnswer(field, raw)
		if err != nil {
			fieldErrors[field.ID] = append(fieldErrors[field.ID], err.Error())
			continue
		}
		if answered {
			answers[field.ID] = value
			values[field.ID] = value
		}
	}

	if len(fieldErrors) > 0 {
		s.renderForm(w, r, tpl, render.RenderOptions{
			Values: values,
			Errors: fieldErrors,
		}, http.StatusUnprocessableEntity)
		return
	}

	if err := s.controller.Record(tpl.ID, answers); err != nil {
		if errors.Is(err, builder.ErrTemplateNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.Printf("record submission for %s: %v", tpl.ID, err)
		http.Error(w, "could not record submission", http.StatusInternalServerError)
		return
	}

	s.renderForm(w, r, tpl, render.RenderOptions{
		Notice: fmt.Sprintf("Form %q submitted.", tpl.Name),
	}, http.StatusOK)
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, tpl schema.Template, options render.RenderOptions, status int) {
	if options.Action == "" {
		options.Action = "/forms/" + tpl.ID
	}
	if options.Theme == nil {
		options.Theme = s.theme
	}

	renderer, err := s.pickRenderer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := renderer.Render(r.Context(), tpl, options)
	if err != nil {
		s.logger.Printf("render form %s: %v", tpl.ID, err)
		http.Error(w, "could not render form", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(page)
}

func (s *Server) template(r *http.Request) (schema.Template, bool) {
	id := chi.URLParam(r, "templateID")
	tpl, ok := s.controller.Builder().State().Template(id)
	return tpl, ok
}
