package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-formboard/pkg/builder"
	"github.com/goliatone/go-formboard/pkg/schema"
)

func (s *Server) apiListForms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.controller.Templates())
}

func (s *Server) apiCreateForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := s.controller.Builder().Apply(builder.CreateTemplate{Name: req.Name})
	if err != nil {
		if errors.Is(err, builder.ErrTemplateLimit) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tpl, ok := state.Selected()
	if !ok {
		writeError(w, http.StatusInternalServerError, "created template not found")
		return
	}
	writeJSON(w, http.StatusCreated, tpl)
}

func (s *Server) apiGetForm(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.template(r)
	if !ok {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (s *Server) apiRenameForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "templateID")
	state, err := s.controller.Builder().Apply(builder.RenameTemplate{ID: id, Name: req.Name})
	if err != nil {
		if errors.Is(err, builder.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tpl, _ := state.Template(id)
	writeJSON(w, http.StatusOK, tpl)
}

func (s *Server) apiDeleteForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")
	if _, err := s.controller.Builder().Apply(builder.DeleteTemplate{ID: id}); err != nil {
		if errors.Is(err, builder.ErrTemplateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (s *Server) apiListSubmissions(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.template(r)
	if !ok {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"template_id": tpl.ID,
		"submissions": s.controller.Submissions(tpl.ID),
	})
}

// apiCreateSubmission accepts already-typed answers keyed by field id and
// validates them against the template before appending to the log.
func (s *Server) apiCreateSubmission(w http.ResponseWriter, r *http.Request) {
	tpl, ok := s.template(r)
	if !ok {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	var req map[string]any
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answers, err := typedAnswers(tpl, req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.controller.Record(tpl.ID, answers); err != nil {
		s.logger.Printf("record submission for %s: %v", tpl.ID, err)
		writeError(w, http.StatusInternalServerError, "could not record submission")
		return
	}
	writeJSON(w, http.StatusCreated, answers)
}

// typedAnswers checks each provided answer against its field's type.
// Unknown field ids and label answers are rejected outright.
func typedAnswers(tpl schema.Template, raw map[string]any) (schema.Submission, error) {
	answers := make(schema.Submission, len(raw))

	for id, value := range raw {
		field, ok := tpl.FieldByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown field %q", id)
		}

		switch field.Type {
		case schema.FieldTypeLabel:
			return nil, fmt.Errorf("field %q is a label and takes no answer", id)
		case schema.FieldTypeText:
			text, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("field %q expects a string", id)
			}
			answers[id] = text
		case schema.FieldTypeNumber:
			number, ok := value.(float64)
			if !ok {
				return nil, fmt.Errorf("field %q expects a number", id)
			}
			answers[id] = number
		case schema.FieldTypeBoolean:
			flag, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("field %q expects a boolean", id)
			}
			answers[id] = flag
		case schema.FieldTypeEnum:
			choice, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("field %q expects a string option", id)
			}
			valid := false
			for _, option := range field.Options {
				if option == choice {
					valid = true
					break
				}
			}
			if !valid {
				return nil, fmt.Errorf("field %q: %q is not one of the options", id, choice)
			}
			answers[id] = choice
		default:
			return nil, fmt.Errorf("field %q has unknown type %q", id, field.Type)
		}
	}
	return answers, nil
}
