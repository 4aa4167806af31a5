// Package builder holds the authoring state for form templates behind a
// single update pathway: every mutation is an Action applied through the
// Store, which reduces to a new state and then persists the full template
// set. The selected template is always derived from the canonical set, so
// there is never a second copy to keep consistent.
package builder

import (
	"errors"

	"github.com/goliatone/go-formboard/pkg/schema"
)

// MaxTemplates caps how many templates may exist at once.
const MaxTemplates = 5

var (
	// ErrTemplateLimit is returned when creating or importing a template
	// would exceed MaxTemplates. The state is left untouched.
	ErrTemplateLimit = errors.New("builder: template limit reached")

	// ErrTemplateNotFound is returned when an action names an unknown
	// template id.
	ErrTemplateNotFound = errors.New("builder: template not found")

	// ErrSectionOutOfRange is returned when an action addresses a section
	// position the template does not have.
	ErrSectionOutOfRange = errors.New("builder: section index out of range")
)

// State is the full builder state: the canonical template set plus the id
// of the template currently open for editing.
type State struct {
	Templates  []schema.Template
	SelectedID string
}

// Selected resolves the currently selected template from the canonical
// set.
func (s State) Selected() (schema.Template, bool) {
	return s.Template(s.SelectedID)
}

// Template looks up a template by id.
func (s State) Template(id string) (schema.Template, bool) {
	for _, tpl := range s.Templates {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return schema.Template{}, false
}

func (s State) indexOf(id string) int {
	for i, tpl := range s.Templates {
		if tpl.ID == id {
			return i
		}
	}
	return -1
}

// withTemplate replaces the template at position i, cloning the outer
// slice so previous snapshots stay valid.
func (s State) withTemplate(i int, tpl schema.Template) State {
	templates := make([]schema.Template, len(s.Templates))
	copy(templates, s.Templates)
	templates[i] = tpl
	s.Templates = templates
	return s
}
