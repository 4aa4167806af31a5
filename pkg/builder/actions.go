package builder

import "github.com/goliatone/go-formboard/pkg/schema"

// Action is a single state transition. reduce returns the next state and
// whether the template set changed (selection-only actions do not touch
// persisted data).
type Action interface {
	reduce(State) (next State, dirty bool, err error)
}

// CreateTemplate appends a new template with one default section and
// selects it. Rejected with ErrTemplateLimit once MaxTemplates exist.
type CreateTemplate struct {
	Name string
}

func (a CreateTemplate) reduce(s State) (State, bool, error) {
	if len(s.Templates) >= MaxTemplates {
		return s, false, ErrTemplateLimit
	}
	tpl := schema.NewTemplate(a.Name)
	templates := make([]schema.Template, 0, len(s.Templates)+1)
	templates = append(templates, s.Templates...)
	templates = append(templates, tpl)
	s.Templates = templates
	s.SelectedID = tpl.ID
	return s, true, nil
}

// ImportTemplate appends an externally built template, subject to the same
// cap as CreateTemplate. A template whose id is empty or already taken
// gets fresh ids throughout, so importing the same export twice yields
// two independent templates.
type ImportTemplate struct {
	Template schema.Template
}

func (a ImportTemplate) reduce(s State) (State, bool, error) {
	if len(s.Templates) >= MaxTemplates {
		return s, false, ErrTemplateLimit
	}
	tpl := a.Template.Clone()
	if tpl.ID == "" || s.indexOf(tpl.ID) >= 0 {
		tpl = a.Template.WithNewIDs()
	}
	templates := make([]schema.Template, 0, len(s.Templates)+1)
	templates = append(templates, s.Templates...)
	templates = append(templates, tpl)
	s.Templates = templates
	return s, true, nil
}

// DeleteTemplate removes a template from the set. Deleting the selected
// template clears the selection.
type DeleteTemplate struct {
	ID string
}

func (a DeleteTemplate) reduce(s State) (State, bool, error) {
	i := s.indexOf(a.ID)
	if i < 0 {
		return s, false, ErrTemplateNotFound
	}
	templates := make([]schema.Template, 0, len(s.Templates)-1)
	templates = append(templates, s.Templates[:i]...)
	templates = append(templates, s.Templates[i+1:]...)
	s.Templates = templates
	if s.SelectedID == a.ID {
		s.SelectedID = ""
	}
	return s, true, nil
}

// SelectTemplate changes which template is open for editing. Pure UI
// state; never persisted.
type SelectTemplate struct {
	ID string
}

func (a SelectTemplate) reduce(s State) (State, bool, error) {
	if a.ID != "" {
		if _, ok := s.Template(a.ID); !ok {
			return s, false, ErrTemplateNotFound
		}
	}
	s.SelectedID = a.ID
	return s, false, nil
}

// RenameTemplate replaces a template's name.
type RenameTemplate struct {
	ID   string
	Name string
}

func (a RenameTemplate) reduce(s State) (State, bool, error) {
	i := s.indexOf(a.ID)
	if i < 0 {
		return s, false, ErrTemplateNotFound
	}
	return s.withTemplate(i, s.Templates[i].WithName(a.Name)), true, nil
}

// AddSection appends an empty section to a template.
type AddSection struct {
	TemplateID string
	Title      string
}

func (a AddSection) reduce(s State) (State, bool, error) {
	i := s.indexOf(a.TemplateID)
	if i < 0 {
		return s, false, ErrTemplateNotFound
	}
	return s.withTemplate(i, s.Templates[i].AppendSection(a.Title)), true, nil
}

// UpdateSection replaces the section at a position wholesale.
type UpdateSection struct {
	TemplateID string
	Index      int
	Section    schema.Section
}

func (a UpdateSection) reduce(s State) (State, bool, error) {
	i := s.indexOf(a.TemplateID)
	if i < 0 {
		return s, false, ErrTemplateNotFound
	}
	if a.Index < 0 || a.Index >= len(s.Templates[i].Sections) {
		return s, false, ErrSectionOutOfRange
	}
	return s.withTemplate(i, s.Templates[i].ReplaceSection(a.Index, a.Section)), true, nil
}

// SetSectionTitle replaces one section's title, leaving siblings and their
// fields untouched.
type SetSectionTitle struct {
	TemplateID string
	Index      int
	Title      string
}

func (a SetSectionTitle) reduce(s State) (State, bool, error) {
	i := s.indexOf(a.TemplateID)
	if i < 0 {
		return s, false, ErrTemplateNotFound
	}
	tpl := s.Templates[i]
	if a.Index < 0 || a.Index >= len(tpl.Sections) {
		return s, false, ErrSectionOutOfRange
	}
	return s.withTemplate(i, tpl.ReplaceSection(a.Index, tpl.Sections[a.Index].WithTitle(a.Title))), true, nil
}

// AddField appends a default text field to a section.
type AddField struct {
	TemplateID   string
	SectionIndex int
}

func (a AddField) reduce(s State) (State, bool, error) {
	i := s.indexOf(a.TemplateID)
	if i < 0 {
		return s, false, ErrTemplateNotFound
	}
	tpl := s.Templates[i]
	if a.SectionIndex < 0 || a.SectionIndex >= len(tpl.Sections) {
		return s, false, ErrSectionOutOfRange
	}
	section := tpl.Sections[a.SectionIndex].AppendField()
	return s.withTemplate(i, tpl.ReplaceSection(a.SectionIndex, section)), true, nil
}

// UpdateField replaces the field at a position wholesale, the way a field
// editor emits a full replacement object on every control change.
type UpdateField struct {
	TemplateID   string
	SectionIndex int
	FieldIndex   int
	Field        schema.Field
}

func (a UpdateField) reduce(s State) (State, bool, error) {
	i := s.indexOf(a.TemplateID)
	if i < 0 {
		return s, false, ErrTemplateNotFound
	}
	tpl := s.Templates[i]
	if a.SectionIndex < 0 || a.SectionIndex >= len(tpl.Sections) {
		return s, false, ErrSectionOutOfRange
	}
	section := tpl.Sections[a.SectionIndex].ReplaceField(a.FieldIndex, a.Field)
	return s.withTemplate(i, tpl.ReplaceSection(a.SectionIndex, section)), true, nil
}

// DeleteField removes the field at a position, preserving sibling order.
type DeleteField struct {
	TemplateID   string
	SectionIndex int
	FieldIndex   int
}

func (a DeleteField) reduce(s State) (State, bool, error) {
	i := s.indexOf(a.TemplateID)
	if i < 0 {
		return s, false, ErrTemplateNotFound
	}
	tpl := s.Templates[i]
	if a.SectionIndex < 0 || a.SectionIndex >= len(tpl.Sections) {
		return s, false, ErrSectionOutOfRange
	}
	section := tpl.Sections[a.SectionIndex].DeleteField(a.FieldIndex)
	return s.withTemplate(i, tpl.ReplaceSection(a.SectionIndex, section)), true, nil
}
