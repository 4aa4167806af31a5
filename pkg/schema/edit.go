package schema

import "strings"

// Edit operations follow a copy-on-write discipline: each call returns a
// new value with the mutated level cloned, so callers can hold on to old
// snapshots without seeing later edits.

// WithTitle returns a copy of the section with the title replaced.
func (s Section) WithTitle(title string) Section {
	s.Title = strings.TrimSpace(title)
	return s
}

// AppendField returns a copy of the section with a freshly generated text
// field appended at the end.
func (s Section) AppendField() Section {
	fields := make([]Field, 0, len(s.Fields)+1)
	fields = append(fields, s.Fields...)
	fields = append(fields, NewField())
	s.Fields = fields
	return s
}

// ReplaceField returns a copy of the section with the field at position i
// replaced wholesale. Out-of-range positions leave the section unchanged.
func (s Section) ReplaceField(i int, field Field) Section {
	if i < 0 || i >= len(s.Fields) {
		return s
	}
	fields := make([]Field, len(s.Fields))
	copy(fields, s.Fields)
	fields[i] = field
	s.Fields = fields
	return s
}

// DeleteField returns a copy of the section with exactly the field at
// position i removed, preserving the order of the rest. Out-of-range
// positions leave the section unchanged.
func (s Section) DeleteField(i int) Section {
	if i < 0 || i >= len(s.Fields) {
		return s
	}
	fields := make([]Field, 0, len(s.Fields)-1)
	fields = append(fields, s.Fields[:i]...)
	fields = append(fields, s.Fields[i+1:]...)
	s.Fields = fields
	return s
}

// WithName returns a copy of the template with the name replaced.
func (t Template) WithName(name string) Template {
	t.Name = strings.TrimSpace(name)
	return t
}

// AppendSection returns a copy of the template with an empty section
// appended.
func (t Template) AppendSection(title string) Template {
	sections := make([]Section, 0, len(t.Sections)+1)
	sections = append(sections, t.Sections...)
	sections = append(sections, NewSection(title))
	t.Sections = sections
	return t
}

// ReplaceSection returns a copy of the template with the section at
// position i replaced wholesale. Out-of-range positions leave the template
// unchanged.
func (t Template) ReplaceSection(i int, section Section) Template {
	if i < 0 || i >= len(t.Sections) {
		return t
	}
	sections := make([]Section, len(t.Sections))
	copy(sections, t.Sections)
	sections[i] = section
	t.Sections = sections
	return t
}

// WithNewIDs returns a deep copy of the template with regenerated ids at
// every level, for bringing in externally built templates without
// colliding with ids already in the set.
func (t Template) WithNewIDs() Template {
	t = t.Clone()
	t.ID = NewID()
	for i := range t.Sections {
		t.Sections[i].ID = NewID()
		for j := range t.Sections[i].Fields {
			t.Sections[i].Fields[j].ID = NewID()
		}
	}
	return t
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	sections := make([]Section, len(t.Sections))
	for i, section := range t.Sections {
		fields := make([]Field, len(section.Fields))
		for j, field := range section.Fields {
			if len(field.Options) > 0 {
				field.Options = append([]string(nil), field.Options...)
			}
			fields[j] = field
		}
		section.Fields = fields
		sections[i] = section
	}
	t.Sections = sections
	return t
}
