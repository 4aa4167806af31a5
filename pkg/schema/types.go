package schema

import (
	"strings"

	"github.com/google/uuid"
)

// FieldType is the tagged variant for form-friendly field kinds. Every
// switch over a FieldType should handle all five cases explicitly.
type FieldType string

const (
	FieldTypeLabel   FieldType = "label"
	FieldTypeText    FieldType = "text"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeEnum    FieldType = "enum"
)

// FieldTypes lists every valid field type in presentation order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeLabel,
		FieldTypeText,
		FieldTypeNumber,
		FieldTypeBoolean,
		FieldTypeEnum,
	}
}

// Valid reports whether t names a known field type.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeLabel, FieldTypeText, FieldTypeNumber, FieldTypeBoolean, FieldTypeEnum:
		return true
	default:
		return false
	}
}

// Field models an individual input inside a form section. Options is only
// meaningful when Type is FieldTypeEnum, but it is never cleared when the
// type changes: a field switched away from enum and back keeps its choices.
type Field struct {
	ID      string    `json:"id" yaml:"id"`
	Type    FieldType `json:"type" yaml:"type"`
	Label   string    `json:"label" yaml:"label"`
	Options []string  `json:"options,omitempty" yaml:"options,omitempty"`
}

// Section is a titled, ordered group of fields.
type Section struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Template is a named, persisted form schema composed of ordered sections.
type Template struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Submission maps field ids to collected answer values. Depending on the
// field type the value is a string, float64, or bool; fields the user left
// blank are simply absent.
type Submission map[string]any

// NewID returns a fresh unique identifier.
func NewID() string {
	return uuid.NewString()
}

// NewField constructs a field with a generated id, default type text, and
// an empty label.
func NewField() Field {
	return Field{ID: NewID(), Type: FieldTypeText}
}

// NewSection constructs an empty section with a generated id.
func NewSection(title string) Section {
	return Section{ID: NewID(), Title: strings.TrimSpace(title)}
}

// NewTemplate constructs a template with a generated id and one default
// section, matching what the builder creates for "new template".
func NewTemplate(name string) Template {
	return Template{
		ID:       NewID(),
		Name:     strings.TrimSpace(name),
		Sections: []Section{NewSection("Section 1")},
	}
}

// Section returns the section with the given id.
func (t Template) Section(id string) (Section, bool) {
	for _, section := range t.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// FieldByID walks every section looking for the field with the given id.
func (t Template) FieldByID(id string) (Field, bool) {
	for _, section := range t.Sections {
		for _, field := range section.Fields {
			if field.ID == id {
				return field, true
			}
		}
	}
	return Field{}, false
}

// Fields returns every field in the template in section order.
func (t Template) Fields() []Field {
	var out []Field
	for _, section := range t.Sections {
		out = append(out, section.Fields...)
	}
	return out
}
