package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewField_Defaults(t *testing.T) {
	field := NewField()

	if field.ID == "" {
		t.Fatalf("expected generated id")
	}
	if field.Type != FieldTypeText {
		t.Fatalf("expected default type text, got %s", field.Type)
	}
	if field.Label != "" {
		t.Fatalf("expected empty label, got %q", field.Label)
	}
}

func TestSection_AppendField(t *testing.T) {
	section := NewSection("Contact")
	section = section.AppendField()
	section = section.AppendField()

	if len(section.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(section.Fields))
	}
	if section.Fields[0].ID == section.Fields[1].ID {
		t.Fatalf("expected unique field ids, both %q", section.Fields[0].ID)
	}
	if section.Fields[1].Type != FieldTypeText {
		t.Fatalf("appended field type: want text, got %s", section.Fields[1].Type)
	}
}

func TestSection_DeleteField(t *testing.T) {
	section := NewSection("Contact")
	for range 3 {
		section = section.AppendField()
	}
	first, third := section.Fields[0].ID, section.Fields[2].ID

	section = section.DeleteField(1)

	if len(section.Fields) != 2 {
		t.Fatalf("expected 2 fields after delete, got %d", len(section.Fields))
	}
	if section.Fields[0].ID != first || section.Fields[1].ID != third {
		t.Fatalf("delete disturbed sibling order: %+v", section.Fields)
	}
}

func TestSection_DeleteField_OutOfRange(t *testing.T) {
	section := NewSection("Contact").AppendField()

	if got := section.DeleteField(5); len(got.Fields) != 1 {
		t.Fatalf("out-of-range delete should be a no-op, got %d fields", len(got.Fields))
	}
	if got := section.DeleteField(-1); len(got.Fields) != 1 {
		t.Fatalf("negative delete should be a no-op, got %d fields", len(got.Fields))
	}
}

func TestSection_ReplaceField_CopyOnWrite(t *testing.T) {
	section := NewSection("Contact").AppendField()
	before := section

	replacement := section.Fields[0]
	replacement.Label = "Email"
	after := section.ReplaceField(0, replacement)

	if before.Fields[0].Label != "" {
		t.Fatalf("replace mutated the previous snapshot: %+v", before.Fields[0])
	}
	if after.Fields[0].Label != "Email" {
		t.Fatalf("replace did not apply: %+v", after.Fields[0])
	}
}

func TestTemplate_ReplaceSection_LeavesSiblingsUntouched(t *testing.T) {
	tpl := NewTemplate("Survey").AppendSection("Extra")
	sibling := tpl.Sections[1]

	retitled := tpl.Sections[0].WithTitle("Basics")
	tpl = tpl.ReplaceSection(0, retitled)

	if tpl.Sections[0].Title != "Basics" {
		t.Fatalf("title edit not applied, got %q", tpl.Sections[0].Title)
	}
	if diff := cmp.Diff(sibling, tpl.Sections[1]); diff != "" {
		t.Fatalf("sibling section changed (-want +got):\n%s", diff)
	}
}

// Switching a field's type away from enum intentionally keeps Options
// around; switching back restores the previous choices.
func TestField_TypeSwitchKeepsOptions(t *testing.T) {
	field := NewField()
	field.Type = FieldTypeEnum
	field.Options = []string{"red", "green", "blue"}

	field.Type = FieldTypeText

	if diff := cmp.Diff([]string{"red", "green", "blue"}, field.Options); diff != "" {
		t.Fatalf("options altered by type switch (-want +got):\n%s", diff)
	}

	field.Type = FieldTypeEnum
	if len(field.Options) != 3 {
		t.Fatalf("expected options restored on switch back, got %v", field.Options)
	}
}

func TestNewTemplate_HasDefaultSection(t *testing.T) {
	tpl := NewTemplate("Survey")

	if len(tpl.Sections) != 1 {
		t.Fatalf("expected one default section, got %d", len(tpl.Sections))
	}
	if tpl.Sections[0].ID == "" || tpl.ID == "" {
		t.Fatalf("expected generated ids, got template=%q section=%q", tpl.ID, tpl.Sections[0].ID)
	}
}

func TestFieldType_Valid(t *testing.T) {
	for _, ft := range FieldTypes() {
		if !ft.Valid() {
			t.Fatalf("expected %s to be valid", ft)
		}
	}
	if FieldType("dropdown").Valid() {
		t.Fatalf("unknown type reported valid")
	}
}
