package builder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formboard/pkg/schema"
	"github.com/goliatone/go-formboard/pkg/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.TemplateRepository) {
	t.Helper()
	repo := storage.NewTemplateRepository(storage.NewMemoryKV())
	return NewStore(repo), repo
}

func TestCreateTemplate_EnforcesLimit(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < MaxTemplates; i++ {
		if _, err := store.Apply(CreateTemplate{Name: "Template"}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	_, err := store.Apply(CreateTemplate{Name: "One too many"})
	if !errors.Is(err, ErrTemplateLimit) {
		t.Fatalf("expected ErrTemplateLimit, got %v", err)
	}
	if got := len(store.State().Templates); got != MaxTemplates {
		t.Fatalf("template count exceeded cap: %d", got)
	}
}

func TestCreateTemplate_SelectsNewTemplate(t *testing.T) {
	store, _ := newTestStore(t)

	state, err := store.Apply(CreateTemplate{Name: "Survey"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	selected, ok := state.Selected()
	if !ok {
		t.Fatalf("expected new template selected")
	}
	if selected.Name != "Survey" || len(selected.Sections) != 1 {
		t.Fatalf("unexpected selected template: %+v", selected)
	}
}

func TestAddField_AppendsWithDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	state, _ := store.Apply(CreateTemplate{Name: "Survey"})
	tpl, _ := state.Selected()

	state, err := store.Apply(AddField{TemplateID: tpl.ID, SectionIndex: 0})
	if err != nil {
		t.Fatalf("add field: %v", err)
	}
	state, err = store.Apply(AddField{TemplateID: tpl.ID, SectionIndex: 0})
	if err != nil {
		t.Fatalf("add field: %v", err)
	}

	tpl, _ = state.Selected()
	fields := tpl.Sections[0].Fields
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	last := fields[1]
	if last.Type != schema.FieldTypeText || last.Label != "" || last.ID == "" {
		t.Fatalf("appended field defaults wrong: %+v", last)
	}
	if fields[0].ID == fields[1].ID {
		t.Fatalf("field ids not unique")
	}
}

func TestDeleteField_PreservesSiblingOrder(t *testing.T) {
	store, _ := newTestStore(t)
	state, _ := store.Apply(CreateTemplate{Name: "Survey"})
	tpl, _ := state.Selected()

	for i := 0; i < 3; i++ {
		state, _ = store.Apply(AddField{TemplateID: tpl.ID, SectionIndex: 0})
	}
	tpl, _ = state.Selected()
	first, third := tpl.Sections[0].Fields[0].ID, tpl.Sections[0].Fields[2].ID

	state, err := store.Apply(DeleteField{TemplateID: tpl.ID, SectionIndex: 0, FieldIndex: 1})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	tpl, _ = state.Selected()
	fields := tpl.Sections[0].Fields
	if len(fields) != 2 || fields[0].ID != first || fields[1].ID != third {
		t.Fatalf("delete disturbed order: %+v", fields)
	}
}

func TestSetSectionTitle_TouchesOnlyThatSection(t *testing.T) {
	store, _ := newTestStore(t)
	state, _ := store.Apply(CreateTemplate{Name: "Survey"})
	tpl, _ := state.Selected()
	state, _ = store.Apply(AddSection{TemplateID: tpl.ID, Title: "Details"})
	state, _ = store.Apply(AddField{TemplateID: tpl.ID, SectionIndex: 1})

	tpl, _ = state.Selected()
	sibling := tpl.Sections[1]

	state, err := store.Apply(SetSectionTitle{TemplateID: tpl.ID, Index: 0, Title: "Basics"})
	if err != nil {
		t.Fatalf("set title: %v", err)
	}

	tpl, _ = state.Selected()
	if tpl.Sections[0].Title != "Basics" {
		t.Fatalf("title not applied: %q", tpl.Sections[0].Title)
	}
	if diff := cmp.Diff(sibling, tpl.Sections[1]); diff != "" {
		t.Fatalf("sibling section changed (-want +got):\n%s", diff)
	}
}

func TestApply_PersistsAfterEveryChange(t *testing.T) {
	store, repo := newTestStore(t)

	state, _ := store.Apply(CreateTemplate{Name: "Survey"})
	tpl, _ := state.Selected()
	if _, err := store.Apply(AddField{TemplateID: tpl.ID, SectionIndex: 0}); err != nil {
		t.Fatalf("add field: %v", err)
	}

	persisted := repo.Load()
	if diff := cmp.Diff(store.State().Templates, persisted); diff != "" {
		t.Fatalf("persisted set out of sync (-state +stored):\n%s", diff)
	}
}

func TestSelectTemplate_DoesNotPersist(t *testing.T) {
	repo := storage.NewTemplateRepository(storage.NewMemoryKV())
	tpl := schema.NewTemplate("Survey")
	if err := repo.Save([]schema.Template{tpl}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := NewStore(repo)

	if _, err := store.Apply(SelectTemplate{ID: tpl.ID}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := store.Apply(SelectTemplate{ID: "nope"}); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}

	state := store.State()
	if state.SelectedID != tpl.ID {
		t.Fatalf("failed select clobbered selection: %q", state.SelectedID)
	}
}

func TestNewStore_LoadsPersistedSet(t *testing.T) {
	repo := storage.NewTemplateRepository(storage.NewMemoryKV())
	want := []schema.Template{schema.NewTemplate("A"), schema.NewTemplate("B")}
	if err := repo.Save(want); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewStore(repo)
	if diff := cmp.Diff(want, store.State().Templates); diff != "" {
		t.Fatalf("startup load mismatch (-want +got):\n%s", diff)
	}
}

func TestImportTemplate_RespectsLimit(t *testing.T) {
	store, _ := newTestStore(t)
	for i := 0; i < MaxTemplates; i++ {
		if _, err := store.Apply(ImportTemplate{Template: schema.NewTemplate("T")}); err != nil {
			t.Fatalf("import %d: %v", i, err)
		}
	}
	if _, err := store.Apply(ImportTemplate{Template: schema.NewTemplate("T")}); !errors.Is(err, ErrTemplateLimit) {
		t.Fatalf("expected ErrTemplateLimit, got %v", err)
	}
}

func TestImportTemplate_RegeneratesCollidingIDs(t *testing.T) {
	store, _ := newTestStore(t)

	tpl := schema.NewTemplate("Shared")
	tpl.Sections[0].Fields = []schema.Field{{ID: "f1", Type: schema.FieldTypeText, Label: "Name"}}

	if _, err := store.Apply(ImportTemplate{Template: tpl}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	state, err := store.Apply(ImportTemplate{Template: tpl})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if len(state.Templates) != 2 {
		t.Fatalf("template count = %d, want 2", len(state.Templates))
	}
	first, second := state.Templates[0], state.Templates[1]
	if first.ID == second.ID {
		t.Fatalf("imported templates share id %q", first.ID)
	}
	if first.Sections[0].ID == second.Sections[0].ID {
		t.Fatalf("imported sections share id %q", first.Sections[0].ID)
	}
	if first.Sections[0].Fields[0].ID == second.Sections[0].Fields[0].ID {
		t.Fatalf("imported fields share id %q", first.Sections[0].Fields[0].ID)
	}
	if second.Name != "Shared" || second.Sections[0].Fields[0].Label != "Name" {
		t.Fatalf("content changed during reimport: %+v", second)
	}
}

func TestImportTemplate_KeepsFreshID(t *testing.T) {
	store, _ := newTestStore(t)

	tpl := schema.NewTemplate("Unique")
	state, err := store.Apply(ImportTemplate{Template: tpl})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, ok := state.Template(tpl.ID); !ok {
		t.Fatalf("non-colliding id was regenerated")
	}
}
