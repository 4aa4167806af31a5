package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formboard/pkg/schema"
)

func TestTemplateRepository_RoundTrip(t *testing.T) {
	repo := NewTemplateRepository(NewMemoryKV())

	tpl := schema.NewTemplate("Survey")
	section := tpl.Sections[0].AppendField().AppendField()
	enum := section.Fields[1]
	enum.Type = schema.FieldTypeEnum
	enum.Label = "Color"
	enum.Options = []string{"red", "green"}
	section = section.ReplaceField(1, enum)
	tpl = tpl.ReplaceSection(0, section)

	want := []schema.Template{tpl, schema.NewTemplate("Intake")}
	if err := repo.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := repo.Load()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("template set did not round-trip (-want +got):\n%s", diff)
	}
}

func TestTemplateRepository_MissingKeyLoadsEmpty(t *testing.T) {
	repo := NewTemplateRepository(NewMemoryKV())

	got := repo.Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

func TestTemplateRepository_CorruptValueLoadsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set(TemplatesKey, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewTemplateRepository(kv)
	if got := repo.Load(); len(got) != 0 {
		t.Fatalf("expected corrupt payload to load as empty, got %v", got)
	}
}

func TestSubmissionRepository_AppendKeepsOrder(t *testing.T) {
	repo := NewSubmissionRepository(NewMemoryKV())

	if err := repo.Append("tpl-1", schema.Submission{"field1": "hello"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append("tpl-1", schema.Submission{"field1": "again"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	log := repo.Log("tpl-1")
	if len(log) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(log))
	}
	if log[0]["field1"] != "hello" || log[1]["field1"] != "again" {
		t.Fatalf("log out of order: %v", log)
	}

	if other := repo.Log("tpl-2"); len(other) != 0 {
		t.Fatalf("logs leaked across templates: %v", other)
	}
}

func TestFileKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formboard.json")

	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := NewTemplateRepository(kv)
	want := []schema.Template{schema.NewTemplate("Survey")}
	if err := repo.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := NewTemplateRepository(reopened).Load()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestFileKV_MissingFileActsEmpty(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "missing", "store.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok, err := kv.Get(TemplatesKey); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
}

func TestKeys_FiltersByPrefix(t *testing.T) {
	kv := NewMemoryKV()
	_ = kv.Set(TemplatesKey, []byte("[]"))
	_ = kv.Set(SubmissionsKey("a"), []byte("[]"))
	_ = kv.Set(SubmissionsKey("b"), []byte("[]"))

	keys, err := kv.Keys(SubmissionsKeyPrefix)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	want := []string{SubmissionsKey("a"), SubmissionsKey("b")}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
}
