package transfer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formboard/pkg/builder"
	"github.com/goliatone/go-formboard/pkg/schema"
	"github.com/goliatone/go-formboard/pkg/storage"
)

func sampleTemplates() []schema.Template {
	return []schema.Template{
		{
			ID:   "tpl-1",
			Name: "Visitor Survey",
			Sections: []schema.Section{
				{
					ID:    "sec-1",
					Title: "Basics",
					Fields: []schema.Field{
						{ID: "name", Type: schema.FieldTypeText, Label: "Name"},
						{ID: "color", Type: schema.FieldTypeEnum, Label: "Color", Options: []string{"red", "green"}},
					},
				},
			},
		},
	}
}

func TestExportDecode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleTemplates()); err != nil {
		t.Fatalf("export: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(sampleTemplates(), got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	doc := "version: 99\ntemplates: []\n"

	if _, err := Decode(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected version error")
	}
}

func TestImport_AppendsToStore(t *testing.T) {
	store := builder.NewStore(storage.NewTemplateRepository(storage.NewMemoryKV()))

	var buf bytes.Buffer
	if err := Export(&buf, sampleTemplates()); err != nil {
		t.Fatalf("export: %v", err)
	}

	result, err := Import(store, &buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 1 || len(result.Skipped) != 0 {
		t.Fatalf("result = %+v, want 1 imported", result)
	}

	templates := store.State().Templates
	if len(templates) != 1 || templates[0].Name != "Visitor Survey" {
		t.Fatalf("unexpected store contents: %+v", templates)
	}
}

func TestImport_TwiceYieldsDistinctIDs(t *testing.T) {
	store := builder.NewStore(storage.NewTemplateRepository(storage.NewMemoryKV()))

	var buf bytes.Buffer
	if err := Export(&buf, sampleTemplates()); err != nil {
		t.Fatalf("export: %v", err)
	}
	payload := buf.Bytes()

	for i := 0; i < 2; i++ {
		result, err := Import(store, bytes.NewReader(payload))
		if err != nil {
			t.Fatalf("import %d: %v", i, err)
		}
		if result.Imported != 1 {
			t.Fatalf("import %d: result = %+v", i, result)
		}
	}

	templates := store.State().Templates
	if len(templates) != 2 {
		t.Fatalf("template count = %d, want 2", len(templates))
	}
	if templates[0].ID == templates[1].ID {
		t.Fatalf("reimported template kept id %q", templates[0].ID)
	}
}

func TestImport_RespectsTemplateCap(t *testing.T) {
	store := builder.NewStore(storage.NewTemplateRepository(storage.NewMemoryKV()))
	for i := 0; i < builder.MaxTemplates-1; i++ {
		if _, err := store.Apply(builder.CreateTemplate{Name: "Existing"}); err != nil {
			t.Fatalf("seed template: %v", err)
		}
	}

	imported := []schema.Template{
		{ID: "tpl-a", Name: "Fits"},
		{ID: "tpl-b", Name: "Over the cap"},
	}
	var buf bytes.Buffer
	if err := Export(&buf, imported); err != nil {
		t.Fatalf("export: %v", err)
	}

	result, err := Import(store, &buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("imported = %d, want 1", result.Imported)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "Over the cap" {
		t.Fatalf("skipped = %v, want [Over the cap]", result.Skipped)
	}
	if got := len(store.State().Templates); got != builder.MaxTemplates {
		t.Fatalf("template count = %d, want %d", got, builder.MaxTemplates)
	}
}
