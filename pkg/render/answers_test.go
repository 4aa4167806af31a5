package render

import (
	"testing"

	"github.com/goliatone/go-formboard/pkg/schema"
)

func TestCoerceAnswer(t *testing.T) {
	enum := schema.Field{ID: "color", Type: schema.FieldTypeEnum, Options: []string{"red", "green"}}

	cases := []struct {
		name    string
		field   schema.Field
		raw     string
		want    any
		wantOK  bool
		wantErr bool
	}{
		{"text", schema.Field{ID: "f", Type: schema.FieldTypeText}, "hello", "hello", true, false},
		{"text blank omitted", schema.Field{ID: "f", Type: schema.FieldTypeText}, "   ", nil, false, false},
		{"number", schema.Field{ID: "f", Type: schema.FieldTypeNumber}, "3.5", 3.5, true, false},
		{"number invalid", schema.Field{ID: "f", Type: schema.FieldTypeNumber}, "abc", nil, false, true},
		{"number blank omitted", schema.Field{ID: "f", Type: schema.FieldTypeNumber}, "", nil, false, false},
		{"boolean checked", schema.Field{ID: "f", Type: schema.FieldTypeBoolean}, "on", true, true, false},
		{"boolean unchecked defaults false", schema.Field{ID: "f", Type: schema.FieldTypeBoolean}, "", false, true, false},
		{"boolean invalid", schema.Field{ID: "f", Type: schema.FieldTypeBoolean}, "maybe", nil, false, true},
		{"enum member", enum, "red", "red", true, false},
		{"enum outsider", enum, "blue", nil, false, true},
		{"enum blank omitted", enum, "", nil, false, false},
		{"label never answers", schema.Field{ID: "f", Type: schema.FieldTypeLabel}, "anything", nil, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := CoerceAnswer(tc.field, tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got value=%v ok=%v", got, ok)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.wantOK {
				t.Fatalf("ok: want %v, got %v", tc.wantOK, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("value: want %v (%T), got %v (%T)", tc.want, tc.want, got, got)
			}
		})
	}
}
