// Package openapi turns OpenAPI component schemas into form templates.
// Each object schema under components/schemas becomes one section whose
// properties map to form fields; property types the form model cannot
// express are skipped.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formboard/pkg/schema"
)

// Options tune how documents are loaded and converted.
type Options struct {
	// ResolveReferences allows external $ref resolution and validates the
	// document before conversion.
	ResolveReferences bool
	// SchemaNames restricts conversion to the named component schemas.
	// Empty means every object schema in the document.
	SchemaNames []string
}

// Importer converts OpenAPI documents into form templates using
// kin-openapi.
type Importer struct {
	options Options
}

// New constructs an Importer.
func New(options Options) *Importer {
	return &Importer{options: options}
}

// Template builds one form template from a raw OpenAPI document (JSON or
// YAML). The template name comes from the document's info title.
func (i *Importer) Template(ctx context.Context, raw []byte) (schema.Template, error) {
	if err := ctx.Err(); err != nil {
		return schema.Template{}, err
	}
	if len(raw) == 0 {
		return schema.Template{}, errors.New("openapi importer: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: i.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return schema.Template{}, fmt.Errorf("openapi importer: load document: %w", err)
	}
	if i.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return schema.Template{}, fmt.Errorf("openapi importer: validate: %w", err)
		}
	}

	name := "Imported Form"
	if spec.Info != nil && strings.TrimSpace(spec.Info.Title) != "" {
		name = strings.TrimSpace(spec.Info.Title)
	}

	tpl := schema.Template{
		ID:   schema.NewID(),
		Name: name,
	}

	for _, schemaName := range i.schemaNames(spec) {
		ref := spec.Components.Schemas[schemaName]
		section, ok := convertSchema(schemaName, ref)
		if !ok {
			continue
		}
		tpl.Sections = append(tpl.Sections, section)
	}

	if len(tpl.Sections) == 0 {
		return schema.Template{}, errors.New("openapi importer: no convertible component schemas")
	}
	return tpl, nil
}

// schemaNames returns the component schemas to convert, in a stable
// order. A document without a components section yields nothing, whether
// or not a name filter was configured.
func (i *Importer) schemaNames(spec *openapi3.T) []string {
	if spec.Components == nil {
		return nil
	}
	if len(i.options.SchemaNames) > 0 {
		return i.options.SchemaNames
	}
	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// convertSchema maps one object schema to a section. Non-object schemas
// and schemas without convertible properties are reported as not ok.
func convertSchema(name string, ref *openapi3.SchemaRef) (schema.Section, bool) {
	if ref == nil || ref.Value == nil {
		return schema.Section{}, false
	}
	value := ref.Value
	if t := firstSchemaType(value); t != "" && t != "object" {
		return schema.Section{}, false
	}

	section := schema.Section{
		ID:    schema.NewID(),
		Title: name,
	}

	propNames := make([]string, 0, len(value.Properties))
	for propName := range value.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	for _, propName := range propNames {
		field, ok := convertProperty(propName, value.Properties[propName])
		if !ok {
			continue
		}
		section.Fields = append(section.Fields, field)
	}

	if len(section.Fields) == 0 {
		return schema.Section{}, false
	}
	return section, true
}

// convertProperty maps one property to a form field. Strings become text
// fields, or enum fields when the schema enumerates string values.
// Numeric and boolean properties map directly; everything else is skipped.
func convertProperty(name string, ref *openapi3.SchemaRef) (schema.Field, bool) {
	if ref == nil || ref.Value == nil {
		return schema.Field{}, false
	}
	value := ref.Value

	label := strings.TrimSpace(value.Title)
	if label == "" {
		label = name
	}

	field := schema.Field{
		ID:    schema.NewID(),
		Label: label,
	}

	switch firstSchemaType(value) {
	case "string":
		options := stringEnum(value.Enum)
		if len(options) > 0 {
			field.Type = schema.FieldTypeEnum
			field.Options = options
			return field, true
		}
		field.Type = schema.FieldTypeText
		return field, true
	case "number", "integer":
		field.Type = schema.FieldTypeNumber
		return field, true
	case "boolean":
		field.Type = schema.FieldTypeBoolean
		return field, true
	default:
		return schema.Field{}, false
	}
}

func firstSchemaType(value *openapi3.Schema) string {
	if value == nil || value.Type == nil {
		return ""
	}
	types := value.Type.Slice()
	if len(types) == 0 {
		return ""
	}
	return types[0]
}

// stringEnum keeps only string enum members, preserving document order.
func stringEnum(enum []any) []string {
	out := make([]string, 0, len(enum))
	for _, member := range enum {
		if text, ok := member.(string); ok {
			out = append(out, text)
		}
	}
	return out
}
