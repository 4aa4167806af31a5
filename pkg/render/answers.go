package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formboard/pkg/schema"
)

// CoerceAnswer converts the raw text a control produced into the value a
// submission stores for the field's type. ok=false means the field
// contributes nothing: label fields never answer, and blank input is
// omitted rather than stored as a zero value.
func CoerceAnswer(field schema.Field, raw string) (value any, ok bool, err error) {
	trimmed := strings.TrimSpace(raw)

	switch field.Type {
	case schema.FieldTypeLabel:
		return nil, false, nil
	case schema.FieldTypeText:
		if trimmed == "" {
			return nil, false, nil
		}
		return raw, true, nil
	case schema.FieldTypeNumber:
		if trimmed == "" {
			return nil, false, nil
		}
		number, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, false, fmt.Errorf("render: field %q: %q is not a number", field.ID, raw)
		}
		return number, true, nil
	case schema.FieldTypeBoolean:
		switch strings.ToLower(trimmed) {
		case "":
			return false, true, nil
		case "true", "on", "yes", "1":
			return true, true, nil
		case "false", "off", "no", "0":
			return false, true, nil
		default:
			return nil, false, fmt.Errorf("render: field %q: %q is not a boolean", field.ID, raw)
		}
	case schema.FieldTypeEnum:
		if trimmed == "" {
			return nil, false, nil
		}
		for _, option := range field.Options {
			if option == trimmed {
				return option, true, nil
			}
		}
		return nil, false, fmt.Errorf("render: field %q: %q is not one of the options", field.ID, raw)
	default:
		return nil, false, fmt.Errorf("render: field %q has unknown type %q", field.ID, field.Type)
	}
}
