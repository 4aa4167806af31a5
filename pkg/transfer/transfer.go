// Package transfer moves template sets in and out of the application as
// YAML documents, so forms can be shared between installations.
package transfer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formboard/pkg/builder"
	"github.com/goliatone/go-formboard/pkg/schema"
)

// document is the on-disk envelope. The version gate lets the format
// evolve without silently misreading old exports.
type document struct {
	Version   int               `yaml:"version"`
	Templates []schema.Template `yaml:"templates"`
}

const formatVersion = 1

// ErrUnsupportedVersion is returned when an import document declares a
// version this build does not understand.
var ErrUnsupportedVersion = errors.New("transfer: unsupported document version")

// Export writes the template set as a YAML document.
func Export(w io.Writer, templates []schema.Template) error {
	doc := document{
		Version:   formatVersion,
		Templates: templates,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("transfer: encode templates: %w", err)
	}
	return enc.Close()
}

// Decode parses a YAML export back into templates without touching any
// store.
func Decode(r io.Reader) ([]schema.Template, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("transfer: decode document: %w", err)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return doc.Templates, nil
}

// Result reports what an import did.
type Result struct {
	Imported int
	Skipped  []string
}

// Import decodes a YAML export and appends its templates to the store,
// one action per template so the template cap applies to each. Templates
// rejected by the cap are reported in Skipped rather than failing the
// whole import.
func Import(store *builder.Store, r io.Reader) (Result, error) {
	templates, err := Decode(r)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, tpl := range templates {
		if _, err := store.Apply(builder.ImportTemplate{Template: tpl}); err != nil {
			if errors.Is(err, builder.ErrTemplateLimit) {
				result.Skipped = append(result.Skipped, displayName(tpl))
				continue
			}
			return result, err
		}
		result.Imported++
	}
	return result, nil
}

func displayName(tpl schema.Template) string {
	if name := strings.TrimSpace(tpl.Name); name != "" {
		return name
	}
	return tpl.ID
}
