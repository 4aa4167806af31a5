package formboard

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formboard/pkg/render"
)

// LoadThemeManifest reads a go-theme manifest from a YAML file.
func LoadThemeManifest(path string) (*theme.Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formboard: read theme manifest: %w", err)
	}
	var manifest theme.Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("formboard: parse theme manifest: %w", err)
	}
	return &manifest, nil
}

// ThemeConfig resolves a manifest and variant into renderer-facing theme
// configuration. Registering into a throwaway registry runs go-theme's
// manifest validation before the tokens are flattened.
func ThemeConfig(manifest *theme.Manifest, variant string) (*render.ThemeConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("formboard: nil theme manifest")
	}
	if err := theme.NewRegistry().Register(manifest); err != nil {
		return nil, fmt.Errorf("formboard: invalid theme manifest %q: %w", manifest.Name, err)
	}

	selection := &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}
	return render.ThemeConfigFromSelection(selection), nil
}
