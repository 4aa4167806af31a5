package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig is the renderer-facing view of a resolved theme selection:
// flattened tokens, the CSS custom properties derived from them, and an
// asset URL resolver.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	AssetURL func(name string) string
}

// ThemeConfigFromSelection flattens a go-theme selection into a
// ThemeConfig. Variant tokens override base manifest tokens; every token
// also becomes a --<name> CSS variable.
func ThemeConfigFromSelection(selection *theme.Selection) *ThemeConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest

	tokens := make(map[string]string, len(manifest.Tokens))
	for name, value := range manifest.Tokens {
		tokens[name] = value
	}

	assets := manifest.Assets
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for name, value := range variant.Tokens {
			tokens[name] = value
		}
		if len(variant.Assets.Files) > 0 {
			merged := theme.Assets{Prefix: assets.Prefix, Files: make(map[string]string, len(assets.Files)+len(variant.Assets.Files))}
			for name, file := range assets.Files {
				merged.Files[name] = file
			}
			for name, file := range variant.Assets.Files {
				merged.Files[name] = file
			}
			assets = merged
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for name, value := range tokens {
		cssVars["--"+name] = value
	}

	return &ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
		AssetURL: func(name string) string {
			file, ok := assets.Files[name]
			if !ok {
				return ""
			}
			prefix := strings.TrimSuffix(assets.Prefix, "/")
			if prefix == "" {
				return file
			}
			return prefix + "/" + file
		},
	}
}

// CSSVarBlock renders the CSS variables as declarations suitable for a
// :root block, sorted for deterministic output.
func (c *ThemeConfig) CSSVarBlock() string {
	if c == nil || len(c.CSSVars) == 0 {
		return ""
	}
	names := make([]string, 0, len(c.CSSVars))
	for name := range c.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		builder.WriteString(name)
		builder.WriteString(": ")
		builder.WriteString(c.CSSVars[name])
		builder.WriteString(";\n")
	}
	return builder.String()
}
