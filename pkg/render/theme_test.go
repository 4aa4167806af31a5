package render

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestThemeConfigFromSelection(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":   "#123456",
			"surface": "#ffffff",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{
					Files: map[string]string{"stylesheet": "theme.dark.css"},
				},
			},
		},
	}

	cfg := ThemeConfigFromSelection(&theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	})
	if cfg == nil {
		t.Fatalf("expected config")
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("variant token not merged, got %s", cfg.Tokens["brand"])
	}
	if cfg.Tokens["surface"] != "#ffffff" {
		t.Fatalf("base token lost, got %s", cfg.Tokens["surface"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css var not derived, got %s", cfg.CSSVars["--brand"])
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("unexpected asset url: %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %s", got)
	}
}

func TestThemeConfig_CSSVarBlock(t *testing.T) {
	cfg := &ThemeConfig{CSSVars: map[string]string{
		"--brand":   "#123456",
		"--surface": "#ffffff",
	}}

	block := cfg.CSSVarBlock()
	if !strings.Contains(block, "--brand: #123456;") {
		t.Fatalf("missing brand var: %q", block)
	}
	if strings.Index(block, "--brand") > strings.Index(block, "--surface") {
		t.Fatalf("vars not sorted: %q", block)
	}
}

func TestThemeConfigFromSelection_Nil(t *testing.T) {
	if cfg := ThemeConfigFromSelection(nil); cfg != nil {
		t.Fatalf("expected nil config")
	}
	if cfg := ThemeConfigFromSelection(&theme.Selection{Theme: "x"}); cfg != nil {
		t.Fatalf("expected nil config without manifest")
	}
}
