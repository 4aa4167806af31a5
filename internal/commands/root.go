// Package commands implements the formboard CLI: template authoring,
// interactive filling, rendering, the HTTP server, and import/export.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	formboard "github.com/goliatone/go-formboard"
	"github.com/goliatone/go-formboard/pkg/render"
	"github.com/goliatone/go-formboard/pkg/schema"
)

var dataPath string

// RootCmd creates and returns the root command for the formboard CLI.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formboard",
		Short: "Build form templates and collect submissions",
		Long: `Formboard manages form templates made of sections and typed fields,
renders them as HTML or interactive terminal sessions, and logs
submissions to local key-value storage.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the data file (default formboard.json, or the config file's data setting)")

	return cmd
}

// openBoard wires the application against the configured data file.
func openBoard() (*formboard.App, error) {
	cfg := loadConfig()
	path := cfg.Data
	if dataPath != "" {
		path = dataPath
	}
	return formboard.Open(path)
}

// themeConfig resolves the configured theme manifest, nil when none is
// configured.
func themeConfig() (*render.ThemeConfig, error) {
	cfg := loadConfig()
	if cfg.ThemeManifest == "" {
		return nil, nil
	}
	manifest, err := formboard.LoadThemeManifest(cfg.ThemeManifest)
	if err != nil {
		return nil, err
	}
	return formboard.ThemeConfig(manifest, cfg.ThemeVariant)
}

// resolveTemplate finds a template by id or, as a convenience, by exact
// name.
func resolveTemplate(board *formboard.App, ref string) (schema.Template, error) {
	state := board.Store.State()
	if tpl, ok := state.Template(ref); ok {
		return tpl, nil
	}
	for _, tpl := range state.Templates {
		if tpl.Name == ref {
			return tpl, nil
		}
	}
	return schema.Template{}, fmt.Errorf("no template with id or name %q", ref)
}
