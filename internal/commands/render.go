package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formboard/pkg/render"
	"github.com/goliatone/go-formboard/pkg/renderers/vanilla"
)

// RenderCmd writes a template's HTML form to stdout or a file.
func RenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a template as an HTML form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}
			tpl, err := resolveTemplate(board, args[0])
			if err != nil {
				return err
			}
			theme, err := themeConfig()
			if err != nil {
				return err
			}

			renderer, err := vanilla.New()
			if err != nil {
				return err
			}
			page, err := renderer.Render(cmd.Context(), tpl, render.RenderOptions{Theme: theme})
			if err != nil {
				return err
			}

			if output == "" {
				cmd.Print(string(page))
				return nil
			}
			if err := os.WriteFile(output, page, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			cmd.Printf("Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to a file instead of stdout")

	return cmd
}
