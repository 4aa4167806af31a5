package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formboard/pkg/transfer"
)

// ExportCmd writes the full template set as YAML.
func ExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all templates as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}

			if output == "" {
				return transfer.Export(cmd.OutOrStdout(), board.Store.State().Templates)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer file.Close()

			if err := transfer.Export(file, board.Store.State().Templates); err != nil {
				return err
			}
			cmd.Printf("Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write YAML to a file instead of stdout")

	return cmd
}

// ImportCmd appends templates from a YAML export, honoring the template
// cap.
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import templates from a YAML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer file.Close()

			result, err := transfer.Import(board.Store, file)
			if err != nil {
				return err
			}

			cmd.Printf("Imported %d template(s).\n", result.Imported)
			for _, name := range result.Skipped {
				cmd.Printf("Skipped %q: template limit reached.\n", name)
			}
			return nil
		},
	}
}
