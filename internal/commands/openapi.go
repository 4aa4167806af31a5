package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formboard/pkg/builder"
	importer "github.com/goliatone/go-formboard/pkg/importer/openapi"
)

// ImportOpenAPICmd builds a template from an OpenAPI document's component
// schemas.
func ImportOpenAPICmd() *cobra.Command {
	var (
		schemas []string
		resolve bool
	)

	cmd := &cobra.Command{
		Use:   "import-openapi <file>",
		Short: "Create a template from an OpenAPI document",
		Long: `Create a template from an OpenAPI document. Each object schema under
components/schemas becomes a section; string, number, integer, boolean,
and string-enum properties become fields. Other property types are
skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			conv := importer.New(importer.Options{
				ResolveReferences: resolve,
				SchemaNames:       schemas,
			})
			tpl, err := conv.Template(cmd.Context(), raw)
			if err != nil {
				return err
			}

			if _, err := board.Store.Apply(builder.ImportTemplate{Template: tpl}); err != nil {
				return err
			}
			cmd.Printf("Imported %s (%s) with %d section(s).\n", tpl.Name, tpl.ID, len(tpl.Sections))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&schemas, "schemas", nil, "component schema names to convert (default all)")
	cmd.Flags().BoolVar(&resolve, "resolve-refs", false, "resolve external references and validate the document")

	return cmd
}
