package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formboard/pkg/builder"
)

// ListCmd prints the stored templates.
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}

			templates := board.Store.State().Templates
			if len(templates) == 0 {
				cmd.Println("No templates yet.")
				return nil
			}
			for _, tpl := range templates {
				fields := 0
				for _, section := range tpl.Sections {
					fields += len(section.Fields)
				}
				cmd.Printf("%s  %s  (%d sections, %d fields)\n", tpl.ID, tpl.Name, len(tpl.Sections), fields)
			}
			cmd.Printf("%d of %d templates used.\n", len(templates), builder.MaxTemplates)
			return nil
		},
	}
}

// CreateCmd adds a new template with one default section.
func CreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}

			state, err := board.Store.Apply(builder.CreateTemplate{Name: args[0]})
			if err != nil {
				return err
			}
			tpl, ok := state.Selected()
			if !ok {
				return fmt.Errorf("created template not found")
			}
			cmd.Printf("Created %s (%s)\n", tpl.Name, tpl.ID)
			return nil
		},
	}
}

// RenameCmd changes a template's name.
func RenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <template> <name>",
		Short: "Rename a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}
			tpl, err := resolveTemplate(board, args[0])
			if err != nil {
				return err
			}

			if _, err := board.Store.Apply(builder.RenameTemplate{ID: tpl.ID, Name: args[1]}); err != nil {
				return err
			}
			cmd.Printf("Renamed %s to %s\n", tpl.ID, args[1])
			return nil
		},
	}
}

// DeleteCmd removes a template.
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template>",
		Short: "Delete a template",
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

			if _, err := board.Store.Apply(builder.DeleteTemplate{ID: tpl.ID}); err != nil {
				return err
			}
			cmd.Printf("Deleted %s (%s)\n", tpl.Name, tpl.ID)
			return nil
		},
	}
}

// ShowCmd dumps one template as YAML.
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <template>",
		Short: "Print a template definition",
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

			out, err := yaml.Marshal(tpl)
			if err != nil {
				return fmt.Errorf("encode template: %w", err)
			}
			cmd.Print(string(out))
			return nil
		},
	}
}
