package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formboard/pkg/builder"
	"github.com/goliatone/go-formboard/pkg/schema"
)

// AddSectionCmd appends a section to a template.
func AddSectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-section <template> <title>",
		Short: "Append a section to a template",
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

			if _, err := board.Store.Apply(builder.AddSection{TemplateID: tpl.ID, Title: args[1]}); err != nil {
				return err
			}
			cmd.Printf("Added section %q to %s\n", args[1], tpl.Name)
			return nil
		},
	}
}

// SetSectionTitleCmd retitles a section by position.
func SetSectionTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-section-title <template> <section-index> <title>",
		Short: "Change a section title",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}
			tpl, err := resolveTemplate(board, args[0])
			if err != nil {
				return err
			}
			index, err := sectionIndex(tpl, args[1])
			if err != nil {
				return err
			}

			if _, err := board.Store.Apply(builder.SetSectionTitle{TemplateID: tpl.ID, Index: index, Title: args[2]}); err != nil {
				return err
			}
			cmd.Printf("Section %d of %s is now %q\n", index, tpl.Name, args[2])
			return nil
		},
	}
}

// AddFieldCmd appends a field to a section and optionally configures it in
// the same step.
func AddFieldCmd() *cobra.Command {
	var (
		sectionIdx int
		fieldType  string
		label      string
		options    []string
	)

	cmd := &cobra.Command{
		Use:   "add-field <template>",
		Short: "Append a field to a section",
		Long: `Append a field to a section. New fields start as text controls with
an empty label; use the flags to set type, label, and enum options in
the same step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}
			tpl, err := resolveTemplate(board, args[0])
			if err != nil {
				return err
			}

			state, err := board.Store.Apply(builder.AddField{TemplateID: tpl.ID, SectionIndex: sectionIdx})
			if err != nil {
				return err
			}

			tpl, _ = state.Template(tpl.ID)
			fieldIdx := len(tpl.Sections[sectionIdx].Fields) - 1
			field := tpl.Sections[sectionIdx].Fields[fieldIdx]

			if fieldType != "" || label != "" || len(options) > 0 {
				if fieldType != "" {
					kind := schema.FieldType(strings.ToLower(fieldType))
					if !kind.Valid() {
						return fmt.Errorf("unknown field type %q (one of %s)", fieldType, typeNames())
					}
					field.Type = kind
				}
				if label != "" {
					field.Label = label
				}
				if len(options) > 0 {
					field.Options = options
				}
				if _, err := board.Store.Apply(builder.UpdateField{
					TemplateID:   tpl.ID,
					SectionIndex: sectionIdx,
					FieldIndex:   fieldIdx,
					Field:        field,
				}); err != nil {
					return err
				}
			}

			cmd.Printf("Added %s field %s to section %d of %s\n", field.Type, field.ID, sectionIdx, tpl.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&sectionIdx, "section", 0, "section index to append to")
	cmd.Flags().StringVar(&fieldType, "type", "", "field type: "+typeNames())
	cmd.Flags().StringVar(&label, "label", "", "field label")
	cmd.Flags().StringSliceVar(&options, "options", nil, "enum options (comma separated)")

	return cmd
}

// SetFieldCmd rewrites a field's type, label, or options.
func SetFieldCmd() *cobra.Command {
	var (
		sectionIdx int
		fieldType  string
		label      string
		options    []string
	)

	cmd := &cobra.Command{
		Use:   "set-field <template> <field-index>",
		Short: "Update a field in place",
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
			if sectionIdx < 0 || sectionIdx >= len(tpl.Sections) {
				return fmt.Errorf("section index %d out of range", sectionIdx)
			}
			fieldIdx, err := fieldIndex(tpl.Sections[sectionIdx], args[1])
			if err != nil {
				return err
			}

			field := tpl.Sections[sectionIdx].Fields[fieldIdx]
			if fieldType != "" {
				kind := schema.FieldType(strings.ToLower(fieldType))
				if !kind.Valid() {
					return fmt.Errorf("unknown field type %q (one of %s)", fieldType, typeNames())
				}
				field.Type = kind
			}
			if cmd.Flags().Changed("label") {
				field.Label = label
			}
			if cmd.Flags().Changed("options") {
				field.Options = options
			}

			if _, err := board.Store.Apply(builder.UpdateField{
				TemplateID:   tpl.ID,
				SectionIndex: sectionIdx,
				FieldIndex:   fieldIdx,
				Field:        field,
			}); err != nil {
				return err
			}
			cmd.Printf("Updated field %s in %s\n", field.ID, tpl.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&sectionIdx, "section", 0, "section index")
	cmd.Flags().StringVar(&fieldType, "type", "", "field type: "+typeNames())
	cmd.Flags().StringVar(&label, "label", "", "field label")
	cmd.Flags().StringSliceVar(&options, "options", nil, "enum options (comma separated)")

	return cmd
}

// DeleteFieldCmd removes a field by position.
func DeleteFieldCmd() *cobra.Command {
	var sectionIdx int

	cmd := &cobra.Command{
		Use:   "delete-field <template> <field-index>",
		Short: "Remove a field from a section",
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
			if sectionIdx < 0 || sectionIdx >= len(tpl.Sections) {
				return fmt.Errorf("section index %d out of range", sectionIdx)
			}
			fieldIdx, err := fieldIndex(tpl.Sections[sectionIdx], args[1])
			if err != nil {
				return err
			}

			if _, err := board.Store.Apply(builder.DeleteField{
				TemplateID:   tpl.ID,
				SectionIndex: sectionIdx,
				FieldIndex:   fieldIdx,
			}); err != nil {
				return err
			}
			cmd.Printf("Deleted field %d from section %d of %s\n", fieldIdx, sectionIdx, tpl.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&sectionIdx, "section", 0, "section index")

	return cmd
}

func sectionIndex(tpl schema.Template, arg string) (int, error) {
	var index int
	if _, err := fmt.Sscanf(arg, "%d", &index); err != nil {
		return 0, fmt.Errorf("section index %q is not a number", arg)
	}
	if index < 0 || index >= len(tpl.Sections) {
		return 0, fmt.Errorf("section index %d out of range (template has %d)", index, len(tpl.Sections))
	}
	return index, nil
}

func fieldIndex(section schema.Section, arg string) (int, error) {
	var index int
	if _, err := fmt.Sscanf(arg, "%d", &index); err != nil {
		return 0, fmt.Errorf("field index %q is not a number", arg)
	}
	if index < 0 || index >= len(section.Fields) {
		return 0, fmt.Errorf("field index %d out of range (section has %d)", index, len(section.Fields))
	}
	return index, nil
}

func typeNames() string {
	kinds := schema.FieldTypes()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return strings.Join(names, ", ")
}
