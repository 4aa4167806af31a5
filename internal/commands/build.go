package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	formboard "github.com/goliatone/go-formboard"
	"github.com/goliatone/go-formboard/pkg/builder"
	"github.com/goliatone/go-formboard/pkg/renderers/tui"
	"github.com/goliatone/go-formboard/pkg/schema"
)

// BuildCmd runs an interactive authoring session: pick or create a
// template, then edit sections and fields through terminal prompts until
// done. Every change persists as it is applied.
func BuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [template]",
		Short: "Author a template interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := openBoard()
			if err != nil {
				return err
			}

			session := &buildSession{
				board:  board,
				driver: tui.NewSurveyDriver(),
			}

			var tpl schema.Template
			if len(args) == 1 {
				tpl, err = resolveTemplate(board, args[0])
			} else {
				tpl, err = session.pickOrCreate(cmd)
			}
			if err != nil {
				return err
			}

			if err := session.loop(cmd, tpl.ID); err != nil {
				if errors.Is(err, tui.ErrAborted) {
					cmd.Println("Left the builder; changes so far are saved.")
					return nil
				}
				return err
			}
			return nil
		},
	}
}

type buildSession struct {
	board  *formboard.App
	driver tui.PromptDriver
}

// pickOrCreate offers the existing templates plus a create entry.
func (s *buildSession) pickOrCreate(cmd *cobra.Command) (schema.Template, error) {
	ctx := cmd.Context()
	templates := s.board.Store.State().Templates

	options := make([]string, 0, len(templates)+1)
	for _, tpl := range templates {
		options = append(options, tpl.Name)
	}
	if len(templates) < builder.MaxTemplates {
		options = append(options, "(new template)")
	}
	if len(options) == 0 {
		return schema.Template{}, fmt.Errorf("template limit reached and none selected")
	}

	idx, err := s.driver.Select(ctx, tui.SelectConfig{
		Message: "Which template?",
		Options: options,
	})
	if err != nil {
		return schema.Template{}, err
	}

	if idx >= 0 && idx < len(templates) {
		return templates[idx], nil
	}

	name, err := s.driver.Input(ctx, tui.InputConfig{Message: "Template name"})
	if err != nil {
		return schema.Template{}, err
	}
	state, err := s.board.Store.Apply(builder.CreateTemplate{Name: name})
	if err != nil {
		return schema.Template{}, err
	}
	tpl, ok := state.Selected()
	if !ok {
		return schema.Template{}, fmt.Errorf("created template not found")
	}
	return tpl, nil
}

func (s *buildSession) loop(cmd *cobra.Command, templateID string) error {
	ctx := cmd.Context()

	actions := []string{
		"Rename template",
		"Add section",
		"Retitle section",
		"Add field",
		"Edit field",
		"Delete field",
		"Done",
	}

	for {
		tpl, ok := s.board.Store.State().Template(templateID)
		if !ok {
			return builder.ErrTemplateNotFound
		}
		if err := s.driver.Info(ctx, summarize(tpl)); err != nil {
			return err
		}

		idx, err := s.driver.Select(ctx, tui.SelectConfig{
			Message: "What next?",
			Options: actions,
		})
		if err != nil {
			return err
		}

		switch actions[idx] {
		case "Rename template":
			name, err := s.driver.Input(ctx, tui.InputConfig{Message: "New name", Default: tpl.Name})
			if err != nil {
				return err
			}
			if _, err := s.board.Store.Apply(builder.RenameTemplate{ID: tpl.ID, Name: name}); err != nil {
				return err
			}

		case "Add section":
			title, err := s.driver.Input(ctx, tui.InputConfig{Message: "Section title"})
			if err != nil {
				return err
			}
			if _, err := s.board.Store.Apply(builder.AddSection{TemplateID: tpl.ID, Title: title}); err != nil {
				return err
			}

		case "Retitle section":
			sectionIdx, err := s.pickSection(ctx, tpl)
			if err != nil {
				return err
			}
			title, err := s.driver.Input(ctx, tui.InputConfig{
				Message: "Section title",
				Default: tpl.Sections[sectionIdx].Title,
			})
			if err != nil {
				return err
			}
			if _, err := s.board.Store.Apply(builder.SetSectionTitle{TemplateID: tpl.ID, Index: sectionIdx, Title: title}); err != nil {
				return err
			}

		case "Add field":
			sectionIdx, err := s.pickSection(ctx, tpl)
			if err != nil {
				return err
			}
			state, err := s.board.Store.Apply(builder.AddField{TemplateID: tpl.ID, SectionIndex: sectionIdx})
			if err != nil {
				return err
			}
			fresh, _ := state.Template(tpl.ID)
			fieldIdx := len(fresh.Sections[sectionIdx].Fields) - 1
			if err := s.editField(ctx, fresh, sectionIdx, fieldIdx); err != nil {
				return err
			}

		case "Edit field":
			sectionIdx, fieldIdx, err := s.pickField(ctx, tpl)
			if err != nil {
				return err
			}
			if err := s.editField(ctx, tpl, sectionIdx, fieldIdx); err != nil {
				return err
			}

		case "Delete field":
			sectionIdx, fieldIdx, err := s.pickField(ctx, tpl)
			if err != nil {
				return err
			}
			if _, err := s.board.Store.Apply(builder.DeleteField{
				TemplateID:   tpl.ID,
				SectionIndex: sectionIdx,
				FieldIndex:   fieldIdx,
			}); err != nil {
				return err
			}

		case "Done":
			cmd.Println("Saved.")
			return nil
		}
	}
}

// editField prompts for type, label, and enum options, then applies a
// whole-field replacement.
func (s *buildSession) editField(ctx context.Context, tpl schema.Template, sectionIdx, fieldIdx int) error {
	field := tpl.Sections[sectionIdx].Fields[fieldIdx]

	kinds := schema.FieldTypes()
	kindNames := make([]string, len(kinds))
	defaultIdx := 0
	for i, kind := range kinds {
		kindNames[i] = string(kind)
		if kind == field.Type {
			defaultIdx = i
		}
	}

	idx, err := s.driver.Select(ctx, tui.SelectConfig{
		Message:      "Field type",
		Options:      kindNames,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(kinds) {
		field.Type = kinds[idx]
	}

	label, err := s.driver.Input(ctx, tui.InputConfig{Message: "Label", Default: field.Label})
	if err != nil {
		return err
	}
	field.Label = label

	if field.Type == schema.FieldTypeEnum {
		raw, err := s.driver.Input(ctx, tui.InputConfig{
			Message: "Options (comma separated)",
			Default: strings.Join(field.Options, ","),
		})
		if err != nil {
			return err
		}
		field.Options = splitOptions(raw)
	}

	_, err = s.board.Store.Apply(builder.UpdateField{
		TemplateID:   tpl.ID,
		SectionIndex: sectionIdx,
		FieldIndex:   fieldIdx,
		Field:        field,
	})
	return err
}

func (s *buildSession) pickSection(ctx context.Context, tpl schema.Template) (int, error) {
	if len(tpl.Sections) == 1 {
		return 0, nil
	}
	options := make([]string, len(tpl.Sections))
	for i, section := range tpl.Sections {
		options[i] = fmt.Sprintf("%d: %s", i, section.Title)
	}
	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Which section?", Options: options})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(tpl.Sections) {
		return 0, builder.ErrSectionOutOfRange
	}
	return idx, nil
}

func (s *buildSession) pickField(ctx context.Context, tpl schema.Template) (int, int, error) {
	type position struct{ section, field int }

	var options []string
	var positions []position
	for si, section := range tpl.Sections {
		for fi, field := range section.Fields {
			label := field.Label
			if label == "" {
				label = field.ID
			}
			options = append(options, fmt.Sprintf("%s / %s (%s)", section.Title, label, field.Type))
			positions = append(positions, position{section: si, field: fi})
		}
	}
	if len(options) == 0 {
		return 0, 0, fmt.Errorf("template has no fields yet")
	}

	idx, err := s.driver.Select(ctx, tui.SelectConfig{Message: "Which field?", Options: options})
	if err != nil {
		return 0, 0, err
	}
	if idx < 0 || idx >= len(positions) {
		return 0, 0, fmt.Errorf("no field selected")
	}
	return positions[idx].section, positions[idx].field, nil
}

func summarize(tpl schema.Template) string {
	fields := 0
	for _, section := range tpl.Sections {
		fields += len(section.Fields)
	}
	return fmt.Sprintf("-- %s: %d section(s), %d field(s) --", tpl.Name, len(tpl.Sections), fields)
}

func splitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
