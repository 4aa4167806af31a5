package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formboard/pkg/renderers/tui"
)

// FillCmd runs an interactive terminal session for one template and logs
// the collected answers as a submission.
func FillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill <template>",
		Short: "Fill out a form in the terminal",
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

			if err := board.Controller.StartFill(tpl.ID); err != nil {
				return err
			}
			defer board.Controller.CloseFill()

			collector := tui.NewCollector()
			answers, err := collector.Collect(cmd.Context(), tpl)
			if err != nil {
				if errors.Is(err, tui.ErrAborted) {
					cmd.Println("Aborted; nothing was recorded.")
					return nil
				}
				return err
			}

			if err := board.Controller.SubmitAnswers(answers); err != nil {
				return err
			}
			cmd.Printf("Recorded submission for %s (%d answers).\n", tpl.Name, len(answers))
			return nil
		},
	}
}
