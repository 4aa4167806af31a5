package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// SubmissionsCmd prints the submission log for a template.
func SubmissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submissions <template>",
		Short: "Print a template's submission log",
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

			log := board.Controller.Submissions(tpl.ID)
			if len(log) == 0 {
				cmd.Printf("No submissions for %s.\n", tpl.Name)
				return nil
			}

			for i, submission := range log {
				raw, err := json.Marshal(submission)
				if err != nil {
					return fmt.Errorf("encode submission %d: %w", i, err)
				}
				cmd.Printf("%d: %s\n", i+1, raw)
			}
			return nil
		},
	}
}
