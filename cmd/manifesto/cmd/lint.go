// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [file]",
		Short: "Check a file against the manifesto rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			act := models.Action{
				ID:      "cli-lint",
				Label:   fmt.Sprintf("Lint %s", args[0]),
				Command: models.CommandLintCode,
				Data:    map[string]interface{}{"fileName": args[0]},
				Safety:  models.SafetySafe,
			}

			// Linting is read-only; run it directly.
			outcome := a.Dispatcher.Execute(act)
			fmt.Println(outcome.Message)
			if !outcome.Executed {
				return fmt.Errorf("lint failed")
			}
			return nil
		},
	}
}
