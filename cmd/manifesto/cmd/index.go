// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

func newIndexCmd() *cobra.Command {
	var subPath string

	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Index the workspace into a file inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			data := map[string]interface{}{}
			if subPath != "" {
				data["path"] = subPath
			}

			act := models.Action{
				ID:      "cli-index",
				Label:   "Index codebase",
				Command: models.CommandIndexCodebase,
				Data:    data,
				Safety:  models.SafetySafe,
			}

			outcome := a.Dispatcher.Process(act, true)
			fmt.Println(outcome.Message)
			if !outcome.Executed {
				return fmt.Errorf("index did not execute")
			}
			return nil
		},
	}

	indexCmd.Flags().StringVar(&subPath, "path", "", "index only this workspace-relative subtree")

	return indexCmd
}
