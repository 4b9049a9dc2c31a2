// SPDX-License-Identifier: Apache-2.0

package manifestocmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piggie-dev/manifesto/internal/app"
	"github.com/piggie-dev/manifesto/internal/core/models"
)

// AppFactory builds the wired application for a command invocation.
type AppFactory func() (*app.App, error)

// NewManifestoCmd creates the manifesto command tree.
func NewManifestoCmd(newApp AppFactory) *cobra.Command {
	manifestoCmd := &cobra.Command{
		Use:   "manifesto",
		Short: "Create and preview the project manifesto",
	}

	manifestoCmd.AddCommand(newCreateCmd(newApp))
	manifestoCmd.AddCommand(newPreviewCmd(newApp))

	return manifestoCmd
}

func buildAction(kind, contentFile string, force, backup bool) (models.Action, error) {
	data := map[string]interface{}{
		"type":           kind,
		"forceOverwrite": force,
		"createBackup":   backup,
	}
	if contentFile != "" {
		content, err := os.ReadFile(contentFile)
		if err != nil {
			return models.Action{}, fmt.Errorf("error reading content file: %w", err)
		}
		data["content"] = string(content)
	}

	return models.Action{
		ID:      "cli-manifesto-create",
		Label:   "Create project manifesto",
		Command: models.CommandCreateManifesto,
		Data:    data,
		Safety:  models.SafetyCautious,
	}, nil
}

func newCreateCmd(newApp AppFactory) *cobra.Command {
	var kind string
	var contentFile string
	var force bool
	var backup bool
	var approve bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create the project manifesto",
		Long: `Create the project manifesto. This command always requires approval:
it never runs under auto mode, and an existing manifesto is never
silently overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			act, err := buildAction(kind, contentFile, force, backup)
			if err != nil {
				return err
			}

			// Auto mode is irrelevant here: the dispatcher forces manual
			// approval for create-manifesto regardless.
			outcome := a.Dispatcher.Process(act, a.Config.AutoMode)
			if outcome.RequiresApproval && approve {
				outcome = a.Dispatcher.Execute(act)
			}

			fmt.Println(outcome.Message)
			if outcome.RequiresApproval {
				fmt.Println("Re-run with --approve to execute.")
			}
			return nil
		},
	}

	createCmd.Flags().StringVar(&kind, "type", "general", "manifesto type (general, api, frontend, security)")
	createCmd.Flags().StringVar(&contentFile, "content-file", "", "file holding the manifesto content (default is the built-in template)")
	createCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing manifesto")
	createCmd.Flags().BoolVar(&backup, "backup", false, "back up the existing manifesto before overwriting")
	createCmd.Flags().BoolVar(&approve, "approve", true, "approve the creation (manifesto writes always need approval)")

	return createCmd
}

func newPreviewCmd(newApp AppFactory) *cobra.Command {
	var kind string
	var contentFile string

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the manifesto a create would write",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			data := map[string]interface{}{"type": kind}
			if contentFile != "" {
				content, err := os.ReadFile(contentFile)
				if err != nil {
					return fmt.Errorf("error reading content file: %w", err)
				}
				data["content"] = string(content)
			}

			act := models.Action{
				ID:      "cli-manifesto-preview",
				Label:   "Preview project manifesto",
				Command: models.CommandPreviewManifesto,
				Data:    data,
				Safety:  models.SafetySafe,
			}

			// Previews have no side effects; run them directly.
			outcome := a.Dispatcher.Execute(act)
			fmt.Println(outcome.Message)
			if !outcome.Executed {
				return fmt.Errorf("preview failed")
			}
			return nil
		},
	}

	previewCmd.Flags().StringVar(&kind, "type", "general", "manifesto type (general, api, frontend, security)")
	previewCmd.Flags().StringVar(&contentFile, "content-file", "", "file holding the manifesto content (default is the built-in template)")

	return previewCmd
}
