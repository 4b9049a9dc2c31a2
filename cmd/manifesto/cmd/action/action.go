// SPDX-License-Identifier: Apache-2.0

package action

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piggie-dev/manifesto/internal/app"
	"github.com/piggie-dev/manifesto/internal/core/dispatch"
	"github.com/piggie-dev/manifesto/internal/core/format"
	"github.com/piggie-dev/manifesto/internal/core/models"
)

// AppFactory builds the wired application for a command invocation.
type AppFactory func() (*app.App, error)

// NewActionCmd creates the action command tree.
func NewActionCmd(newApp AppFactory) *cobra.Command {
	actionCmd := &cobra.Command{
		Use:   "action",
		Short: "Dispatch and run actions",
		Long:  `Dispatch actions through the approval gate and run approved ones`,
	}

	actionCmd.AddCommand(newActionRunCmd(newApp))
	actionCmd.AddCommand(newActionPlanCmd(newApp))
	actionCmd.AddCommand(newActionListCmd(newApp))

	return actionCmd
}

func newActionRunCmd(newApp AppFactory) *cobra.Command {
	var autoFlag bool
	var approveFlag bool

	runCmd := &cobra.Command{
		Use:   "run [action-file]",
		Short: "Run a single action from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var act models.Action
			if err := format.ParseFile(args[0], &act); err != nil {
				return fmt.Errorf("error loading action file: %w", err)
			}

			autoMode := autoFlag || a.Config.AutoMode
			outcome := a.Dispatcher.Process(act, autoMode)

			if outcome.RequiresApproval && approveFlag {
				fmt.Printf("%s\nApproval given on the command line, executing.\n", outcome.Message)
				outcome = a.Dispatcher.Execute(act)
			}

			fmt.Println(outcome.Message)
			if outcome.RequiresApproval {
				fmt.Println("Re-run with --approve to execute this action.")
			}
			if !outcome.Executed && !outcome.RequiresApproval {
				return fmt.Errorf("action did not execute")
			}
			return nil
		},
	}

	runCmd.Flags().BoolVar(&autoFlag, "auto", false, "enable auto mode for this invocation")
	runCmd.Flags().BoolVar(&approveFlag, "approve", false, "execute even if the action requires approval")

	return runCmd
}

func newActionPlanCmd(newApp AppFactory) *cobra.Command {
	var autoFlag bool
	var continueOnError bool

	planCmd := &cobra.Command{
		Use:   "plan [plan-file]",
		Short: "Run a batch of actions from a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var plan models.Plan
			if err := format.ParseFile(args[0], &plan); err != nil {
				return fmt.Errorf("error loading plan file: %w", err)
			}

			autoMode := autoFlag || a.Config.AutoMode
			runner := dispatch.NewPlanRunner(a.Dispatcher, continueOnError, a.Logger)
			report, runErr := runner.Run(plan, autoMode)

			for _, msg := range report.Messages {
				fmt.Println(msg)
			}
			fmt.Printf("\nPlan summary: %d executed, %d pending (out of %d actions)\n",
				report.Executed, len(report.Pending), len(plan.Actions))

			return runErr
		},
	}

	planCmd.Flags().BoolVar(&autoFlag, "auto", false, "enable auto mode for this invocation")
	planCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "keep going when an action does not execute")

	return planCmd
}

func newActionListCmd(newApp AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			fmt.Println("Available commands:")
			fmt.Println("-------------------")
			for _, tag := range a.Registry.Commands() {
				ex, err := a.Registry.Get(tag)
				if err != nil {
					continue
				}
				fmt.Printf("- %s: %s\n", tag, ex.Description())
			}
			return nil
		},
	}
}
