// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piggie-dev/manifesto/cmd/manifesto/cmd/action"
	"github.com/piggie-dev/manifesto/cmd/manifesto/cmd/backups"
	"github.com/piggie-dev/manifesto/cmd/manifesto/cmd/manifestocmd"
	"github.com/piggie-dev/manifesto/internal/app"
	"github.com/piggie-dev/manifesto/internal/core/config"
	"github.com/piggie-dev/manifesto/internal/version"
)

var (
	// Project directory
	projectDir string

	// Verbose logging
	verbose bool

	// Loaded configuration
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "manifesto",
	Short: "Manifesto Enforcement Tool",
	Long: `Manifesto enforces project coding-standard documents against the
files in a workspace. Actions are dispatched either for immediate
execution or for explicit approval; the project manifesto itself is
protected from silent overwrites.`,
	Version: fmt.Sprintf("%s (commit: %s)", version.Version, version.Commit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if projectDir == "" {
			projectDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("error getting current directory: %w", err)
			}
		} else {
			projectDir, err = filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("error resolving project directory: %w", err)
			}
		}

		cfg, err = config.Load(projectDir)
		if err != nil {
			fmt.Printf("Warning: error loading configuration: %v\n", err)
			fmt.Println("Using default configuration instead.")
			cfg = config.NewDefaultConfig()
		}

		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newApp() (*app.App, error) {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	return app.New(projectDir, cfg, logger)
}

func init() {
	rootCmd.AddCommand(action.NewActionCmd(newApp))
	rootCmd.AddCommand(manifestocmd.NewManifestoCmd(newApp))
	rootCmd.AddCommand(backups.NewBackupsCmd(newApp))
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newIndexCmd())

	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "project directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
