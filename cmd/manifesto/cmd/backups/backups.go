// SPDX-License-Identifier: Apache-2.0

package backups

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/piggie-dev/manifesto/internal/app"
)

// AppFactory builds the wired application for a command invocation.
type AppFactory func() (*app.App, error)

// NewBackupsCmd creates the backups command tree.
func NewBackupsCmd(newApp AppFactory) *cobra.Command {
	backupsCmd := &cobra.Command{
		Use:   "backups",
		Short: "Inspect manifesto backups",
	}

	backupsCmd.AddCommand(newListCmd(newApp))

	return backupsCmd
}

func newListCmd(newApp AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List files in the managed backup directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			dir := a.BackupsDir()
			entries, err := os.ReadDir(dir)
			if err != nil {
				if os.IsNotExist(err) {
					fmt.Println("No backups yet.")
					return nil
				}
				return fmt.Errorf("error reading backup directory: %w", err)
			}

			names := make([]string, 0, len(entries))
			for _, entry := range entries {
				if !entry.IsDir() {
					names = append(names, entry.Name())
				}
			}
			sort.Strings(names)

			if len(names) == 0 {
				fmt.Println("No backups yet.")
				return nil
			}

			fmt.Printf("Backups in %s:\n", dir)
			for _, name := range names {
				fmt.Printf("- %s\n", name)
			}
			return nil
		},
	}
}
