//go:build integration
// +build integration

// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggie-dev/manifesto/internal/app"
	"github.com/piggie-dev/manifesto/internal/core/config"
	"github.com/piggie-dev/manifesto/internal/core/dispatch"
	"github.com/piggie-dev/manifesto/internal/core/models"
)

// TestBasicWorkflow exercises the full workflow end-to-end: config
// loading, the approval gate, the manifesto overwrite guard, and a plan
// run, all against a real temporary workspace.
func TestBasicWorkflow(t *testing.T) {
	tempDir := t.TempDir()

	cfg, err := config.Load(tempDir)
	require.NoError(t, err)

	a, err := app.New(tempDir, cfg, nil)
	require.NoError(t, err)

	// 1. Default configuration
	t.Run("ConfigurationLoad", func(t *testing.T) {
		assert.Equal(t, config.DefaultManifestoPath, cfg.ManifestoPath)
		assert.Equal(t, config.DefaultBackupsDir, cfg.BackupsDir)
		assert.False(t, cfg.AutoMode)

		fmt.Printf("✓ Configuration loaded successfully\n")
		fmt.Printf("  Manifesto Path: %s\n", cfg.ManifestoPath)
		fmt.Printf("  Backups Dir: %s\n", cfg.BackupsDir)
	})

	// 2. The approval gate
	t.Run("ApprovalGate", func(t *testing.T) {
		act := models.Action{
			ID:      "it-1",
			Label:   "Create README",
			Command: models.CommandCreateFile,
			Data: map[string]interface{}{
				"fileName": "README.md",
				"content":  "# Integration\n",
			},
		}

		// Approval mode: nothing executes, nothing is written.
		outcome := a.Dispatcher.Process(act, false)
		assert.True(t, outcome.RequiresApproval)
		assert.False(t, outcome.Executed)
		assert.NoFileExists(t, filepath.Join(tempDir, "README.md"))

		// Auto mode executes it.
		outcome = a.Dispatcher.Process(act, true)
		assert.True(t, outcome.Executed)
		assert.FileExists(t, filepath.Join(tempDir, "README.md"))

		fmt.Printf("✓ Approval gate working correctly\n")
	})

	// 3. The manifesto overwrite guard
	t.Run("ManifestoGuard", func(t *testing.T) {
		create := models.Action{
			ID:      "it-2",
			Label:   "Create manifesto",
			Command: models.CommandCreateManifesto,
			Data:    map[string]interface{}{"content": "# Rules v1\n"},
		}

		// create-manifesto never auto-executes.
		outcome := a.Dispatcher.Process(create, true)
		assert.True(t, outcome.RequiresApproval)

		// Approved execution writes it.
		outcome = a.Dispatcher.Execute(create)
		require.True(t, outcome.Executed, outcome.Message)
		assert.FileExists(t, filepath.Join(tempDir, "manifesto.md"))

		// A second create is refused while the file exists.
		create.Data = map[string]interface{}{"content": "# Rules v2\n"}
		outcome = a.Dispatcher.Execute(create)
		require.True(t, outcome.Executed)
		assert.Contains(t, outcome.Message, "No changes were made")

		// Forced overwrite with backup replaces it and keeps the old copy.
		create.Data = map[string]interface{}{
			"content":        "# Rules v2\n",
			"forceOverwrite": true,
			"createBackup":   true,
		}
		outcome = a.Dispatcher.Execute(create)
		require.True(t, outcome.Executed, outcome.Message)

		data, err := os.ReadFile(filepath.Join(tempDir, "manifesto.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Rules v2\n", string(data))

		backups, err := os.ReadDir(a.BackupsDir())
		require.NoError(t, err)
		assert.NotEmpty(t, backups)

		fmt.Printf("✓ Manifesto guard working correctly\n")
		fmt.Printf("  Backups: %d\n", len(backups))
	})

	// 4. A plan run
	t.Run("PlanRun", func(t *testing.T) {
		plan := models.Plan{
			Name: "integration",
			Actions: []models.Action{
				{
					ID:      "p-1",
					Command: models.CommandCreateHelloWorld,
					Data:    map[string]interface{}{"language": "go"},
				},
				{
					ID:      "p-2",
					Command: models.CommandIndexCodebase,
					Data:    map[string]interface{}{},
				},
			},
		}

		runner := dispatch.NewPlanRunner(a.Dispatcher, false, a.Logger)
		report, err := runner.Run(plan, true)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Executed)
		assert.Empty(t, report.Pending)
		assert.FileExists(t, filepath.Join(tempDir, "hello.go"))

		fmt.Printf("✓ Plan run successful\n")
		fmt.Printf("  Executed: %d\n", report.Executed)
	})

	fmt.Printf("\nAll integration tests passed\n")
}
