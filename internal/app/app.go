// SPDX-License-Identifier: Apache-2.0

// Package app wires the configured services together for the CLI. The
// library packages stay free of global state; everything shared lives on
// this struct.
package app

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/piggie-dev/manifesto/internal/core/config"
	"github.com/piggie-dev/manifesto/internal/core/dispatch"
	"github.com/piggie-dev/manifesto/internal/core/executors"
	"github.com/piggie-dev/manifesto/internal/core/fsops"
	"github.com/piggie-dev/manifesto/internal/core/guard"
	"github.com/piggie-dev/manifesto/internal/core/policy"
)

// App bundles the wired services the CLI commands share.
type App struct {
	ProjectDir string
	Config     *config.Config
	Logger     *zap.Logger

	FS         fsops.FS
	Writer     *fsops.Writer
	Guard      *guard.Guard
	Backups    *fsops.BackupService
	Registry   *dispatch.Registry
	Dispatcher *dispatch.Dispatcher
}

// New wires an App for the given project directory and configuration.
func New(projectDir string, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fs := fsops.NewOSFS()
	backups := fsops.NewBackupService(fs, resolveDir(projectDir, cfg.BackupsDir), logger)
	writer := fsops.NewWriter(fs, projectDir, backups, logger)

	registry := dispatch.NewRegistry()
	executors.RegisterDefaults(registry, executors.Deps{
		Writer:        writer,
		FS:            fs,
		Guard:         guard.New(fs),
		Backups:       backups,
		ManifestoPath: cfg.ManifestoPath,
		LintCommand:   cfg.LintCommand,
		LintArgs:      cfg.LintArgs,
		Logger:        logger,
	})

	dispatcher := dispatch.New(registry, logger)
	if cfg.AutoPolicy != "" {
		eval, err := policy.NewEvaluator()
		if err != nil {
			return nil, fmt.Errorf("error setting up auto-execution policy: %w", err)
		}
		dispatcher = dispatcher.WithPolicy(eval, cfg.AutoPolicy)
	}

	return &App{
		ProjectDir: projectDir,
		Config:     cfg,
		Logger:     logger,
		FS:         fs,
		Writer:     writer,
		Guard:      guard.New(fs),
		Backups:    backups,
		Registry:   registry,
		Dispatcher: dispatcher,
	}, nil
}

// BackupsDir returns the absolute managed backup directory.
func (a *App) BackupsDir() string {
	return resolveDir(a.ProjectDir, a.Config.BackupsDir)
}

func resolveDir(projectDir, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(projectDir, dir)
}
