// SPDX-License-Identifier: Apache-2.0

// Package executors holds the built-in handler for every command tag.
// Each executor validates its payload, performs at most one writer call
// (two for a manifesto overwrite with backup), and returns a formatted
// status message.
package executors

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/piggie-dev/manifesto/internal/core/dispatch"
	"github.com/piggie-dev/manifesto/internal/core/fsops"
	"github.com/piggie-dev/manifesto/internal/core/guard"
	"github.com/piggie-dev/manifesto/internal/core/models"
)

// Deps carries the collaborators shared by the built-in executors.
type Deps struct {
	Writer  *fsops.Writer
	FS      fsops.FS
	Guard   *guard.Guard
	Backups *fsops.BackupService

	// ManifestoPath is workspace-relative; manifesto.md by convention.
	ManifestoPath string

	// LintCommand optionally names an external linter run by lint-code in
	// addition to the manifesto rule check.
	LintCommand string
	LintArgs    []string

	Logger *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// RegisterDefaults wires the built-in executor for every known command.
func RegisterDefaults(r *dispatch.Registry, deps Deps) {
	r.Register(models.CommandCreateFile, &CreateFile{deps: deps})
	r.Register(models.CommandEditFile, &EditFile{deps: deps})
	r.Register(models.CommandCreateManifesto, &CreateManifesto{deps: deps})
	r.Register(models.CommandPreviewManifesto, &PreviewManifesto{deps: deps})
	r.Register(models.CommandGenerateCode, &GenerateCode{deps: deps})
	r.Register(models.CommandLintCode, &LintCode{deps: deps})
	r.Register(models.CommandIndexCodebase, &IndexCodebase{deps: deps})
	r.Register(models.CommandCreateHelloWorld, &CreateHelloWorld{deps: deps})
}

// stringField extracts a required string field from a payload. A missing
// or mistyped field is a hard error, never a silent no-op.
func stringField(data map[string]interface{}, key string) (string, error) {
	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("missing required field %q", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %T", key, value)
	}
	return s, nil
}

// optionalString returns the field value or fallback when absent.
func optionalString(data map[string]interface{}, key, fallback string) string {
	if s, ok := data[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// boolField returns the field value, defaulting to false when absent.
func boolField(data map[string]interface{}, key string) bool {
	b, _ := data[key].(bool)
	return b
}
