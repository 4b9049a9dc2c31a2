// SPDX-License-Identifier: Apache-2.0

package executors

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/piggie-dev/manifesto/internal/core/fsops"
	"github.com/piggie-dev/manifesto/internal/core/models"
	"github.com/piggie-dev/manifesto/internal/core/template"
)

// CreateManifesto writes the project manifesto. The dispatcher never
// auto-executes this command; by the time Execute runs the user has
// approved it. Overwrite protection still applies here: an existing
// manifesto blocks the write unless forceOverwrite is set, and a
// requested backup must succeed before the new content is written.
type CreateManifesto struct {
	deps Deps
}

// Description returns the executor description.
func (e *CreateManifesto) Description() string {
	return "Create or overwrite the project manifesto"
}

// Execute runs the guarded manifesto write.
func (e *CreateManifesto) Execute(data map[string]interface{}) (string, error) {
	kind := optionalString(data, "type", "general")
	content := optionalString(data, "content", "")
	if content == "" {
		rendered, err := template.DefaultManifesto(kind)
		if err != nil {
			return "", err
		}
		content = rendered
	}

	force := boolField(data, "forceOverwrite")
	withBackup := boolField(data, "createBackup")

	// The guard probe, backup, and write must not interleave with another
	// writer targeting the manifesto: two concurrent creates would both
	// see no file and both write. Exclusive holds the target's lock
	// across the whole sequence.
	var message string
	err := e.deps.Writer.Exclusive(e.deps.ManifestoPath, func(w *fsops.Writer) error {
		target := w.Resolve(e.deps.ManifestoPath)

		check := e.deps.Guard.Check(target, force)
		if !check.Allowed {
			// A policy refusal is a successful, informative outcome, not an
			// error: the existing content is surfaced so the user can decide.
			if check.Preview != "" {
				message = fmt.Sprintf("%s\n\nCurrent content:\n%s", check.Message, check.Preview)
			} else {
				message = check.Message
			}
			return nil
		}

		var backupNote string
		if force && withBackup {
			exists, err := e.deps.FS.Exists(target)
			if err != nil {
				return fmt.Errorf("error probing existing manifesto: %w", err)
			}
			if exists {
				existing, err := e.deps.FS.ReadText(target)
				if err != nil {
					return fmt.Errorf("error reading existing manifesto for backup: %w", err)
				}
				backupPath, err := e.deps.Backups.Backup(target, existing)
				if err != nil {
					// Never overwrite without a confirmed backup when one was
					// requested.
					return fmt.Errorf("backup failed, manifesto not overwritten: %w", err)
				}
				if backupPath != "" {
					backupNote = fmt.Sprintf("Backup saved to %s. ", backupPath)
					e.deps.logger().Info("manifesto backed up before overwrite",
						zap.String("backup", backupPath))
				}
			}
		}

		result := w.Write(models.FileOperation{
			Path:    e.deps.ManifestoPath,
			Content: content,
			Type:    models.OpCreate,
		})
		if !result.Success {
			return fmt.Errorf("error writing manifesto: %s", result.Error)
		}

		message = fmt.Sprintf("%sManifesto (%s) written to %s", backupNote, kind, result.Path)
		return nil
	})
	if err != nil {
		return "", err
	}
	return message, nil
}

// PreviewManifesto renders the manifesto that a create request would
// write, without touching the filesystem.
type PreviewManifesto struct {
	deps Deps
}

// Description returns the executor description.
func (e *PreviewManifesto) Description() string {
	return "Preview the manifesto a create request would write"
}

// Execute renders the preview. No writes occur.
func (e *PreviewManifesto) Execute(data map[string]interface{}) (string, error) {
	kind := optionalString(data, "type", "general")
	content := optionalString(data, "content", "")
	if content == "" {
		rendered, err := template.DefaultManifesto(kind)
		if err != nil {
			return "", err
		}
		content = rendered
	}

	return fmt.Sprintf("Preview of %s manifesto (%s):\n\n%s", kind, e.deps.ManifestoPath, content), nil
}
