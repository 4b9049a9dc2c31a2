// SPDX-License-Identifier: Apache-2.0

package executors

import (
	"fmt"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

// CreateFile writes a new file into the workspace.
type CreateFile struct {
	deps Deps
}

// Description returns the executor description.
func (e *CreateFile) Description() string {
	return "Create a new file in the workspace"
}

// Execute writes the requested file and reports the resolved path.
func (e *CreateFile) Execute(data map[string]interface{}) (string, error) {
	fileName, err := stringField(data, "fileName")
	if err != nil {
		return "", err
	}
	content, err := stringField(data, "content")
	if err != nil {
		return "", err
	}

	result := e.deps.Writer.Write(models.FileOperation{
		Path:    fileName,
		Content: content,
		Type:    models.OpCreate,
	})
	if !result.Success {
		return "", fmt.Errorf("error creating %s: %s", fileName, result.Error)
	}

	return fmt.Sprintf("Created %s", result.Path), nil
}

// EditFile overwrites an existing workspace file, optionally preserving
// the current content as a backup first.
type EditFile struct {
	deps Deps
}

// Description returns the executor description.
func (e *EditFile) Description() string {
	return "Update an existing file, optionally backing up the current content"
}

// Execute updates the requested file.
func (e *EditFile) Execute(data map[string]interface{}) (string, error) {
	fileName, err := stringField(data, "fileName")
	if err != nil {
		return "", err
	}
	content, err := stringField(data, "content")
	if err != nil {
		return "", err
	}

	result := e.deps.Writer.Write(models.FileOperation{
		Path:    fileName,
		Content: content,
		Type:    models.OpUpdate,
		Backup:  boolField(data, "backup"),
	})
	if !result.Success {
		return "", fmt.Errorf("error updating %s: %s", fileName, result.Error)
	}

	if result.BackupPath != "" {
		return fmt.Sprintf("Updated %s (backup at %s)", result.Path, result.BackupPath), nil
	}
	return fmt.Sprintf("Updated %s", result.Path), nil
}
