// SPDX-License-Identifier: Apache-2.0

package executors

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/piggie-dev/manifesto/internal/core/format"
	"github.com/piggie-dev/manifesto/internal/core/models"
)

// IndexPath is where the codebase inventory lands, relative to the
// workspace root.
const IndexPath = ".manifesto/index.yaml"

// skipDirs are never descended into while indexing.
var skipDirs = map[string]bool{
	".git":         true,
	".manifesto":   true,
	"node_modules": true,
	"vendor":       true,
}

// Index is the persisted codebase inventory.
type Index struct {
	GeneratedAt string         `yaml:"generated_at"`
	Root        string         `yaml:"root"`
	Files       int            `yaml:"files"`
	ByExtension map[string]int `yaml:"by_extension"`
}

// IndexCodebase walks the workspace and writes a YAML inventory of its
// files grouped by extension.
type IndexCodebase struct {
	deps Deps
}

// Description returns the executor description.
func (e *IndexCodebase) Description() string {
	return "Index the workspace into a YAML file inventory"
}

// Execute builds and writes the inventory.
func (e *IndexCodebase) Execute(data map[string]interface{}) (string, error) {
	root := e.deps.Writer.WorkspaceRoot()
	if sub := optionalString(data, "path", ""); sub != "" {
		root = e.deps.Writer.Resolve(sub)
	}

	index := Index{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Root:        root,
		ByExtension: make(map[string]int),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		index.Files++
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext == "" {
			ext = "(none)"
		}
		index.ByExtension[ext]++
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error walking %s: %w", root, err)
	}

	encoded, err := format.FormatData(index, true)
	if err != nil {
		return "", fmt.Errorf("error encoding index: %w", err)
	}

	result := e.deps.Writer.Write(models.FileOperation{
		Path:    IndexPath,
		Content: encoded,
		Type:    models.OpCreate,
	})
	if !result.Success {
		return "", fmt.Errorf("error writing index: %s", result.Error)
	}

	return fmt.Sprintf("Indexed %d files (%d extension types); inventory at %s",
		index.Files, len(index.ByExtension), result.Path), nil
}
