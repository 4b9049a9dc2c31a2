// SPDX-License-Identifier: Apache-2.0

package fsops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piggie-dev/manifesto/internal/core/fsops"
)

func TestValidatePathRejectsUnsafePaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"parent traversal", "../secrets"},
		{"embedded traversal", "a/b/../../../etc/passwd"},
		{"home shortcut", "~/notes.txt"},
		{"etc", "/etc/passwd"},
		{"usr", "/usr/lib/thing.so"},
		{"bin", "/bin/sh"},
		{"sys", "/sys/kernel"},
		{"proc", "/proc/1/mem"},
		{"macos system", "/System/Library/foo"},
		{"macos library", "/Library/Preferences/foo"},
		{"macos applications", "/Applications/Foo.app"},
		{"macos private", "/private/etc/hosts"},
		{"windows", `C:\Windows\system.ini`},
		{"windows system32", `C:\System32\drivers`},
		{"windows program files", `C:\Program Files\App\app.exe`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, fsops.ValidatePath(tc.path))
		})
	}
}

func TestValidatePathAcceptsWorkspacePaths(t *testing.T) {
	tests := []string{
		"README.md",
		"docs/notes.md",
		"src/main.go",
		".manifesto/index.yaml",
		"deeply/nested/dir/file.txt",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			assert.NoError(t, fsops.ValidatePath(path))
		})
	}
}

func TestValidatePathCatchesTraversalAfterNormalization(t *testing.T) {
	// The raw string hides the traversal behind a redundant segment.
	assert.Error(t, fsops.ValidatePath("safe/./../../escape.txt"))
}
