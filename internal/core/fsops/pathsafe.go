// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"fmt"
	"path/filepath"
	"strings"
)

// systemDirs is the deny-list of directories the writer refuses to touch.
// The Windows entries are checked alongside the POSIX ones so a config
// file moved between platforms keeps the same protections.
var systemDirs = []string{
	"/etc",
	"/usr",
	"/bin",
	"/sys",
	"/proc",
	"/System",
	"/Library",
	"/Applications",
	"/private",
	`C:\Windows`,
	`C:\System32`,
	`C:\Program Files`,
}

// ValidatePath rejects paths with parent-traversal segments, home-directory
// shortcuts, or targets under a protected system directory. The cleaned
// form is re-checked so traversal that only appears after normalization
// is still caught.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if containsTraversal(path) {
		return fmt.Errorf("path %q contains parent-directory traversal", path)
	}
	if strings.Contains(path, "~") {
		return fmt.Errorf("path %q contains a home-directory shortcut", path)
	}

	cleaned := filepath.Clean(path)
	if containsTraversal(cleaned) {
		return fmt.Errorf("path %q normalizes to a traversal path", path)
	}

	for _, dir := range systemDirs {
		if underDir(cleaned, dir) {
			return fmt.Errorf("path %q targets protected system directory %s", path, dir)
		}
	}

	return nil
}

func containsTraversal(path string) bool {
	normalized := strings.ReplaceAll(path, `\`, "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return true
		}
	}
	return false
}

func underDir(path, dir string) bool {
	p := strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
	d := strings.ToLower(strings.ReplaceAll(dir, `\`, "/"))
	return p == d || strings.HasPrefix(p, d+"/")
}
