// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"os"
	"path/filepath"
)

// FS abstracts the handful of filesystem calls the writer, guard, and
// backup service make, so tests can observe ordering or fail individual
// calls without touching a real disk.
type FS interface {
	Exists(path string) (bool, error)
	ReadText(path string) (string, error)
	WriteText(path, content string, perm os.FileMode) error
	Delete(path string) error
	MkdirAll(path string, perm os.FileMode) error
}

// OSFS is the real-filesystem implementation of FS.
type OSFS struct{}

// NewOSFS returns an FS backed by the operating system.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Exists reports whether a file or directory exists at path.
func (*OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReadText reads the file at path as UTF-8 text.
func (*OSFS) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes content to path, creating the parent directory if it
// does not exist yet.
func (*OSFS) WriteText(path, content string, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), perm)
}

// Delete removes the file at path.
func (*OSFS) Delete(path string) error {
	return os.Remove(path)
}

// MkdirAll creates a directory and any missing parents.
func (*OSFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
