// SPDX-License-Identifier: Apache-2.0

package executors_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

func TestCreateHelloWorldKnownLanguages(t *testing.T) {
	tests := []struct {
		language string
		file     string
		contains string
	}{
		{"go", "hello.go", "package main"},
		{"python", "hello.py", "def main()"},
		{"javascript", "hello.js", "console.log"},
		{"rust", "hello.rs", "fn main()"},
		{"Java", "hello.java", "public class"},
	}

	for _, tc := range tests {
		t.Run(tc.language, func(t *testing.T) {
			registry, tempDir := newWorkspace(t)

			message, err := runCommand(t, registry, models.CommandCreateHelloWorld,
				map[string]interface{}{"language": tc.language})

			require.NoError(t, err)
			assert.Contains(t, message, tc.file)

			data, err := os.ReadFile(filepath.Join(tempDir, tc.file))
			require.NoError(t, err)
			assert.Contains(t, string(data), tc.contains)
		})
	}
}

func TestCreateHelloWorldUnknownLanguageFallsBack(t *testing.T) {
	registry, tempDir := newWorkspace(t)

	// Unknown languages degrade to the generic placeholder instead of
	// failing; languages are open-ended, commands are not.
	message, err := runCommand(t, registry, models.CommandCreateHelloWorld,
		map[string]interface{}{"language": "brainfuck"})

	require.NoError(t, err)
	assert.Contains(t, message, "hello.txt")

	data, err := os.ReadFile(filepath.Join(tempDir, "hello.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!\n", string(data))
}

func TestCreateHelloWorldMissingLanguage(t *testing.T) {
	registry, _ := newWorkspace(t)

	_, err := runCommand(t, registry, models.CommandCreateHelloWorld, map[string]interface{}{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "language")
}

func TestCreateHelloWorldCustomFileName(t *testing.T) {
	registry, tempDir := newWorkspace(t)

	_, err := runCommand(t, registry, models.CommandCreateHelloWorld,
		map[string]interface{}{"language": "go", "fileName": "examples/greet.go"})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(tempDir, "examples", "greet.go"))
}
