// SPDX-License-Identifier: Apache-2.0

package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggie-dev/manifesto/internal/core/template"
)

func TestProcessString(t *testing.T) {
	out, err := template.ProcessString("Hello, {{.name}}!", map[string]interface{}{"name": "world"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", string(out))
}

func TestProcessStringMissingKey(t *testing.T) {
	_, err := template.ProcessString("Hello, {{.name}}!", map[string]interface{}{})
	assert.Error(t, err)
}

func TestProcessStringParseError(t *testing.T) {
	_, err := template.ProcessString("{{.unclosed", nil)
	assert.Error(t, err)
}

func TestDefaultManifestoKnownTypes(t *testing.T) {
	tests := []struct {
		kind  string
		title string
	}{
		{"general", "# Project Manifesto"},
		{"api", "# API Development Manifesto"},
		{"frontend", "# Frontend Development Manifesto"},
		{"security", "# Security Manifesto"},
	}

	for _, tc := range tests {
		t.Run(tc.kind, func(t *testing.T) {
			out, err := template.DefaultManifesto(tc.kind)
			require.NoError(t, err)
			assert.Contains(t, out, tc.title)
			assert.Contains(t, out, "## Code Quality")
			assert.Contains(t, out, "REQUIRED")
			assert.Contains(t, out, "PROHIBITED")
		})
	}
}

func TestDefaultManifestoUnknownTypeUsesTagAsTitle(t *testing.T) {
	out, err := template.DefaultManifesto("embedded")
	require.NoError(t, err)
	assert.Contains(t, out, "# embedded Manifesto")
}
