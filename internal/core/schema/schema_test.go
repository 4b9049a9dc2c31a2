// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggie-dev/manifesto/internal/core/models"
	"github.com/piggie-dev/manifesto/internal/core/schema"
)

func TestEveryCommandHasASchema(t *testing.T) {
	for _, cmd := range models.Commands {
		assert.NotNil(t, schema.PayloadSchema(cmd), "command %s has no payload schema", cmd)
	}
}

func TestValidateParamsRequiredFields(t *testing.T) {
	s := schema.PayloadSchema(models.CommandCreateFile)

	err := schema.ValidateParams(s, map[string]interface{}{
		"fileName": "a.txt",
		"content":  "hello",
	})
	assert.NoError(t, err)

	err = schema.ValidateParams(s, map[string]interface{}{"fileName": "a.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content")
}

func TestValidateParamsTypeMismatch(t *testing.T) {
	s := schema.PayloadSchema(models.CommandEditFile)

	err := schema.ValidateParams(s, map[string]interface{}{
		"fileName": "a.txt",
		"content":  "x",
		"backup":   "yes",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup")
}

func TestValidateParamsNilPayload(t *testing.T) {
	// create-manifesto has no required fields, so an absent payload passes.
	err := schema.ValidateParams(schema.PayloadSchema(models.CommandCreateManifesto), nil)
	assert.NoError(t, err)

	err = schema.ValidateParams(schema.PayloadSchema(models.CommandCreateHelloWorld), nil)
	assert.Error(t, err)
}
