// SPDX-License-Identifier: Apache-2.0

package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

func TestCommandValid(t *testing.T) {
	for _, cmd := range models.Commands {
		assert.True(t, cmd.Valid(), "command %s should be valid", cmd)
	}

	assert.False(t, models.Command("rm-rf").Valid())
	assert.False(t, models.Command("").Valid())
	// Tags are exact, not case-folded.
	assert.False(t, models.Command("Create-File").Valid())
}

func TestOperationTypeValid(t *testing.T) {
	for _, op := range models.OperationTypes {
		assert.True(t, op.Valid())
	}
	assert.False(t, models.OperationType("truncate").Valid())
	assert.False(t, models.OperationType("").Valid())
}

func TestDisplayLabel(t *testing.T) {
	act := models.Action{Label: "Create README", Command: models.CommandCreateFile}
	assert.Equal(t, "Create README", act.DisplayLabel())

	act.Label = ""
	assert.Equal(t, "create-file", act.DisplayLabel())
}
