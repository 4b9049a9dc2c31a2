// SPDX-License-Identifier: Apache-2.0

// Package schema validates the loosely-typed action payloads before an
// executor runs. Each command carries its own JSON schema so a missing
// required field fails here, in one place, instead of deep inside the
// executor.
package schema

import "github.com/piggie-dev/manifesto/internal/core/models"

func obj(required []interface{}, props map[string]interface{}) map[string]interface{} {
	s := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func str() map[string]interface{} {
	return map[string]interface{}{"type": "string"}
}

func boolP() map[string]interface{} {
	return map[string]interface{}{"type": "boolean"}
}

// payloadSchemas holds the per-command payload shapes. Field names match
// the on-disk action format.
var payloadSchemas = map[models.Command]map[string]interface{}{
	models.CommandCreateFile: obj(
		[]interface{}{"fileName", "content"},
		map[string]interface{}{
			"fileName": str(),
			"content":  str(),
		},
	),
	models.CommandEditFile: obj(
		[]interface{}{"fileName", "content"},
		map[string]interface{}{
			"fileName": str(),
			"content":  str(),
			"backup":   boolP(),
		},
	),
	models.CommandCreateManifesto: obj(
		nil,
		map[string]interface{}{
			"content":        str(),
			"type":           str(),
			"forceOverwrite": boolP(),
			"createBackup":   boolP(),
		},
	),
	models.CommandPreviewManifesto: obj(
		nil,
		map[string]interface{}{
			"content": str(),
			"type":    str(),
		},
	),
	models.CommandGenerateCode: obj(
		[]interface{}{"fileName"},
		map[string]interface{}{
			"fileName":    str(),
			"language":    str(),
			"description": str(),
		},
	),
	models.CommandLintCode: obj(
		[]interface{}{"fileName"},
		map[string]interface{}{
			"fileName": str(),
		},
	),
	models.CommandIndexCodebase: obj(
		nil,
		map[string]interface{}{
			"path": str(),
		},
	),
	models.CommandCreateHelloWorld: obj(
		[]interface{}{"language"},
		map[string]interface{}{
			"language": str(),
			"fileName": str(),
		},
	),
}

// PayloadSchema returns the JSON schema for a command's data payload, or
// nil when the command is unknown.
func PayloadSchema(cmd models.Command) map[string]interface{} {
	return payloadSchemas[cmd]
}
