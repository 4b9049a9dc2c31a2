// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateParams validates an action payload against a JSON schema.
func ValidateParams(schema map[string]interface{}, params map[string]interface{}) error {
	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("schema validation error: failed to serialize schema: %w", err)
	}
	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)

	if params == nil {
		params = map[string]interface{}{}
	}
	paramsBytes, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("schema validation error: failed to serialize params: %w", err)
	}
	documentLoader := gojsonschema.NewBytesLoader(paramsBytes)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		errorMsg := "payload validation failed:\n"
		for _, err := range result.Errors() {
			errorMsg += fmt.Sprintf("- %s\n", err)
		}
		return fmt.Errorf("%s", errorMsg)
	}

	return nil
}
