// SPDX-License-Identifier: Apache-2.0

package format

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile reads and parses a file, trying YAML first, then JSON.
func ParseFile(filePath string, v interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	return ParseData(data, v)
}

// ParseData parses data, trying YAML first, then JSON.
func ParseData(data []byte, v interface{}) error {
	err := yaml.Unmarshal(data, v)
	if err == nil {
		return nil
	}

	jsonErr := json.Unmarshal(data, v)
	if jsonErr == nil {
		return nil
	}

	return fmt.Errorf("failed to parse as YAML (%v) or JSON (%v)", err, jsonErr)
}

// WriteFile writes data to a file in the format selected by its
// extension; YAML is the default.
func WriteFile(filePath string, v interface{}) error {
	ext := strings.ToLower(filepath.Ext(filePath))

	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		data, err = yaml.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("error marshaling data: %w", err)
	}

	return os.WriteFile(filePath, data, 0644)
}

// FormatData formats data as a YAML or JSON string.
func FormatData(v interface{}, useYAML bool) (string, error) {
	var data []byte
	var err error

	if useYAML {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}

	if err != nil {
		return "", fmt.Errorf("error formatting data: %w", err)
	}

	return string(data), nil
}
