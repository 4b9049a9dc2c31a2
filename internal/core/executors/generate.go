// SPDX-License-Identifier: Apache-2.0

package executors

import (
	"fmt"
	"strings"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

// commentPrefixes maps a language to its line-comment leader, used for
// the generated header. Unknown languages get the generic "#".
var commentPrefixes = map[string]string{
	"go":         "//",
	"javascript": "//",
	"typescript": "//",
	"rust":       "//",
	"java":       "//",
	"c":          "//",
	"python":     "#",
	"ruby":       "#",
	"shell":      "#",
}

// GenerateCode writes a source-file skeleton for the request: a header
// comment from the description plus the language's boilerplate body.
type GenerateCode struct {
	deps Deps
}

// Description returns the executor description.
func (e *GenerateCode) Description() string {
	return "Generate a boilerplate source file skeleton"
}

// Execute writes the skeleton file.
func (e *GenerateCode) Execute(data map[string]interface{}) (string, error) {
	fileName, err := stringField(data, "fileName")
	if err != nil {
		return "", err
	}

	language := strings.ToLower(optionalString(data, "language", ""))
	description := optionalString(data, "description", "")

	prefix, ok := commentPrefixes[language]
	if !ok {
		prefix = "#"
	}

	var b strings.Builder
	if description != "" {
		for _, line := range strings.Split(description, "\n") {
			fmt.Fprintf(&b, "%s %s\n", prefix, line)
		}
		b.WriteString("\n")
	}
	if snippet, ok := helloSnippets[language]; ok {
		b.WriteString(snippet)
	} else {
		b.WriteString(genericSnippet)
	}

	result := e.deps.Writer.Write(models.FileOperation{
		Path:    fileName,
		Content: b.String(),
		Type:    models.OpCreate,
	})
	if !result.Success {
		return "", fmt.Errorf("error generating %s: %s", fileName, result.Error)
	}

	return fmt.Sprintf("Generated %s", result.Path), nil
}
