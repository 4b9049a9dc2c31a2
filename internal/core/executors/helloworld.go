// SPDX-License-Identifier: Apache-2.0

package executors

import (
	"fmt"
	"strings"

	"github.com/piggie-dev/manifesto/internal/core/models"
)

// Language lookup tables for the hello-world boilerplate. Unknown
// languages fall back to the generic entry instead of failing: command
// tags are a closed set, languages are not.
var helloExtensions = map[string]string{
	"go":         ".go",
	"python":     ".py",
	"javascript": ".js",
	"typescript": ".ts",
	"rust":       ".rs",
	"java":       ".java",
	"c":          ".c",
	"ruby":       ".rb",
	"shell":      ".sh",
}

var helloSnippets = map[string]string{
	"go":         "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, World!\")\n}\n",
	"python":     "def main():\n    print(\"Hello, World!\")\n\n\nif __name__ == \"__main__\":\n    main()\n",
	"javascript": "console.log(\"Hello, World!\");\n",
	"typescript": "const greeting: string = \"Hello, World!\";\nconsole.log(greeting);\n",
	"rust":       "fn main() {\n    println!(\"Hello, World!\");\n}\n",
	"java":       "public class Hello {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World!\");\n    }\n}\n",
	"c":          "#include <stdio.h>\n\nint main(void) {\n    printf(\"Hello, World!\\n\");\n    return 0;\n}\n",
	"ruby":       "puts \"Hello, World!\"\n",
	"shell":      "#!/bin/sh\necho \"Hello, World!\"\n",
}

const (
	genericExtension = ".txt"
	genericSnippet   = "Hello, World!\n"
)

// CreateHelloWorld writes a boilerplate file for the requested language.
type CreateHelloWorld struct {
	deps Deps
}

// Description returns the executor description.
func (e *CreateHelloWorld) Description() string {
	return "Create a hello-world boilerplate file for a language"
}

// Execute writes the boilerplate file.
func (e *CreateHelloWorld) Execute(data map[string]interface{}) (string, error) {
	language, err := stringField(data, "language")
	if err != nil {
		return "", err
	}
	key := strings.ToLower(strings.TrimSpace(language))

	extension, ok := helloExtensions[key]
	if !ok {
		extension = genericExtension
	}
	snippet, ok := helloSnippets[key]
	if !ok {
		snippet = genericSnippet
	}

	fileName := optionalString(data, "fileName", "hello"+extension)

	result := e.deps.Writer.Write(models.FileOperation{
		Path:    fileName,
		Content: snippet,
		Type:    models.OpCreate,
	})
	if !result.Success {
		return "", fmt.Errorf("error creating %s: %s", fileName, result.Error)
	}

	return fmt.Sprintf("Created %s hello-world at %s", language, result.Path), nil
}
