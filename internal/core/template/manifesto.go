// SPDX-License-Identifier: Apache-2.0

package template

import "fmt"

// starter is the default manifesto rendered when a create or preview
// request carries no content of its own.
const starter = `# {{.title}} Manifesto

## Code Quality
- REQUIRED: All functions must include error handling
- REQUIRED: All public APIs must be documented
- PROHIBITED: Never commit commented-out code

## Error Handling
- REQUIRED: Errors must be wrapped with context before propagating
- PROHIBITED: Never swallow errors silently (pattern: catch\s*\(\s*\)\s*\{\s*\})

## Security
- PROHIBITED: Never use ` + "`eval(`" + ` on user input
- PROHIBITED: Never embed credentials in source (pattern: (?i)(password|secret|api_key)\s*=\s*")

## Testing
- REQUIRED: Every bug fix must land with a regression test
`

// manifestoTitles maps a requested manifesto type to its heading. Unknown
// types fall through to a capitalized form of the tag itself.
var manifestoTitles = map[string]string{
	"general":  "Project",
	"api":      "API Development",
	"frontend": "Frontend Development",
	"security": "Security",
}

// DefaultManifesto renders the starter manifesto for the given type.
func DefaultManifesto(kind string) (string, error) {
	title, ok := manifestoTitles[kind]
	if !ok {
		title = kind
	}
	out, err := ProcessString(starter, map[string]interface{}{"title": title})
	if err != nil {
		return "", fmt.Errorf("error rendering default manifesto: %w", err)
	}
	return string(out), nil
}
