// SPDX-License-Identifier: Apache-2.0

package executors

import (
	"fmt"
	"strings"

	"github.com/piggie-dev/manifesto/internal/core/execrun"
	"github.com/piggie-dev/manifesto/internal/core/manifesto"
)

// LintCode checks a workspace file against the manifesto rules, plus an
// optional configured external linter.
type LintCode struct {
	deps Deps
}

// Description returns the executor description.
func (e *LintCode) Description() string {
	return "Check a file against the manifesto rules"
}

// Execute runs the rule check and returns the report.
func (e *LintCode) Execute(data map[string]interface{}) (string, error) {
	fileName, err := stringField(data, "fileName")
	if err != nil {
		return "", err
	}

	content, err := e.deps.Writer.ReadText(fileName)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", fileName, err)
	}

	markdown, err := e.deps.Writer.ReadText(e.deps.ManifestoPath)
	if err != nil {
		return fmt.Sprintf("No manifesto found at %s; nothing to enforce against %s",
			e.deps.ManifestoPath, fileName), nil
	}

	rules := manifesto.ParseRules(markdown)
	violations := manifesto.Check(rules, content)
	report := manifesto.FormatReport(fileName, violations)

	if e.deps.LintCommand != "" {
		args := append(append([]string{}, e.deps.LintArgs...), e.deps.Writer.Resolve(fileName))
		runner := execrun.New(e.deps.LintCommand, args...).
			WithWorkingDir(e.deps.Writer.WorkspaceRoot())
		result, err := runner.Run()
		if err != nil {
			report += fmt.Sprintf("\nexternal linter failed to run: %v", err)
		} else if result.ExitStatus != 0 {
			report += fmt.Sprintf("\nexternal linter (%s) exit %d:\n%s",
				e.deps.LintCommand, result.ExitStatus, strings.TrimSpace(string(result.Output)))
		}
	}

	return report, nil
}
