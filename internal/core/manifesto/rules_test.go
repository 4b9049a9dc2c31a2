// SPDX-License-Identifier: Apache-2.0

package manifesto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggie-dev/manifesto/internal/core/manifesto"
)

const sampleManifesto = `# Team Manifesto

Some prose that is not a rule.

- REQUIRED: All errors must be handled (pattern: if err != nil)
- PROHIBITED: Never use ` + "`panic(`" + ` in library code
- Prefer small functions
* NEVER commit secrets (pattern: (?i)api[_-]?key\s*=)
`

func TestParseRules(t *testing.T) {
	rules := manifesto.ParseRules(sampleManifesto)
	require.Len(t, rules, 4)

	assert.Equal(t, manifesto.SeverityRequired, rules[0].Severity)
	require.NotNil(t, rules[0].Pattern)
	assert.True(t, rules[0].Pattern.MatchString("if err != nil {"))

	assert.Equal(t, manifesto.SeverityProhibited, rules[1].Severity)
	assert.Nil(t, rules[1].Pattern)
	assert.Equal(t, "panic(", rules[1].Token)

	assert.Equal(t, manifesto.SeverityAdvisory, rules[2].Severity)

	// "* " bullets count too, and NEVER marks prohibition.
	assert.Equal(t, manifesto.SeverityProhibited, rules[3].Severity)
	require.NotNil(t, rules[3].Pattern)
}

func TestParseRulesIgnoresNonBulletLines(t *testing.T) {
	rules := manifesto.ParseRules("# Title\n\nJust prose.\n\n## Section\n")
	assert.Empty(t, rules)
}

func TestParseRulesBadPatternFallsBackToText(t *testing.T) {
	rules := manifesto.ParseRules("- PROHIBITED: bad regex (pattern: [unclosed)\n")
	require.Len(t, rules, 1)
	assert.Nil(t, rules[0].Pattern)
}

func TestCheckProhibitedFlagsEveryMatchingLine(t *testing.T) {
	rules := manifesto.ParseRules("- PROHIBITED: no `fmt.Println` in production code\n")
	content := "fmt.Println(\"a\")\nlog.Info(\"b\")\nfmt.Println(\"c\")\n"

	violations := manifesto.Check(rules, content)
	require.Len(t, violations, 2)
	assert.Equal(t, 1, violations[0].Line)
	assert.Equal(t, 3, violations[1].Line)
	assert.Equal(t, "fmt.Println(\"a\")", violations[0].Excerpt)
}

func TestCheckRequiredFiresOnceWhenAbsent(t *testing.T) {
	rules := manifesto.ParseRules("- REQUIRED: handle errors (pattern: if err != nil)\n")

	violations := manifesto.Check(rules, "x := compute()\nuse(x)\n")
	require.Len(t, violations, 1)
	assert.Zero(t, violations[0].Line)

	violations = manifesto.Check(rules, "if err != nil {\n\treturn err\n}\n")
	assert.Empty(t, violations)
}

func TestCheckAdvisoryNeverFires(t *testing.T) {
	rules := manifesto.ParseRules("- Prefer composition over inheritance\n")
	violations := manifesto.Check(rules, "anything at all")
	assert.Empty(t, violations)
}

func TestFormatReport(t *testing.T) {
	rules := manifesto.ParseRules(
		"- PROHIBITED: no `eval(`\n- REQUIRED: handle errors (pattern: if err != nil)\n")
	violations := manifesto.Check(rules, "eval(x)\n")

	report := manifesto.FormatReport("app.js", violations)
	assert.Contains(t, report, "app.js: 2 manifesto violation(s)")
	assert.Contains(t, report, "line 1:")
	assert.Contains(t, report, "missing required element")

	clean := manifesto.FormatReport("ok.go", nil)
	assert.Equal(t, "ok.go: no manifesto violations found", clean)
}
