// SPDX-License-Identifier: Apache-2.0

// Package manifesto parses manifesto markdown into rule objects and
// matches code against them. Matching is substring and regex based; this
// is deliberately not static analysis.
package manifesto

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity classifies how a rule binds.
type Severity string

const (
	SeverityRequired   Severity = "required"
	SeverityProhibited Severity = "prohibited"
	SeverityAdvisory   Severity = "advisory"
)

// Rule is one enforceable statement from a manifesto document.
type Rule struct {
	ID       string
	Text     string
	Severity Severity
	// Pattern is compiled from a trailing "pattern:" clause on the rule
	// line. Nil when the rule has no machine-checkable form.
	Pattern *regexp.Regexp
	// Token is a backtick-quoted fragment from the rule text, matched as
	// a plain substring when no pattern is given.
	Token string
}

var (
	requiredWords   = regexp.MustCompile(`(?i)\b(required|must|mandatory|always)\b`)
	prohibitedWords = regexp.MustCompile(`(?i)\b(prohibited|never|forbidden|banned)\b`)
	patternClause   = regexp.MustCompile(`\(?\s*pattern:\s*(.+?)\s*\)?\s*$`)
	quotedToken     = regexp.MustCompile("`([^`]+)`")
)

// ParseRules extracts rules from manifesto markdown. Every bullet line is
// a rule; REQUIRED/PROHIBITED keywords set severity, a trailing
// "pattern: <regex>" clause becomes the matcher, and a backtick-quoted
// fragment is kept as a substring token.
func ParseRules(markdown string) []Rule {
	var rules []Rule

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "- ") && !strings.HasPrefix(trimmed, "* ") {
			continue
		}
		text := strings.TrimSpace(trimmed[2:])
		if text == "" {
			continue
		}

		rule := Rule{
			ID:       fmt.Sprintf("rule-%03d", len(rules)+1),
			Text:     text,
			Severity: SeverityAdvisory,
		}

		switch {
		case prohibitedWords.MatchString(text):
			rule.Severity = SeverityProhibited
		case requiredWords.MatchString(text):
			rule.Severity = SeverityRequired
		}

		if m := patternClause.FindStringSubmatch(text); m != nil {
			if compiled, err := regexp.Compile(m[1]); err == nil {
				rule.Pattern = compiled
			}
		}
		if m := quotedToken.FindStringSubmatch(text); m != nil {
			rule.Token = m[1]
		}

		rules = append(rules, rule)
	}

	return rules
}

// Violation ties a rule to the place it fired.
type Violation struct {
	Rule Rule
	// Line is 1-based. Zero means the violation is about the file as a
	// whole (a required pattern that never matched).
	Line    int
	Excerpt string
}

// Check matches rules against content. Prohibited rules flag every line
// their pattern or token matches; required rules with a pattern flag the
// file once when nothing matches. Advisory rules without a matcher are
// informational only and never fire.
func Check(rules []Rule, content string) []Violation {
	var violations []Violation
	lines := strings.Split(content, "\n")

	for _, rule := range rules {
		switch rule.Severity {
		case SeverityProhibited:
			for i, line := range lines {
				if ruleMatches(rule, line) {
					violations = append(violations, Violation{
						Rule:    rule,
						Line:    i + 1,
						Excerpt: strings.TrimSpace(line),
					})
				}
			}
		case SeverityRequired:
			if rule.Pattern == nil && rule.Token == "" {
				continue
			}
			found := false
			for _, line := range lines {
				if ruleMatches(rule, line) {
					found = true
					break
				}
			}
			if !found {
				violations = append(violations, Violation{Rule: rule})
			}
		}
	}

	return violations
}

func ruleMatches(rule Rule, line string) bool {
	if rule.Pattern != nil {
		return rule.Pattern.MatchString(line)
	}
	if rule.Token != "" {
		return strings.Contains(line, rule.Token)
	}
	return false
}

// FormatReport renders violations as the human-readable lint summary.
func FormatReport(path string, violations []Violation) string {
	if len(violations) == 0 {
		return fmt.Sprintf("%s: no manifesto violations found", path)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d manifesto violation(s)\n", path, len(violations))
	for _, v := range violations {
		if v.Line > 0 {
			fmt.Fprintf(&b, "  line %d: %s (%s)\n", v.Line, v.Rule.Text, v.Rule.Severity)
		} else {
			fmt.Fprintf(&b, "  file: missing required element: %s\n", v.Rule.Text)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
