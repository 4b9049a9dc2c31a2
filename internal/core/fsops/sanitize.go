// SPDX-License-Identifier: Apache-2.0

package fsops

import "regexp"

// The sanitizer is a conservative guard for content that may later be
// rendered in a chat or preview surface. It is not a general-purpose HTML
// sanitizer; it only strips the constructs that would execute.
var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	scriptTagPattern   = regexp.MustCompile(`(?i)</?script\b[^>]*>`)
	jsURIPattern       = regexp.MustCompile(`(?i)javascript:`)
	eventAttrPattern   = regexp.MustCompile(`(?i)\bon\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
)

// SanitizeContent removes script blocks, javascript: URIs, and inline
// event-handler attributes from content before it is written.
func SanitizeContent(content string) string {
	content = scriptBlockPattern.ReplaceAllString(content, "")
	content = scriptTagPattern.ReplaceAllString(content, "")
	content = jsURIPattern.ReplaceAllString(content, "")
	content = eventAttrPattern.ReplaceAllString(content, "")
	return content
}

// NeedsSanitizing reports whether content contains any construct the
// sanitizer would strip.
func NeedsSanitizing(content string) bool {
	return scriptBlockPattern.MatchString(content) ||
		scriptTagPattern.MatchString(content) ||
		jsURIPattern.MatchString(content) ||
		eventAttrPattern.MatchString(content)
}
