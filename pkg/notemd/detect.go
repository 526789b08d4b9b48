package notemd

import (
	"regexp"
	"strings"
)

// Numbered items only count as a trigger on a line after the first; the
// block parser itself is happy to take one on the first line. The mismatch
// is deliberate slack: IsMarkdown is a pre-filter, not a grammar.
var numberedLineTrigger = regexp.MustCompile(`\n\d+\. `)

// IsMarkdown reports whether content looks like it uses the markdown
// subset. It is a cheap substring test meant to gate the full parser;
// false positives are fine since unmatched text renders as literal runs.
func IsMarkdown(content string) bool {
	for _, prefix := range []string{"> ", "# ", "* ", "- "} {
		if strings.HasPrefix(content, prefix) {
			return true
		}
	}
	for _, sub := range []string{"##", "__", "**", "```", "](", "~~", "\n* ", "\n- "} {
		if strings.Contains(content, sub) {
			return true
		}
	}
	return numberedLineTrigger.MatchString(content)
}
