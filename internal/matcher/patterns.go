package matcher

import (
	"regexp"
	"strings"
)

// wordPattern compiles a case-insensitive whole-word pattern for a
// single vocabulary name. Anchoring to \b keeps a name from matching
// inside a longer identifier.
func wordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
}

// alternation joins vocabulary names into a regexp group body
func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(quoted, "|")
}
