package mutate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.Und)

// CaseVariants returns {original, lower, upper, title}, in that order.
// Duplicates are possible (e.g. an all-caps atom) and intentionally left
// for the caller to deduplicate, per spec.md §4.1.
func CaseVariants(s string) []string {
	return []string{
		s,
		strings.ToLower(s),
		strings.ToUpper(s),
		titleFirst(s),
	}
}

// titleFirst upper-cases the first rune and lower-cases the rest, matching
// spec.md §4.1's "title (first letter up, rest down)" — distinct from
// per-word title casing, which would capitalize every word of a
// multi-word atom.
func titleFirst(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	return upperCaser.String(string(r[0])) + string(r[1:])
}
