package personal

import (
	"github.com/jigsaw-gen/jigsaw/internal/mutate"
	"github.com/jigsaw-gen/jigsaw/internal/profile"
)

// CheckResult is the outcome of Check.
type CheckResult struct {
	Found   bool
	Pattern string
}

// Check runs the same generator as Generate but as a membership query
// against target, stopping and reporting the pattern family on first
// match (spec.md §4.4's password-check mode is "a membership query
// into the same set, not a separate algorithm").
func Check(p *profile.Profile, target string, opts Options) CheckResult {
	opts = opts.withDefaults()
	atoms := atomize(p)
	seen := newDedupSet(opts.DedupCap)

	result := CheckResult{}
	generate(atoms, mutate.Separators, opts.MinLen, opts.MaxLen, func(candidate, pattern string) bool {
		if !seen.firstOccurrence(candidate) {
			return false
		}
		if candidate == target {
			result = CheckResult{Found: true, Pattern: pattern}
			return true
		}
		return false
	})
	return result
}
