package personal

// sandwichSymbols and suffixSet are the fixed sandwich/suffix sets
// from spec.md §4.4 step 4.
var (
	sandwichSymbols = []string{"!", "#", "$", "@"}
	suffixSet       = []string{"1", "12", "123", "1234", "!", "!!", "2020", "2021", "2022", "2023", "2024"}
)

// emitFunc receives a candidate and the pattern family that produced
// it (spec.md §4.4's password-check mode needs the family name) and
// returns true to stop generation early (used by Check).
type emitFunc func(candidate, pattern string) (stop bool)

// generate runs the full four-stage pipeline over p's atoms in the
// fixed nested order spec.md §4.4 requires: atomize, mutate, pairwise
// combine, sandwich/suffix — calling emit for each candidate that
// survives the length filter, stopping early if emit returns true.
//
// The open-question fourth stage ("name + sep + name + year",
// documented in DESIGN.md) is realized by applying the suffix
// patterns to pairwise combinations as well as to single atoms,
// rather than as a bespoke name-specific stage: a pair combination is
// already "name + sep + name" when its two source atoms are
// first/last/partner/kid names, and the fixed suffix set already
// includes the years 2020-2024.
func generate(atoms []atom, separators []string, minLen, maxLen int, emit emitFunc) {
	mutated := mutateAtoms(atoms)

	for _, m := range mutated {
		base := m.mutation + "+" + m.category
		if emitWithFilter(m.value, base, minLen, maxLen, emit) {
			return
		}
		if emitSandwichAndSuffix(m.value, base, minLen, maxLen, emit, true) {
			return
		}
	}

	for _, a := range mutated {
		for _, b := range mutated {
			if a.atomID == b.atomID {
				continue
			}
			pairLabel := a.mutation + "+" + a.category + "/" + b.mutation + "+" + b.category
			for _, sep := range separators {
				combo := a.value + sep + b.value
				if emitWithFilter(combo, "pair("+pairLabel+")", minLen, maxLen, emit) {
					return
				}
				if emitSandwichAndSuffix(combo, "pair("+pairLabel+")", minLen, maxLen, emit, false) {
					return
				}
			}
		}
	}
}

// emitSandwichAndSuffix applies stage 4's sandwich (singles only) and
// suffix patterns to base, tagging each with a pattern family name. For
// singles it also sandwiches the already-suffixed form (sym+base+n+sym,
// spec.md §8 S5's "!John123!"), since sandwich and suffix are two
// independent wrappers around the same base, not mutually exclusive.
func emitSandwichAndSuffix(base, label string, minLen, maxLen int, emit emitFunc, sandwich bool) bool {
	if sandwich {
		for _, sym := range sandwichSymbols {
			if emitWithFilter(sym+base+sym, label+"+sandwich", minLen, maxLen, emit) {
				return true
			}
		}
	}
	for _, n := range suffixSet {
		suffixed := base + n
		if emitWithFilter(suffixed, label+"+suffix", minLen, maxLen, emit) {
			return true
		}
		if emitWithFilter(n+base, label+"+prefix", minLen, maxLen, emit) {
			return true
		}
		if sandwich {
			for _, sym := range sandwichSymbols {
				if emitWithFilter(sym+suffixed+sym, label+"+suffix+sandwich", minLen, maxLen, emit) {
					return true
				}
			}
		}
	}
	return false
}

func emitWithFilter(candidate, pattern string, minLen, maxLen int, emit emitFunc) bool {
	if len(candidate) < minLen || len(candidate) > maxLen {
		return false
	}
	return emit(candidate, pattern)
}
