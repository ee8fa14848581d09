package mutate

// SmartDate expands a 4-digit numeric token per spec.md §4.1.
//
// For a 4-digit year "YYYY" it produces {YYYY, YY, Y, 0YY} — the full
// year, its last two digits, its last digit, and the zero-padded
// 3-digit tail. A DDMM and an MMDD token share the same first2/last2
// split, so "additionally produce the swapped form and each half
// alone" reduces to the same mechanical transform regardless of which
// of the two the token actually represents; since the function can't
// know the caller's intent, it always includes them for any 4-digit
// token. Non-numeric or non-4-digit input is returned unchanged.
func SmartDate(token string) []string {
	if len(token) != 4 || !allDigits(token) {
		return []string{token}
	}

	yyyy := token
	yy := token[2:]
	y := token[3:]
	zeroYY := "0" + yy

	first2 := token[0:2]
	last2 := token[2:4]
	swapped := last2 + first2

	out := []string{yyyy, yy, y, zeroYY, swapped, first2, last2}
	return dedupeStrings(out)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
