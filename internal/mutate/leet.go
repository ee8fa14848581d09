package mutate

import "strings"

// leetTable is the fixed leetspeak substitution table from spec.md §4.1.
// Keys are lowercase; matching against input is case-insensitive.
var leetTable = map[byte]byte{
	'a': '@',
	'e': '3',
	'i': '1',
	'o': '0',
	's': '$',
	't': '7',
	'l': '1',
	'b': '8',
	'g': '9',
	'z': '2',
}

// LeetFull substitutes every occurrence of every mapped character.
func LeetFull(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if r, ok := leetTable[lower(c)]; ok {
			b.WriteByte(r)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// LeetPartial substitutes only the first occurrence of each mapped
// character, leaving subsequent occurrences untouched.
func LeetPartial(s string) string {
	seen := make(map[byte]bool, len(leetTable))
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		key := lower(c)
		if r, ok := leetTable[key]; ok && !seen[key] {
			seen[key] = true
			b.WriteByte(r)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
