package mutate

// Reverse returns s reversed rune-by-rune. Per spec.md §4.1 an
// ASCII-only assumption is acceptable, but reversing by rune rather than
// byte keeps it correct for the occasional multi-byte UTF-8 name
// (e.g. "José") at no extra cost.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
