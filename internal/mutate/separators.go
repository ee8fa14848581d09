package mutate

// Separators is the fixed join set used by the personal engine's
// pairwise combination stage, per spec.md §4.1.
var Separators = []string{
	"", "_", ".", "-", "@", "#", "!", "$",
	"123", "1", "2020", "2021", "2022", "2023",
}
