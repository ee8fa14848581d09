package personal

import "github.com/jigsaw-gen/jigsaw/internal/mutate"

// mutatedAtom is one mutation-stage output, tagged with the ID of the
// atom it came from (so pairwise combination can exclude same-source
// pairs) and a human-readable mutation+category label used to build
// password-check pattern names (spec.md §4.4's "reverse+date" example).
type mutatedAtom struct {
	value    string
	atomID   int
	mutation string
	category string
}

// mutateAtoms applies spec.md §4.4 step 2 to every atom: the fixed
// eight-form set (the seven listed forms plus the reverse of the
// lowercase form) plus, for "dates" atoms, the smart-date expansion.
func mutateAtoms(atoms []atom) []mutatedAtom {
	var out []mutatedAtom
	for _, a := range atoms {
		for _, f := range mutateOne(a) {
			out = append(out, mutatedAtom{value: f.value, atomID: a.id, mutation: f.mutation, category: a.category})
		}
	}
	return out
}

type mutationForm struct {
	value    string
	mutation string
}

func mutateOne(a atom) []mutationForm {
	variants := mutate.CaseVariants(a.value) // {original, lower, upper, title}
	forms := []mutationForm{
		{variants[0], "original"},
		{variants[1], "lower"},
		{variants[2], "upper"},
		{variants[3], "title"},
		{mutate.Reverse(a.value), "reverse"},
		{mutate.Reverse(variants[1]), "reverse-lower"},
		{mutate.LeetFull(a.value), "leet-full"},
		{mutate.LeetPartial(a.value), "leet-partial"},
	}
	if a.category == "dates" {
		for _, d := range mutate.SmartDate(a.value) {
			forms = append(forms, mutationForm{d, "smart-date"})
		}
	}
	return forms
}
