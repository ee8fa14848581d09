// Package personal implements spec.md §4.4's Personal engine: expanding
// a Profile into a deduplicated set of candidates through per-atom
// mutation, pairwise combination, and sandwich/suffix patterns.
package personal

import "github.com/jigsaw-gen/jigsaw/internal/profile"

// categoryNames mirrors profile.Profile.Categories' fixed order
// (spec.md §3), used only to tag atoms for the "dates" smart-date
// special case in stage 2.
var categoryNames = []string{
	"first_names", "last_names", "partners", "kids", "pets", "company",
	"school", "city", "sports", "music", "usernames", "dates", "keywords",
	"numbers",
}

// atom is one entry from the flattened profile, tagged with its
// source category and a stable ID so stage 3 can exclude pairs drawn
// from the same underlying atom.
type atom struct {
	value    string
	category string
	id       int
}

// atomize flattens every category into a single ordered list (spec.md
// §4.4 step 1). Duplicate values across or within categories are
// preserved; each occurrence gets its own ID.
func atomize(p *profile.Profile) []atom {
	var atoms []atom
	id := 0
	for ci, values := range p.Categories() {
		for _, v := range values {
			if v == "" {
				continue
			}
			atoms = append(atoms, atom{value: v, category: categoryNames[ci], id: id})
			id++
		}
	}
	return atoms
}
