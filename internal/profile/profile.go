// Package profile implements spec.md §3's Profile type and SPEC_FULL.md
// §4.7's tolerant loader for JSON/YAML profile documents.
package profile

// Profile is a mapping from fixed category names to ordered sequences
// of short strings (spec.md §3). All values are user-provided; empty
// sequences are permitted. A Profile is immutable after construction —
// nothing in this package mutates a Profile once Load returns it.
type Profile struct {
	FirstNames []string `mapstructure:"first_names" json:"first_names"`
	LastNames  []string `mapstructure:"last_names" json:"last_names"`
	Partners   []string `mapstructure:"partners" json:"partners"`
	Kids       []string `mapstructure:"kids" json:"kids"`
	Pets       []string `mapstructure:"pets" json:"pets"`
	Company    []string `mapstructure:"company" json:"company"`
	School     []string `mapstructure:"school" json:"school"`
	City       []string `mapstructure:"city" json:"city"`
	Sports     []string `mapstructure:"sports" json:"sports"`
	Music      []string `mapstructure:"music" json:"music"`
	Usernames  []string `mapstructure:"usernames" json:"usernames"`
	Dates      []string `mapstructure:"dates" json:"dates"`
	Keywords   []string `mapstructure:"keywords" json:"keywords"`
	Numbers    []string `mapstructure:"numbers" json:"numbers"`
}

// Categories returns the fourteen category slices in the fixed order
// spec.md §3 lists them, for atomization (spec.md §4.4 step 1).
func (p *Profile) Categories() [][]string {
	return [][]string{
		p.FirstNames,
		p.LastNames,
		p.Partners,
		p.Kids,
		p.Pets,
		p.Company,
		p.School,
		p.City,
		p.Sports,
		p.Music,
		p.Usernames,
		p.Dates,
		p.Keywords,
		p.Numbers,
	}
}
