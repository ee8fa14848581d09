// Package markov implements spec.md §4.3's Markov engine: training an
// n-gram transition model from a line-oriented corpus and sampling new
// strings from it.
package markov

// terminator is the synthetic end-of-string symbol appended to every
// training line's transition table (spec.md §4.3). Train does not strip
// control characters, so a 0x00 byte inside a corpus line is recorded
// as this same symbol.
const terminator = 0

// Model is an n-gram transition table: Order is the context window
// length N, Transitions maps a context string to weighted counts of
// the byte that followed it (terminator included), Starts maps a
// context string to the number of training lines that began with it.
// MinLen and MaxLen are the shortest and longest observed training
// line lengths.
//
// serialize.go copies these fields to and from wireModel, which carries
// the on-disk field names.
type Model struct {
	Order      int
	Transitions map[string]map[byte]uint64
	Starts     map[string]uint64
	MinLen     int
	MaxLen     int
}

// New returns an empty model of the given context order.
func New(order int) *Model {
	return &Model{
		Order:       order,
		Transitions: make(map[string]map[byte]uint64),
		Starts:      make(map[string]uint64),
	}
}
