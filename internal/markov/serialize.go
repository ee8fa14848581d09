package markov

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// wireModel mirrors Model's fields using the exact field names spec.md
// §7 lists (order, transitions, starts, min_len, max_len) so the
// on-disk form is self-describing independent of Go's field names.
type wireModel struct {
	Order       int                       `cbor:"order"`
	Transitions map[string]map[byte]uint64 `cbor:"transitions"`
	Starts      map[string]uint64         `cbor:"starts"`
	MinLen      int                       `cbor:"min_len"`
	MaxLen      int                       `cbor:"max_len"`
}

// encOpts produces a canonical (deterministic map-key-order) encoder
// so Save(Load(Save(m))) round-trips byte-equal, per spec.md §7.
var encOpts = cbor.CanonicalEncOptions()

// Save writes m to w in canonical CBOR form.
func Save(w io.Writer, m *Model) error {
	mode, err := encOpts.EncMode()
	if err != nil {
		return err
	}
	enc := mode.NewEncoder(w)
	return enc.Encode(wireModel{
		Order:       m.Order,
		Transitions: m.Transitions,
		Starts:      m.Starts,
		MinLen:      m.MinLen,
		MaxLen:      m.MaxLen,
	})
}

// Load reads a model previously written by Save.
func Load(r io.Reader) (*Model, error) {
	var wire wireModel
	dec := cbor.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return nil, err
	}
	return &Model{
		Order:       wire.Order,
		Transitions: wire.Transitions,
		Starts:      wire.Starts,
		MinLen:      wire.MinLen,
		MaxLen:      wire.MaxLen,
	}, nil
}
