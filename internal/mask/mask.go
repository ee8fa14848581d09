// Package mask implements spec.md §4.2's mask engine: parsing a mask
// string into per-position charsets and enumerating the Cartesian
// product they describe, in parallel, in odometer order.
package mask

import "strings"

const (
	defaultLower   = "abcdefghijklmnopqrstuvwxyz"
	defaultUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	defaultDigit   = "0123456789"
	defaultSpecial = "!@#$%^&*()-_=+[]{}|;:,.<>?/~`"
)

// Charsets overrides the default per-class character sets and supplies
// the four custom classes bound via --charset1..4 (spec.md §6).
type Charsets struct {
	Lower, Upper, Digit, Special string
	Custom1, Custom2, Custom3, Custom4 string
}

// DefaultCharsets returns the built-in defaults with no custom classes.
func DefaultCharsets() Charsets {
	return Charsets{
		Lower:   defaultLower,
		Upper:   defaultUpper,
		Digit:   defaultDigit,
		Special: defaultSpecial,
	}
}

// position is one slot in the mask: the literal bytes it may take.
type position struct {
	chars string // de-duplicated, non-empty
}

// Spec is a parsed mask: an ordered sequence of per-position charsets.
type Spec struct {
	positions []position
}

// Len returns the number of positions (mask token count).
func (s *Spec) Len() int { return len(s.positions) }

// CharsetSize returns the charset size at position i.
func (s *Spec) CharsetSize(i int) int { return len(s.positions[i].chars) }

// CharAt returns the byte at charset index j of position i.
func (s *Spec) CharAt(i, j int) byte { return s.positions[i].chars[j] }

// Parse scans mask left to right. '?' introduces a class token; any
// other character is a literal token (spec.md §4.2).
func Parse(maskStr string, cs Charsets) (*Spec, error) {
	if len(maskStr) == 0 {
		return nil, ErrEmpty
	}

	var positions []position
	for i := 0; i < len(maskStr); i++ {
		c := maskStr[i]
		if c != '?' {
			positions = append(positions, position{chars: string(c)})
			continue
		}

		i++
		if i >= len(maskStr) {
			return nil, ErrUnknownClass
		}
		class := maskStr[i]

		chars, err := resolveClass(class, cs)
		if err != nil {
			return nil, err
		}
		positions = append(positions, position{chars: chars})
	}

	if len(positions) == 0 {
		return nil, ErrEmpty
	}
	return &Spec{positions: positions}, nil
}

func resolveClass(class byte, cs Charsets) (string, error) {
	var raw string
	switch class {
	case 'l':
		raw = orDefault(cs.Lower, defaultLower)
	case 'u':
		raw = orDefault(cs.Upper, defaultUpper)
	case 'd':
		raw = orDefault(cs.Digit, defaultDigit)
	case 's':
		raw = orDefault(cs.Special, defaultSpecial)
	case 'a':
		// Open question resolved (spec.md §9): ?a is the union of
		// lower, upper, digit, AND special, for parity with standard
		// mask tools (hashcat/john-style).
		raw = orDefault(cs.Lower, defaultLower) +
			orDefault(cs.Upper, defaultUpper) +
			orDefault(cs.Digit, defaultDigit) +
			orDefault(cs.Special, defaultSpecial)
	case '1':
		raw = cs.Custom1
	case '2':
		raw = cs.Custom2
	case '3':
		raw = cs.Custom3
	case '4':
		raw = cs.Custom4
	default:
		return "", ErrUnknownClass
	}

	deduped := dedupeChars(raw)
	if deduped == "" {
		// Invariant (spec.md §3): every token must resolve to a
		// non-empty charset. An unbound custom class (?1 with no
		// --charset1) or an explicitly emptied default both fail the
		// same way a genuinely unknown class letter would.
		return "", ErrUnknownClass
	}
	return deduped, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func dedupeChars(s string) string {
	if s == "" {
		return ""
	}
	seen := make(map[byte]bool, len(s))
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		b.WriteByte(c)
	}
	return b.String()
}

// Total returns the product of per-position charset sizes — the total
// candidate count — or ErrOverflow if it exceeds math.MaxInt64.
func (s *Spec) Total() (int64, error) {
	var total int64 = 1
	const maxInt64 = 1<<63 - 1
	for _, p := range s.positions {
		size := int64(len(p.chars))
		if total > maxInt64/size {
			return 0, ErrOverflow
		}
		total *= size
	}
	return total, nil
}
