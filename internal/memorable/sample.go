package memorable

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// ErrEmptyWordlist guards against a build that embedded an empty
// wordlist.txt.
var ErrEmptyWordlist = errors.New("memorable: wordlist is empty")

// DefaultSeparator joins sampled words when the caller supplies none.
const DefaultSeparator = "-"

// Generate returns count words drawn uniformly at random (with
// replacement) from the built-in word list, joined by sep.
func Generate(count int, sep string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyWordlist
	}
	if sep == "" {
		sep = DefaultSeparator
	}
	if count <= 0 {
		count = 1
	}

	picked := make([]string, count)
	for i := range picked {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
		if err != nil {
			return "", err
		}
		picked[i] = words[n.Int64()]
	}
	return strings.Join(picked, sep), nil
}
