package httpapi

import (
	"errors"
	"os"

	"github.com/jigsaw-gen/jigsaw/internal/markov"
)

var (
	errUnknownKind    = errors.New("httpapi: unknown stream kind")
	errMissingProfile = errors.New("httpapi: personal stream requires a profile")
)

func loadMarkovModel(path string) (*markov.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return markov.Load(f)
}
