package markov

import "errors"

// ErrEmptyModel is returned by Sample when the model has no start
// contexts to pick from (spec.md §4.3).
var ErrEmptyModel = errors.New("markov: empty model, no start contexts")

// ErrNoTrainingLines is returned by Train when the corpus contained no
// line at least as long as the model order.
var ErrNoTrainingLines = errors.New("markov: no training lines at or above order length")
