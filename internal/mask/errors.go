package mask

import "errors"

// Parse/enumerate errors, per spec.md §4.2's error modes and §7's
// input/capacity error taxonomy. All are fatal at the entry point.
var (
	ErrEmpty        = errors.New("mask: empty mask")
	ErrUnknownClass = errors.New("mask: unknown class after '?'")
	ErrOverflow     = errors.New("mask: candidate count overflows int64")
)
