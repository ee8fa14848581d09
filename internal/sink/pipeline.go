// Package sink implements spec.md §4.5's streaming output pipeline: a
// bounded channel of candidate batches, drained by a single writer
// goroutine so output lines are never interleaved, with backpressure
// when the channel is full and graceful drain on cancellation.
package sink

import (
	"bufio"
	"context"
	"io"
)

// DefaultBatchSize and DefaultChannelDepth mirror spec.md §4.5's stated
// defaults (4,096 candidates per batch, channel depth 16).
const (
	DefaultBatchSize    = 4096
	DefaultChannelDepth = 16
)

// Batch is a slice of candidates moved through the pipeline as one
// unit. The sink preserves order within a batch only (spec.md §4.5).
type Batch = []string

// Sink owns the bounded channel and the single writer goroutine.
type Sink struct {
	ch     chan Batch
	w      *bufio.Writer
	doneCh chan error
}

// New creates a sink writing LF-terminated lines to w.
func New(w io.Writer, channelDepth int) *Sink {
	if channelDepth <= 0 {
		channelDepth = DefaultChannelDepth
	}
	return &Sink{
		ch:     make(chan Batch, channelDepth),
		w:      bufio.NewWriter(w),
		doneCh: make(chan error, 1),
	}
}

// Run starts the writer goroutine. Call Send from producers, then
// Close once all producers are done, then Wait for the final error
// (including any buffered-writer flush error).
func (s *Sink) Run() {
	go s.drain()
}

func (s *Sink) drain() {
	var firstErr error
	note := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for batch := range s.ch {
		for _, c := range batch {
			if _, err := s.w.WriteString(c); err != nil {
				note(err)
				continue
			}
			note(s.w.WriteByte('\n'))
		}
	}
	note(s.w.Flush())
	s.doneCh <- firstErr
}

// Send delivers a batch to the writer, blocking (backpressure) while
// the channel is full, or returning early if ctx is cancelled —
// producers are expected to check ctx before calling Send again, per
// spec.md §5's "workers finish the current batch, send it, and exit."
func (s *Sink) Send(ctx context.Context, batch Batch) error {
	if len(batch) == 0 {
		return nil
	}
	select {
	case s.ch <- batch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close signals that no more batches will arrive. Call only after all
// producers have returned.
func (s *Sink) Close() {
	close(s.ch)
}

// Wait blocks until the writer goroutine has drained the channel and
// flushed, returning the first write error encountered, if any.
func (s *Sink) Wait() error {
	return <-s.doneCh
}
