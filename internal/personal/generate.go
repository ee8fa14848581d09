package personal

import (
	"context"

	"github.com/jigsaw-gen/jigsaw/internal/mutate"
	"github.com/jigsaw-gen/jigsaw/internal/profile"
	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

// Options configures a Generate or Check run.
type Options struct {
	MinLen    int
	MaxLen    int
	DedupCap  int
	BatchSize int
}

func (o Options) withDefaults() Options {
	if o.MinLen <= 0 {
		o.MinLen = DefaultMinLen
	}
	if o.MaxLen <= 0 {
		o.MaxLen = DefaultMaxLen
	}
	if o.DedupCap <= 0 {
		o.DedupCap = DefaultDedupCap
	}
	if o.BatchSize <= 0 {
		o.BatchSize = sink.DefaultBatchSize
	}
	return o
}

// Generate runs the full personal-engine pipeline over p, streaming
// deduplicated, length-filtered candidates to snk. The engine is
// single-threaded (spec.md §5): the dedup set is a shared mutable
// resource owned by this one goroutine.
func Generate(ctx context.Context, p *profile.Profile, opts Options, snk *sink.Sink) error {
	opts = opts.withDefaults()
	atoms := atomize(p)
	seen := newDedupSet(opts.DedupCap)

	batch := make([]string, 0, opts.BatchSize)
	var sendErr error

	generate(atoms, mutate.Separators, opts.MinLen, opts.MaxLen, func(candidate, _ string) bool {
		if !seen.firstOccurrence(candidate) {
			return false
		}
		batch = append(batch, candidate)
		if len(batch) == opts.BatchSize {
			if err := snk.Send(ctx, batch); err != nil {
				sendErr = err
				return true
			}
			batch = make([]string, 0, opts.BatchSize)
			if ctx.Err() != nil {
				sendErr = ctx.Err()
				return true
			}
		}
		return false
	})

	if sendErr != nil {
		return sendErr
	}
	if len(batch) > 0 {
		return snk.Send(ctx, batch)
	}
	return nil
}
