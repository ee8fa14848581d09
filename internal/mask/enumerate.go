package mask

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

// Enumerate visits every candidate described by s, partitioning the
// index range [0, total) into one contiguous chunk per worker
// (spec.md §4.2). Workers decode indices to strings independently and
// send batches to snk; inter-worker output ordering is not guaranteed,
// only intra-batch order (spec.md §4.5) and the overall set (spec.md §8
// property 2).
//
// workers <= 0 defaults to runtime.NumCPU(). batchSize <= 0 defaults to
// sink.DefaultBatchSize.
func Enumerate(ctx context.Context, s *Spec, snk *sink.Sink, workers, batchSize int) error {
	total, err := s.Total()
	if err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if int64(workers) > total {
		workers = int(total)
	}
	if workers < 1 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = sink.DefaultBatchSize
	}

	chunk := total / int64(workers)
	remainder := total % int64(workers)

	g, gctx := errgroup.WithContext(ctx)
	var start int64
	for w := 0; w < workers; w++ {
		size := chunk
		if int64(w) < remainder {
			size++
		}
		lo, hi := start, start+size
		start = hi
		if lo == hi {
			continue
		}
		g.Go(func() error {
			return enumerateRange(gctx, s, snk, lo, hi, batchSize)
		})
	}
	return g.Wait()
}

// enumerateRange decodes indices [lo, hi) to strings in odometer
// order (position 0 varies fastest) and streams them to snk in
// batches, checking for cancellation at each batch boundary.
func enumerateRange(ctx context.Context, s *Spec, snk *sink.Sink, lo, hi int64, batchSize int) error {
	batch := make([]string, 0, batchSize)
	for idx := lo; idx < hi; idx++ {
		batch = append(batch, decode(s, idx))
		if len(batch) == batchSize {
			if err := snk.Send(ctx, batch); err != nil {
				return err
			}
			batch = make([]string, 0, batchSize)
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
	if len(batch) > 0 {
		if err := snk.Send(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

// decode maps a single index to its candidate string. Position 0
// varies fastest: it is the least-significant "digit" of a mixed-radix
// number whose bases are the per-position charset sizes.
func decode(s *Spec, idx int64) string {
	chars := make([]byte, s.Len())
	for i := 0; i < s.Len(); i++ {
		size := int64(s.CharsetSize(i))
		j := idx % size
		idx /= size
		chars[i] = s.CharAt(i, int(j))
	}
	return string(chars)
}
