package markov

import (
	"context"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

const maxResamples = 8

// weightedRow is a context's outgoing transitions compiled into
// cumulative-weight form for O(log n) sampling.
type weightedRow struct {
	bytes []byte
	cum   []uint64
	total uint64
}

func compileRow(counts map[byte]uint64) weightedRow {
	bytes := make([]byte, 0, len(counts))
	for b := range counts {
		bytes = append(bytes, b)
	}
	sort.Slice(bytes, func(i, j int) bool { return bytes[i] < bytes[j] })

	cum := make([]uint64, len(bytes))
	var total uint64
	for i, b := range bytes {
		total += counts[b]
		cum[i] = total
	}
	return weightedRow{bytes: bytes, cum: cum, total: total}
}

func (r weightedRow) pick(draw uint64) byte {
	i := sort.Search(len(r.cum), func(i int) bool { return r.cum[i] > draw })
	if i == len(r.cum) {
		i = len(r.cum) - 1
	}
	return r.bytes[i]
}

// compiled is the read-only, sampling-ready form of a Model: start
// contexts and every transition row in cumulative-weight form, built
// once and shared immutably across worker goroutines (spec.md §6).
type compiled struct {
	order       int
	startCtx    []string
	startCum    []uint64
	startTotal  uint64
	transitions map[string]weightedRow
}

func compile(m *Model) *compiled {
	starts := make([]string, 0, len(m.Starts))
	for s := range m.Starts {
		starts = append(starts, s)
	}
	sort.Strings(starts)

	cum := make([]uint64, len(starts))
	var total uint64
	for i, s := range starts {
		total += m.Starts[s]
		cum[i] = total
	}

	transitions := make(map[string]weightedRow, len(m.Transitions))
	for ctx, counts := range m.Transitions {
		transitions[ctx] = compileRow(counts)
	}

	return &compiled{
		order:       m.Order,
		startCtx:    starts,
		startCum:    cum,
		startTotal:  total,
		transitions: transitions,
	}
}

func (c *compiled) pickStart(rng *rand.Rand) string {
	draw := uint64(rng.Int63n(int64(c.startTotal)))
	i := sort.Search(len(c.startCum), func(i int) bool { return c.startCum[i] > draw })
	if i == len(c.startCum) {
		i = len(c.startCum) - 1
	}
	return c.startCtx[i]
}

// Sample draws count candidates from m in parallel, streaming them
// through snk. minLen <= 0 defaults to m.MinLen; maxLen <= 0 defaults
// to m.MaxLen. workers <= 0 defaults to runtime.NumCPU. Each worker
// owns an RNG seeded from seed plus its own worker index (spec.md
// §4.3), so output ordering across workers is not guaranteed.
func Sample(ctx context.Context, m *Model, count int, minLen, maxLen int, seed int64, workers int, snk *sink.Sink, batchSize int) error {
	if len(m.Starts) == 0 {
		return ErrEmptyModel
	}
	if minLen <= 0 {
		minLen = m.MinLen
	}
	if maxLen <= 0 {
		maxLen = m.MaxLen
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > count {
		workers = count
	}
	if workers < 1 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = sink.DefaultBatchSize
	}

	c := compile(m)

	chunk := count / workers
	remainder := count % workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := chunk
		if w < remainder {
			n++
		}
		if n == 0 {
			continue
		}
		workerIdx := w
		workerCount := n
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(workerIdx)))
			return sampleWorker(gctx, c, workerCount, minLen, maxLen, rng, snk, batchSize)
		})
	}
	return g.Wait()
}

func sampleWorker(ctx context.Context, c *compiled, count, minLen, maxLen int, rng *rand.Rand, snk *sink.Sink, batchSize int) error {
	batch := make([]string, 0, batchSize)
	for i := 0; i < count; i++ {
		batch = append(batch, sampleOne(c, minLen, maxLen, rng))
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

// sampleOne draws one candidate, retrying up to maxResamples times if
// the terminator is sampled before minLen, then force-stopping on the
// final attempt regardless (spec.md §4.3 step 4).
func sampleOne(c *compiled, minLen, maxLen int, rng *rand.Rand) string {
	for attempt := 0; attempt <= maxResamples; attempt++ {
		s, hitMinBeforeTerm := sampleAttempt(c, minLen, maxLen, rng, attempt == maxResamples)
		if hitMinBeforeTerm {
			return s
		}
	}
	// unreachable: the final attempt always force-stops.
	s, _ := sampleAttempt(c, minLen, maxLen, rng, true)
	return s
}

// sampleAttempt runs one sampling pass. force makes an early
// terminator draw (before minLen) end the string anyway instead of
// reporting failure for a retry.
func sampleAttempt(c *compiled, minLen, maxLen int, rng *rand.Rand, force bool) (string, bool) {
	ctx := c.pickStart(rng)
	out := make([]byte, 0, maxLen)
	out = append(out, ctx...)

	for len(out) < maxLen {
		row, ok := c.transitions[ctx]
		if !ok || row.total == 0 {
			// Dead context: treated as terminator (spec.md §4.3 errors).
			if len(out) >= minLen || force {
				return string(out), true
			}
			return "", false
		}

		draw := uint64(rng.Int63n(int64(row.total)))
		next := row.pick(draw)

		if next == terminator {
			if len(out) >= minLen || force {
				return string(out), true
			}
			return "", false
		}

		out = append(out, next)
		if len(out) >= c.order {
			ctx = string(out[len(out)-c.order:])
		}
	}
	return string(out[:maxLen]), true
}
