package markov

import (
	"bufio"
	"io"
)

// DefaultMaxTrainLineLen is the line-length cap applied before
// training (spec.md §4.3); lines longer than this are truncated, not
// rejected.
const DefaultMaxTrainLineLen = 64

// Train builds a Model of the given order from a line-oriented
// corpus. Lines shorter than order are skipped. Lines longer than
// maxLineLen are truncated to it before being trained on. maxLineLen
// <= 0 uses DefaultMaxTrainLineLen.
func Train(corpus io.Reader, order, maxLineLen int) (*Model, error) {
	if maxLineLen <= 0 {
		maxLineLen = DefaultMaxTrainLineLen
	}

	m := New(order)
	trained := 0

	scanner := bufio.NewScanner(corpus)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if len(line) > maxLineLen {
			line = line[:maxLineLen]
		}
		if len(line) < order {
			continue
		}
		trainLine(m, line, order)
		trained++
		if m.MinLen == 0 || len(line) < m.MinLen {
			m.MinLen = len(line)
		}
		if len(line) > m.MaxLen {
			m.MaxLen = len(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if trained == 0 {
		return nil, ErrNoTrainingLines
	}
	return m, nil
}

func trainLine(m *Model, s string, order int) {
	start := s[0:order]
	m.Starts[start]++

	for i := order; i < len(s); i++ {
		ctx := s[i-order : i]
		addTransition(m, ctx, s[i])
	}

	lastCtx := s[len(s)-order:]
	addTransition(m, lastCtx, terminator)
}

func addTransition(m *Model, ctx string, next byte) {
	row, ok := m.Transitions[ctx]
	if !ok {
		row = make(map[byte]uint64)
		m.Transitions[ctx] = row
	}
	row[next]++
}
