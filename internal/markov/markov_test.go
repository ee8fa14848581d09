package markov

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

const corpus = "password1\npassword2\npassw0rd\nletmein1\nletmein2\n"

func TestTrainSkipsShortLines(t *testing.T) {
	m, err := Train(strings.NewReader("ab\nabcdef\n"), 3, DefaultMaxTrainLineLen)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if m.MinLen != 6 || m.MaxLen != 6 {
		t.Fatalf("expected only the 6-char line counted, got min=%d max=%d", m.MinLen, m.MaxLen)
	}
}

func TestTrainNoQualifyingLines(t *testing.T) {
	_, err := Train(strings.NewReader("a\nb\nc\n"), 3, DefaultMaxTrainLineLen)
	if err != ErrNoTrainingLines {
		t.Fatalf("expected ErrNoTrainingLines, got %v", err)
	}
}

func TestTrainTruncatesLongLines(t *testing.T) {
	long := strings.Repeat("x", 100)
	m, err := Train(strings.NewReader(long+"\n"), 2, 10)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if m.MaxLen != 10 {
		t.Fatalf("expected truncation to 10, got %d", m.MaxLen)
	}
}

func TestSampleEmptyModel(t *testing.T) {
	m := New(2)
	var buf bytes.Buffer
	snk := sink.New(&buf, 4)
	snk.Run()
	err := Sample(context.Background(), m, 10, 4, 8, 1, 1, snk, 4)
	snk.Close()
	snk.Wait()
	if err != ErrEmptyModel {
		t.Fatalf("expected ErrEmptyModel, got %v", err)
	}
}

func TestSampleClosureAndLengthBounds(t *testing.T) {
	m, err := Train(strings.NewReader(corpus), 2, DefaultMaxTrainLineLen)
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	allowed := map[byte]bool{}
	for _, line := range strings.Split(strings.TrimSpace(corpus), "\n") {
		for i := 0; i < len(line); i++ {
			allowed[line[i]] = true
		}
	}

	var buf bytes.Buffer
	snk := sink.New(&buf, 8)
	snk.Run()
	if err := Sample(context.Background(), m, 200, 4, 9, 42, 4, snk, 16); err != nil {
		t.Fatalf("sample: %v", err)
	}
	snk.Close()
	if err := snk.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 200 {
		t.Fatalf("expected 200 candidates, got %d", len(lines))
	}
	for _, l := range lines {
		if len(l) < 4 || len(l) > 9 {
			t.Fatalf("candidate %q violates length bounds [4,9]", l)
		}
		for i := 0; i < len(l); i++ {
			if !allowed[l[i]] {
				t.Fatalf("candidate %q contains byte %q not in training corpus", l, l[i])
			}
		}
	}
}

func TestSampleDeterministicWithSameSeed(t *testing.T) {
	m, err := Train(strings.NewReader(corpus), 2, DefaultMaxTrainLineLen)
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	run := func() string {
		var buf bytes.Buffer
		snk := sink.New(&buf, 8)
		snk.Run()
		if err := Sample(context.Background(), m, 50, 4, 9, 7, 1, snk, 16); err != nil {
			t.Fatalf("sample: %v", err)
		}
		snk.Close()
		snk.Wait()
		return buf.String()
	}

	first := run()
	second := run()
	if first != second {
		t.Fatalf("same seed produced different output:\n%q\n%q", first, second)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	m, err := Train(strings.NewReader(corpus), 2, DefaultMaxTrainLineLen)
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	var buf bytes.Buffer
	if err := Save(&buf, m); err != nil {
		t.Fatalf("save: %v", err)
	}
	first := append([]byte(nil), buf.Bytes()...)

	loaded, err := Load(bytes.NewReader(first))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var buf2 bytes.Buffer
	if err := Save(&buf2, loaded); err != nil {
		t.Fatalf("save again: %v", err)
	}

	if !bytes.Equal(first, buf2.Bytes()) {
		t.Fatalf("round trip is not byte-equal")
	}
	if loaded.Order != m.Order || loaded.MinLen != m.MinLen || loaded.MaxLen != m.MaxLen {
		t.Fatalf("loaded model metadata mismatch")
	}
}
