package personal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jigsaw-gen/jigsaw/internal/profile"
	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

// s5Profile is spec.md §8 scenario S5's literal profile.
func s5Profile() *profile.Profile {
	return &profile.Profile{
		FirstNames: []string{"John"},
		LastNames:  []string{"Doe"},
		Dates:      []string{"1990"},
		Numbers:    []string{"123"},
	}
}

func TestGenerateProducesS5Candidates(t *testing.T) {
	p := s5Profile()

	var buf bytes.Buffer
	snk := sink.New(&buf, 16)
	snk.Run()
	if err := Generate(context.Background(), p, Options{}, snk); err != nil {
		t.Fatalf("generate: %v", err)
	}
	snk.Close()
	if err := snk.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"John1990", "nhoj", "John_Doe", "John_Doe123", "!John123!"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
}

func TestGenerateRespectsLengthFilter(t *testing.T) {
	p := &profile.Profile{FirstNames: []string{"al"}}

	var buf bytes.Buffer
	snk := sink.New(&buf, 16)
	snk.Run()
	if err := Generate(context.Background(), p, Options{MinLen: 4, MaxLen: 32}, snk); err != nil {
		t.Fatalf("generate: %v", err)
	}
	snk.Close()
	snk.Wait()

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		if len(line) < 4 || len(line) > 32 {
			t.Fatalf("candidate %q violates length filter", line)
		}
	}
}

func TestGenerateDeduplicates(t *testing.T) {
	p := &profile.Profile{FirstNames: []string{"sam", "sam"}}

	var buf bytes.Buffer
	snk := sink.New(&buf, 16)
	snk.Run()
	if err := Generate(context.Background(), p, Options{}, snk); err != nil {
		t.Fatalf("generate: %v", err)
	}
	snk.Close()
	snk.Wait()

	counts := map[string]int{}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		counts[line]++
	}
	for c, n := range counts {
		if n > 1 {
			t.Fatalf("candidate %q emitted %d times, expected dedup", c, n)
		}
	}
}

func TestCheckFindsKnownCandidate(t *testing.T) {
	// spec.md §8 S6: checking the S5 profile against "John_Doe123"
	// must report found.
	p := s5Profile()
	result := Check(p, "John_Doe123", Options{})
	if !result.Found {
		t.Fatalf("expected John_Doe123 to be found")
	}
	if result.Pattern == "" {
		t.Fatalf("expected a non-empty pattern family")
	}
}

func TestCheckReportsNotFound(t *testing.T) {
	// spec.md §8 S7: same profile, an impossible target, must report
	// not found.
	p := s5Profile()
	result := Check(p, "ImpossiblePasswordXYZ", Options{})
	if result.Found {
		t.Fatalf("expected not found")
	}
}

func TestAtomizeSkipsEmptyValues(t *testing.T) {
	p := &profile.Profile{FirstNames: []string{"john", ""}}
	atoms := atomize(p)
	if len(atoms) != 1 {
		t.Fatalf("expected empty values skipped, got %d atoms", len(atoms))
	}
}
