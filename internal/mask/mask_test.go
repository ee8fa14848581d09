package mask

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

func generateAll(t *testing.T, maskStr string, workers int) []string {
	t.Helper()
	spec, err := Parse(maskStr, DefaultCharsets())
	if err != nil {
		t.Fatalf("parse %q: %v", maskStr, err)
	}
	var buf bytes.Buffer
	snk := sink.New(&buf, 16)
	snk.Run()
	if err := Enumerate(context.Background(), spec, snk, workers, 64); err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	snk.Close()
	if err := snk.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	out := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	return out
}

func TestS1MaskDigits(t *testing.T) {
	lines := generateAll(t, "?d?d", 1)
	if len(lines) != 100 {
		t.Fatalf("expected 100 lines, got %d", len(lines))
	}
	want := map[string]bool{}
	for i := 0; i < 100; i++ {
		want[padTwo(i)] = true
	}
	for _, l := range lines {
		if !want[l] {
			t.Errorf("unexpected candidate %q", l)
		}
		delete(want, l)
	}
	if len(want) != 0 {
		t.Errorf("missing candidates: %v", want)
	}
}

func TestS2MaskLiteral(t *testing.T) {
	lines := generateAll(t, "a?l", 1)
	if len(lines) != 26 {
		t.Fatalf("expected 26 lines, got %d", len(lines))
	}
	sort.Strings(lines)
	for i, l := range lines {
		want := "a" + string(rune('a'+i))
		if l != want {
			t.Errorf("lines[%d] = %q, want %q", i, l, want)
		}
	}
}

func TestMaskSizeProperty(t *testing.T) {
	spec, err := Parse("?l?d?s", DefaultCharsets())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	total, err := spec.Total()
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	want := int64(len(defaultLower)) * int64(len(defaultDigit)) * int64(len(defaultSpecial))
	if total != want {
		t.Fatalf("total = %d, want %d", total, want)
	}
}

func TestMaskSetEqualityParallelVsSingleThread(t *testing.T) {
	single := generateAll(t, "?u?d?d", 1)
	parallel := generateAll(t, "?u?d?d", 6)
	if len(single) != len(parallel) {
		t.Fatalf("lengths differ: single=%d parallel=%d", len(single), len(parallel))
	}
	sort.Strings(single)
	sort.Strings(parallel)
	for i := range single {
		if single[i] != parallel[i] {
			t.Fatalf("set mismatch at %d: %q vs %q", i, single[i], parallel[i])
		}
	}
}

func TestParseEmptyMask(t *testing.T) {
	if _, err := Parse("", DefaultCharsets()); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestParseUnknownClass(t *testing.T) {
	if _, err := Parse("?x", DefaultCharsets()); err != ErrUnknownClass {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
}

func TestParseUnboundCustomClass(t *testing.T) {
	if _, err := Parse("?1", DefaultCharsets()); err != ErrUnknownClass {
		t.Fatalf("expected ErrUnknownClass for unbound custom class, got %v", err)
	}
}

func TestParseOverflow(t *testing.T) {
	// 64 positions of ?a (91 chars each, lower+upper+digit+special) vastly
	// exceeds 2^63-1.
	maskStr := strings.Repeat("?a", 64)
	if _, err := Parse(maskStr, DefaultCharsets()); err != nil {
		t.Fatalf("parse: %v", err)
	}
	spec, _ := Parse(maskStr, DefaultCharsets())
	if _, err := spec.Total(); err != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func padTwo(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}
