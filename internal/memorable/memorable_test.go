package memorable

import (
	"strings"
	"testing"
)

func TestGenerateWordCount(t *testing.T) {
	out, err := Generate(4, "-")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	parts := strings.Split(out, "-")
	if len(parts) != 4 {
		t.Fatalf("expected 4 words, got %d (%q)", len(parts), out)
	}
	for _, p := range parts {
		if p == "" {
			t.Fatalf("unexpected empty word in %q", out)
		}
	}
}

func TestGenerateDefaultSeparator(t *testing.T) {
	out, err := Generate(2, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, DefaultSeparator) {
		t.Fatalf("expected default separator in %q", out)
	}
}

func TestGenerateNonPositiveCount(t *testing.T) {
	out, err := Generate(0, "-")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Contains(out, "-") {
		t.Fatalf("expected a single word, got %q", out)
	}
}
