package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "profile.yaml", `
first_names:
  - John
  - Jonathan
pets:
  - Rex
dates:
  - "2007"
unknown_field: ignored
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(p.FirstNames) != 2 || p.FirstNames[0] != "John" {
		t.Fatalf("first_names = %v", p.FirstNames)
	}
	if len(p.Pets) != 1 || p.Pets[0] != "Rex" {
		t.Fatalf("pets = %v", p.Pets)
	}
	if len(p.Dates) != 1 || p.Dates[0] != "2007" {
		t.Fatalf("dates = %v", p.Dates)
	}
	if p.LastNames != nil {
		t.Fatalf("expected nil last_names, got %v", p.LastNames)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "profile.json", `{"company": ["Acme"], "keywords": ["blue", "sky"]}`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(p.Company) != 1 || p.Company[0] != "Acme" {
		t.Fatalf("company = %v", p.Company)
	}
	if len(p.Keywords) != 2 {
		t.Fatalf("keywords = %v", p.Keywords)
	}
}

func TestCategoriesOrder(t *testing.T) {
	p := &Profile{FirstNames: []string{"a"}, Numbers: []string{"1"}}
	cats := p.Categories()
	if len(cats) != 14 {
		t.Fatalf("expected 14 categories, got %d", len(cats))
	}
	if cats[0][0] != "a" {
		t.Fatalf("expected first_names first, got %v", cats[0])
	}
	if cats[13][0] != "1" {
		t.Fatalf("expected numbers last, got %v", cats[13])
	}
}
