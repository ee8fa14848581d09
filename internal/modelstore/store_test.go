package modelstore

import (
	"path/filepath"
	"testing"
)

func TestInsertAndList(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "models.db")
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	id, err := s.Insert(ModelInfo{Path: "/tmp/a.model", Order: 3, MinLen: 4, MaxLen: 16, CorpusLines: 1000})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected nonzero id")
	}

	models, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(models) != 1 {
		t.Fatalf("expected 1 model, got %d", len(models))
	}
	if models[0].Path != "/tmp/a.model" || models[0].Order != 3 {
		t.Fatalf("unexpected model row: %+v", models[0])
	}
}

func TestGetByPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "models.db")
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, err := s.Insert(ModelInfo{Path: "/tmp/b.model", Order: 2, MinLen: 4, MaxLen: 12, CorpusLines: 500}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	m, err := s.Get("/tmp/b.model")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Order != 2 || m.CorpusLines != 500 {
		t.Fatalf("unexpected model: %+v", m)
	}
}

func TestGetMissingPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "models.db")
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, err := s.Get("/does/not/exist"); err == nil {
		t.Fatalf("expected error for missing path")
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "models.db")
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.Close()

	// Reopening against the same DSN must not fail or re-apply migrations.
	s2, err := Open(dsn)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
}
