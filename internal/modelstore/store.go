// Package modelstore implements SPEC_FULL.md §4.8's model registry: a
// small SQLite-backed catalog of trained Markov models. The model
// contents themselves remain the self-describing CBOR document from
// spec.md §4.6; this package only tracks where each trained model
// lives and its training metadata, so a caller can list previously
// trained models without opening every model file.
package modelstore

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store owns the registry database connection.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the registry database at dsn and
// applies any pending migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("modelstore: open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("modelstore: set WAL mode: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("modelstore: migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, f := range files {
		var applied int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", f).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", f, err)
		}
		if applied > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + f)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", f, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx for %s: %w", f, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", f, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", f); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", f, err)
		}
	}
	return nil
}

// ModelInfo is one registry row.
type ModelInfo struct {
	ID          int64
	Path        string
	Order       int
	MinLen      int
	MaxLen      int
	CorpusLines int
	TrainedAt   time.Time
}

// Insert records a newly trained model.
func (s *Store) Insert(info ModelInfo) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO models (path, order_n, min_len, max_len, corpus_lines) VALUES (?, ?, ?, ?, ?)`,
		info.Path, info.Order, info.MinLen, info.MaxLen, info.CorpusLines,
	)
	if err != nil {
		return 0, fmt.Errorf("modelstore: insert: %w", err)
	}
	return res.LastInsertId()
}

// List returns every registered model, most recently trained first.
func (s *Store) List() ([]ModelInfo, error) {
	rows, err := s.db.Query(`SELECT id, path, order_n, min_len, max_len, corpus_lines, trained_at FROM models ORDER BY trained_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("modelstore: list: %w", err)
	}
	defer rows.Close()

	var out []ModelInfo
	for rows.Next() {
		var m ModelInfo
		if err := rows.Scan(&m.ID, &m.Path, &m.Order, &m.MinLen, &m.MaxLen, &m.CorpusLines, &m.TrainedAt); err != nil {
			return nil, fmt.Errorf("modelstore: scan: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Get looks up a single model by its on-disk path.
func (s *Store) Get(path string) (ModelInfo, error) {
	var m ModelInfo
	err := s.db.QueryRow(
		`SELECT id, path, order_n, min_len, max_len, corpus_lines, trained_at FROM models WHERE path = ?`, path,
	).Scan(&m.ID, &m.Path, &m.Order, &m.MinLen, &m.MaxLen, &m.CorpusLines, &m.TrainedAt)
	if err != nil {
		return ModelInfo{}, fmt.Errorf("modelstore: get %s: %w", path, err)
	}
	return m, nil
}
