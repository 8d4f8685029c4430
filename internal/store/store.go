// Package store keeps a history of document analyses in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/thywilljoshua/hydra/internal/analyze"
)

var ErrNotFound = errors.New("analysis not found")

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id         TEXT PRIMARY KEY,
	filename   TEXT NOT NULL,
	page_count INTEGER NOT NULL,
	summary    TEXT NOT NULL,
	clauses    TEXT NOT NULL,
	rules      TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
`

// Record is a persisted analysis.
type Record struct {
	ID        string                   `json:"id"`
	CreatedAt time.Time                `json:"created_at"`
	Analysis  analyze.DocumentAnalysis `json:"analysis"`
}

type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	for _, p := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db, logger: logger, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// Save persists a and returns its record with a fresh ID.
func (s *Store) Save(ctx context.Context, a *analyze.DocumentAnalysis) (*Record, error) {
	clauses, err := json.Marshal(a.Clauses)
	if err != nil {
		return nil, fmt.Errorf("store: encode clauses: %w", err)
	}
	rules, err := json.Marshal(a.Rules)
	if err != nil {
		return nil, fmt.Errorf("store: encode rules: %w", err)
	}
	rec := &Record{ID: uuid.NewString(), CreatedAt: s.now().UTC(), Analysis: *a}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, filename, page_count, summary, clauses, rules, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, a.Filename, a.PageCount, a.Summary, string(clauses), string(rules), rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("store: insert: %w", err)
	}
	s.logger.Debug("analysis saved", zap.String("id", rec.ID), zap.String("filename", a.Filename))
	return rec, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, filename, page_count, summary, clauses, rules, created_at FROM analyses WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// List returns up to limit records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, page_count, summary, clauses, rules, created_at FROM analyses ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec             Record
		clauses, rules  string
		createdUnixNano int64
	)
	a := &rec.Analysis
	if err := row.Scan(&rec.ID, &a.Filename, &a.PageCount, &a.Summary, &clauses, &rules, &createdUnixNano); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(clauses), &a.Clauses); err != nil {
		return nil, fmt.Errorf("store: decode clauses of %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(rules), &a.Rules); err != nil {
		return nil, fmt.Errorf("store: decode rules of %s: %w", rec.ID, err)
	}
	rec.CreatedAt = time.Unix(0, createdUnixNano).UTC()
	return &rec, nil
}
