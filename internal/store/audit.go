// Package store persists an optional invocation audit log in SQLite.
// Recording is strictly post-dispatch bookkeeping: a store failure is
// logged by the caller and never fails the tool call itself.
package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "modernc.org/sqlite"

	"siyuanmcp/internal/model"
)

type AuditStore struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

func NewAuditStore(path string) *AuditStore {
	return &AuditStore{path: path}
}

func (s *AuditStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return err
	}

	schema := `
CREATE TABLE IF NOT EXISTS invocations (
  id TEXT PRIMARY KEY,
  tool TEXT NOT NULL,
  endpoint TEXT NOT NULL,
  ok INTEGER NOT NULL DEFAULT 0,
  error_kind TEXT NOT NULL DEFAULT '',
  error_detail TEXT NOT NULL DEFAULT '',
  duration_ms INTEGER NOT NULL DEFAULT 0,
  started_unix INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_invocations_started ON invocations(started_unix);
CREATE INDEX IF NOT EXISTS idx_invocations_tool ON invocations(tool);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *AuditStore) Record(ctx context.Context, inv model.Invocation) error {
	db, err := s.ensureDB(ctx)
	if err != nil {
		return err
	}

	if inv.ID == "" {
		return errors.New("invocation id is required")
	}

	_, err = db.ExecContext(
		ctx,
		`INSERT INTO invocations(id, tool, endpoint, ok, error_kind, error_detail, duration_ms, started_unix)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Tool,
		inv.Endpoint,
		boolToInt(inv.OK),
		inv.ErrorKind,
		inv.ErrorDetail,
		inv.DurationMS,
		inv.StartedUnix,
	)
	return err
}

// Recent returns the newest invocations, most recent first.
func (s *AuditStore) Recent(ctx context.Context, limit int) ([]model.Invocation, error) {
	db, err := s.ensureDB(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.QueryContext(
		ctx,
		`SELECT id, tool, endpoint, ok, error_kind, error_detail, duration_ms, started_unix
		 FROM invocations ORDER BY started_unix DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]model.Invocation, 0, limit)
	for rows.Next() {
		var inv model.Invocation
		var ok int
		if err := rows.Scan(
			&inv.ID,
			&inv.Tool,
			&inv.Endpoint,
			&ok,
			&inv.ErrorKind,
			&inv.ErrorDetail,
			&inv.DurationMS,
			&inv.StartedUnix,
		); err != nil {
			return nil, err
		}
		inv.OK = ok == 1
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (s *AuditStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *AuditStore) ensureDB(ctx context.Context) (*sql.DB, error) {
	if err := s.Init(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, errors.New("sqlite db not initialized")
	}
	return s.db, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
