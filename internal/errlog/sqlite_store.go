package errlog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps entries in the error_log table, keyed by timestamp.
type SQLiteStore struct {
	conn *sql.DB
}

func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open error log db: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS error_log (
		id TEXT PRIMARY KEY,
		when_ms INTEGER NOT NULL,
		request TEXT NOT NULL,
		request_id TEXT NOT NULL DEFAULT '',
		err TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_error_log_when ON error_log(when_ms);
	`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *SQLiteStore) Write(ctx context.Context, e Entry) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO error_log (id, when_ms, request, request_id, err) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), e.When, e.Request, e.RequestID, e.Err,
	)
	if err != nil {
		return fmt.Errorf("insert error entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
