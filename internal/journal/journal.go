// Package journal keeps an optional SQLite log of served requests: which
// path was asked for, how the router classified it, and how the response
// went. It is observability plumbing only; rendering never reads from it.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS requests (
	id INTEGER PRIMARY KEY,
	request_id TEXT NOT NULL,
	path TEXT NOT NULL,
	decision TEXT NOT NULL,
	status INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS requests_by_created ON requests(created_at);
`

type Journal struct {
	db *sql.DB
}

type Entry struct {
	RequestID string
	Path      string
	Decision  string
	Status    int
	Duration  time.Duration
	At        time.Time
}

func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

func (j *Journal) Init(ctx context.Context) error {
	if _, err := j.db.ExecContext(ctx, schemaSQL); err != nil {
		return err
	}
	var version int
	err := j.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = j.db.ExecContext(ctx, "INSERT INTO schema_version(version) VALUES(?)", schemaVersion)
		return err
	case err != nil:
		return err
	}
	if version != schemaVersion {
		_, err = j.db.ExecContext(ctx, "UPDATE schema_version SET version=?", schemaVersion)
		return err
	}
	return nil
}

func (j *Journal) Record(ctx context.Context, e Entry) error {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	return j.execRetry(ctx, `
		INSERT INTO requests(request_id, path, decision, status, duration_ms, created_at)
		VALUES(?, ?, ?, ?, ?, ?)
	`, e.RequestID, e.Path, e.Decision, e.Status, e.Duration.Milliseconds(), at.Unix())
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT request_id, path, decision, status, duration_ms, created_at
		FROM requests
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var durationMS, createdAt int64
		if err := rows.Scan(&e.RequestID, &e.Path, &e.Decision, &e.Status, &durationMS, &createdAt); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.At = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (j *Journal) execRetry(ctx context.Context, query string, args ...any) error {
	var lastErr error
	for attempt := 0; attempt < 5; attempt++ {
		_, err := j.db.ExecContext(ctx, query, args...)
		if err == nil || !isSQLiteBusy(err) {
			return err
		}
		lastErr = err
		if ctx.Err() != nil {
			return ctx.Err()
		}
		time.Sleep(retryDelay(attempt))
	}
	return lastErr
}

func retryDelay(attempt int) time.Duration {
	delay := time.Duration(attempt+1) * 40 * time.Millisecond
	if delay > 300*time.Millisecond {
		delay = 300 * time.Millisecond
	}
	return delay
}

func isSQLiteBusy(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_BUSY
	}
	return false
}
