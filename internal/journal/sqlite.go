package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bankist/internal/dbx"
	"github.com/dmitrijs2005/bankist/internal/filex"
	"github.com/dmitrijs2005/bankist/internal/journal/migrations"
	"github.com/pressly/goose/v3"
)

// SQLite is a Recorder backed by database/sql and the modernc driver.
type SQLite struct {
	db *sql.DB
}

// migrate is a seam for goose.UpContext.
var migrate = func(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens dsn and brings the schema up to date. For a file DSN the
// containing directory is created first.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	if path := filex.SQLitePath(dsn); path != "" {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}
	db, err := dbx.OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal migrations: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Record appends e and bumps the user's activity counter in one transaction.
func (s *SQLite) Record(ctx context.Context, e Event) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	at := e.At.UnixMilli()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events (at_ms, kind, username, amount, detail) VALUES (?, ?, ?, ?, ?)`,
			at, string(e.Kind), e.Username, e.Amount.String(), e.Detail)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO activity (username, events, last_at_ms) VALUES (?, 1, ?)
			ON CONFLICT(username) DO UPDATE SET events = events + 1, last_at_ms = excluded.last_at_ms`,
			e.Username, at)
		if err != nil {
			return fmt.Errorf("failed to update activity: %w", err)
		}
		return nil
	})
}

func (s *SQLite) Recent(ctx context.Context, username string, limit int) ([]Event, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT at_ms, kind, username, amount, detail FROM events
		WHERE username = ? ORDER BY id DESC LIMIT ?`, username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e    Event
			atMs int64
			kind string
		)
		if err := rows.Scan(&atMs, &kind, &e.Username, &e.Amount, &e.Detail); err != nil {
			return nil, err
		}
		e.At = time.UnixMilli(atMs)
		e.Kind = Kind(kind)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLite) Count(ctx context.Context, username string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT events FROM activity WHERE username = ?`, username).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
