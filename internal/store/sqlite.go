package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/muhammadolammi/hirematch/internal/model"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS candidates (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	record     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS candidates_name_idx ON candidates (name);`

// SQLite keeps candidates in a local database file for CLI runs.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("sqlite store: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite store: init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Insert(ctx context.Context, c *model.Candidate) (uuid.UUID, error) {
	record, err := encode(c)
	if err != nil {
		return uuid.Nil, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO candidates (id, name, email, record, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, email = excluded.email, record = excluded.record`,
		c.ID.String(), c.Name, c.Email, string(record), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert candidate: %w", err)
	}
	return c.ID, nil
}

func (s *SQLite) GetAll(ctx context.Context) ([]model.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, record FROM candidates ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []model.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return out, nil
}

func (s *SQLite) GetByName(ctx context.Context, name string) (*model.Candidate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, record FROM candidates WHERE name = ? ORDER BY seq LIMIT 1`, name)
	c, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row scanner) (*model.Candidate, error) {
	var (
		rawID  string
		record string
	)
	if err := row.Scan(&rawID, &record); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("candidate id %q: %w", rawID, err)
	}
	return decode(id, []byte(record))
}
