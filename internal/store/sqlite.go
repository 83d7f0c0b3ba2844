// SPDX-License-Identifier: MIT
// Package: lvseq/internal/store

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *ulid.MonotonicEntropy
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		count       INTEGER NOT NULL,
		terms       TEXT NOT NULL,
		max_steps   INTEGER NOT NULL DEFAULT 0,
		timeout_ns  INTEGER NOT NULL DEFAULT 0,
		elapsed_ns  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_name ON runs(name);
	`
	_, err := s.db.Exec(schema)

	return err
}

func (s *SQLiteStore) Save(ctx context.Context, r Run) (Run, error) {
	now := time.Now().UTC()
	r.ID = s.newID(now)
	r.CreatedAt = now

	terms, err := encodeTerms(r.Terms)
	if err != nil {
		return Run{}, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, name, count, terms, max_steps, timeout_ns, elapsed_ns, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Count, terms, r.MaxSteps, int64(r.Timeout), int64(r.Elapsed),
		now.Format(time.RFC3339Nano))
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	return r, nil
}

const selectRun = `SELECT id, name, count, terms, max_steps, timeout_ns, elapsed_ns, created_at FROM runs`

func (s *SQLiteStore) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return r, err
}

func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Run, error) {
	query := selectRun + ` ORDER BY id DESC`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r                    Run
		terms, created       string
		timeoutNS, elapsedNS int64
	)
	if err := sc.Scan(&r.ID, &r.Name, &r.Count, &terms, &r.MaxSteps, &timeoutNS, &elapsedNS, &created); err != nil {
		return Run{}, err
	}
	r.Timeout = time.Duration(timeoutNS)
	r.Elapsed = time.Duration(elapsedNS)

	var err error
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Run{}, fmt.Errorf("run %s: created_at: %w", r.ID, err)
	}
	if r.Terms, err = decodeTerms(terms); err != nil {
		return Run{}, fmt.Errorf("run %s: %w", r.ID, err)
	}

	return r, nil
}

// Terms are stored as a JSON array of decimal strings.

func encodeTerms(terms []*big.Int) (string, error) {
	strs := make([]string, len(terms))
	for i, t := range terms {
		strs[i] = t.String()
	}
	b, err := json.Marshal(strs)
	if err != nil {
		return "", fmt.Errorf("encode terms: %w", err)
	}

	return string(b), nil
}

func decodeTerms(s string) ([]*big.Int, error) {
	var strs []string
	if err := json.Unmarshal([]byte(s), &strs); err != nil {
		return nil, fmt.Errorf("decode terms: %w", err)
	}
	terms := make([]*big.Int, len(strs))
	for i, v := range strs {
		t, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("decode terms: term %d: %q is not an integer", i, v)
		}
		terms[i] = t
	}

	return terms, nil
}
