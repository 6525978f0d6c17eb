package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists documents to SQLite. It is suitable for
// single-process production use. The schema is fixed CRUD over one
// documents table; no query language is generated from conditions.
type SQLiteStore[T any] struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
	opts   options[T]
}

// NewSQLiteStore creates a SQLite-backed document store. The path
// should be a file path (e.g., "./documents.db") or ":memory:" for
// testing.
func NewSQLiteStore[T any](path string, opts ...Option[T]) (*SQLiteStore[T], error) {
	o := defaultStoreOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore[T]{db: db, opts: o}, nil
}

// Insert implements Store. The batch runs in one transaction: a
// duplicate ID anywhere in it rolls the whole insert back.
func (s *SQLiteStore[T]) Insert(ctx context.Context, items ...T) (ids []string, err error) {
	ctx, done := s.opts.instrument(ctx, "insert", "")
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	ids = make([]string, len(items))
	for i, item := range items {
		id := ""
		if s.opts.id != nil {
			id = s.opts.id(item)
		}
		if id == "" {
			id = uuid.NewString()
		}
		ids[i] = id

		var exists int
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents WHERE id = ?`, id).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("check id %s: %w", id, err)
		}
		if exists > 0 {
			return nil, ErrDuplicateID
		}

		data, merr := s.opts.codec.Marshal(item)
		if merr != nil {
			err = fmt.Errorf("encode document %s: %w", id, merr)
			return nil, err
		}

		if _, err = tx.ExecContext(ctx, `
			INSERT INTO documents (id, data, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`, id, data, now, now); err != nil {
			return nil, fmt.Errorf("insert document %s: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert: %w", err)
	}
	return ids, nil
}

// Update implements Store.
func (s *SQLiteStore[T]) Update(ctx context.Context, id string, item T) (err error) {
	ctx, done := s.opts.instrument(ctx, "update", id)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	data, err := s.opts.codec.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", id, err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE documents SET data = ?, updated_at = ? WHERE id = ?
	`, data, time.Now().UTC().Format(time.RFC3339Nano), id)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete implements Store.
func (s *SQLiteStore[T]) Delete(ctx context.Context, id string) (err error) {
	ctx, done := s.opts.instrument(ctx, "delete", id)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get implements Store.
func (s *SQLiteStore[T]) Get(ctx context.Context, id string) (item T, err error) {
	ctx, done := s.opts.instrument(ctx, "get", id)
	defer func() { done(err) }()

	var zero T
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return zero, ErrStoreClosed
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, `SELECT data FROM documents WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
		return zero, err
	}
	if err != nil {
		return zero, fmt.Errorf("load document: %w", err)
	}

	if err = s.opts.codec.Unmarshal(data, &item); err != nil {
		return zero, fmt.Errorf("decode document %s: %w", id, err)
	}
	return item, nil
}

// All implements Store. Documents come back in insertion order.
func (s *SQLiteStore[T]) All(ctx context.Context) (items []T, err error) {
	ctx, done := s.opts.instrument(ctx, "all", "")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx, `SELECT data FROM documents ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	items = []T{}
	for rows.Next() {
		var data []byte
		if err = rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		var item T
		if err = s.opts.codec.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return items, nil
}

// Count implements Store.
func (s *SQLiteStore[T]) Count(ctx context.Context) (n int, err error) {
	ctx, done := s.opts.instrument(ctx, "count", "")
	defer func() { done(err) }()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrStoreClosed
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

// Close implements Store. Closing twice is harmless.
func (s *SQLiteStore[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
