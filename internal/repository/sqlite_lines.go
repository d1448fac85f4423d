package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timely/internal/db"
)

// SQLiteLineStore keeps one named line store in the store_lines table. Lines
// are ordered by seq; writes run inside a unit of work so a summary block is
// appended all at once or not at all.
type SQLiteLineStore struct {
	conn db.DBTX
	uow  db.UnitOfWork
	name string
}

// NewSQLiteLineStore creates a store named name.
func NewSQLiteLineStore(conn db.DBTX, uow db.UnitOfWork, name string) *SQLiteLineStore {
	return &SQLiteLineStore{conn: conn, uow: uow, name: name}
}

// Name returns the store name.
func (s *SQLiteLineStore) Name() string {
	return s.name
}

func (s *SQLiteLineStore) ReadAll(ctx context.Context) ([]string, error) {
	if err := s.requireStore(ctx, s.conn); err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT text FROM store_lines WHERE store = ? ORDER BY seq`, s.name)
	if err != nil {
		return nil, fmt.Errorf("reading store %q: %w", s.name, err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scanning line of store %q: %w", s.name, err)
		}
		lines = append(lines, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading store %q: %w", s.name, err)
	}
	return lines, nil
}

func (s *SQLiteLineStore) Append(ctx context.Context, lines ...string) error {
	if len(lines) == 0 {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := s.requireStore(ctx, tx); err != nil {
			return err
		}
		var last int64
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(seq), 0) FROM store_lines WHERE store = ?`, s.name).Scan(&last)
		if err != nil {
			return fmt.Errorf("finding end of store %q: %w", s.name, err)
		}
		return s.insertLines(ctx, tx, last+1, lines)
	})
}

func (s *SQLiteLineStore) OverwriteAll(ctx context.Context, lines []string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := s.requireStore(ctx, tx); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM store_lines WHERE store = ?`, s.name); err != nil {
			return fmt.Errorf("clearing store %q: %w", s.name, err)
		}
		return s.insertLines(ctx, tx, 1, lines)
	})
}

// Ensure registers the store and writes initial lines if it does not exist.
func (s *SQLiteLineStore) Ensure(ctx context.Context, initial []string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		exists, err := s.exists(ctx, tx)
		if err != nil || exists {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO line_stores (name, created_at) VALUES (?, ?)`, s.name, nowUTC()); err != nil {
			return fmt.Errorf("creating store %q: %w", s.name, err)
		}
		return s.insertLines(ctx, tx, 1, initial)
	})
}

func (s *SQLiteLineStore) insertLines(ctx context.Context, tx db.DBTX, seq int64, lines []string) error {
	for i, line := range lines {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO store_lines (store, seq, text) VALUES (?, ?, ?)`,
			s.name, seq+int64(i), line); err != nil {
			return fmt.Errorf("inserting line into store %q: %w", s.name, err)
		}
	}
	return nil
}

func (s *SQLiteLineStore) exists(ctx context.Context, conn db.DBTX) (bool, error) {
	var exists bool
	err := conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM line_stores WHERE name = ?)`, s.name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking store %q: %w", s.name, err)
	}
	return exists, nil
}

func (s *SQLiteLineStore) requireStore(ctx context.Context, conn db.DBTX) error {
	exists, err := s.exists(ctx, conn)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("store %q: %w", s.name, ErrStoreNotFound)
	}
	return nil
}
