package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Rows is the part of *sql.Rows that repositories read from.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Querier runs statements either on the pool or inside a transaction.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DB is a Querier that can also run a function inside one transaction.
type DB interface {
	Querier
	WithTx(ctx context.Context, fn func(tx Querier) error) error
}

// sqlConn is implemented by both *sql.DB and *sql.Tx.
type sqlConn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type querier struct {
	conn sqlConn
}

func (q querier) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := q.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (q querier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return q.conn.ExecContext(ctx, query, args...)
}

type sqlDB struct {
	querier
	db *sql.DB
}

func NewDB(db *sql.DB) DB {
	return &sqlDB{querier: querier{conn: db}, db: db}
}

// WithTx commits when fn returns nil and rolls back otherwise.
func (s *sqlDB) WithTx(ctx context.Context, fn func(tx Querier) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(querier{conn: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
