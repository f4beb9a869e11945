// Package postgres implements the repository contracts on PostgreSQL through
// database/sql. Queries are plain SQL with positional parameters.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"articles-api/internal/repository"
)

// Querier is the subset of *sql.DB the repositories use. Both *sql.DB and
// *circuitbreaker.DBCircuitBreaker satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

type scanner interface {
	Scan(dest ...interface{}) error
}

// wrapErr prefixes err with op. Unique violations are surfaced as
// *repository.UniqueViolationError carrying the constraint name; no other
// classification happens at this layer.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %w", op, &repository.UniqueViolationError{
			Constraint: pgErr.ConstraintName,
			Err:        err,
		})
	}
	return fmt.Errorf("%s: %w", op, err)
}

func queryList[T any](ctx context.Context, db Querier, op, query string, scan func(scanner) (*T, error), args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*T, 0, 16)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}

// queryOne returns (nil, nil) when the query yields no row.
func queryOne[T any](ctx context.Context, db Querier, op, query string, scan func(scanner) (*T, error), args ...interface{}) (*T, error) {
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return v, nil
}

func queryExists(ctx context.Context, db Querier, op, query string, args ...interface{}) (bool, error) {
	var exists bool
	if err := db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, wrapErr(op, err)
	}
	return exists, nil
}

func queryIDs(ctx context.Context, db Querier, op, query string, args ...interface{}) ([]int64, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return ids, nil
}
