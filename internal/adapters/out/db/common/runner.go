// internal/adapters/out/db/common/runner.go
package common

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Runner is the subset of *sql.DB / *sql.Tx the repositories need, so
// the same query code runs inside or outside a transaction.
type Runner interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type ctxKey struct{}

// WithRunner stores a transaction in the context for downstream
// repository calls.
func WithRunner(ctx context.Context, r Runner) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

// GetRunner returns the transaction bound to ctx, or falls back to db.
func GetRunner(ctx context.Context, db *sql.DB) Runner {
	if r, ok := ctx.Value(ctxKey{}).(Runner); ok && r != nil {
		return r
	}
	return db
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The store constraint, not the service pre-check, is the
// source of truth for natural-key uniqueness.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
