package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB is the subset of pgxpool.Pool the repositories use.
// Narrowed to an interface so tests can substitute a mock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
