package store

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql the stores actually call. Both
// *sql.DB and *sql.Tx satisfy it, so a store can run against the pool
// directly or join a transaction its caller manages.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
