package repository

import (
	"context"
	"database/sql"
)

// Executor is the query surface shared by the two ways a repository can
// reach the database: a pooled handle (*sql.DB) or an open transaction
// (*sql.Tx).  Methods that must participate in a caller's transaction
// accept an Executor so the same query runs identically in either
// variant; call sites always pass exactly one of the two, never both.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Executor = (*sql.DB)(nil)
	_ Executor = (*sql.Tx)(nil)
)
