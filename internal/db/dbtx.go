package db

import (
	"context"
	"database/sql"
)

// DBTX is what repositories need from a connection: satisfied by *sql.DB for
// plain calls and by *sql.Tx inside UnitOfWork.WithinTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
