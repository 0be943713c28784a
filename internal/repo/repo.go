// Package repo holds the SQL repositories for companies, users, assets,
// access grants and audit entries. Every repository runs against a DBTX so the
// same code serves plain reads and transactional writes.
package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/crucial707/hci-inventory/internal/query"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// count runs SELECT COUNT(*) over from with the filter in w.
func count(ctx context.Context, db DBTX, from string, w *query.Where) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+from+w.SQL(), w.Args()...).Scan(&n)
	return n, err
}

// exists reports whether a row with id exists in table and holds a share lock
// on it until the surrounding transaction ends.
func exists(ctx context.Context, db DBTX, table, id string) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = $1 FOR SHARE", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
