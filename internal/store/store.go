// Package store owns the database handle and the transaction boundary used by
// every mutation. It also translates driver errors into apperr kinds.
package store

import (
	"context"
	"database/sql"

	"github.com/crucial707/hci-inventory/internal/repo"
)

// Repos bundles the repositories bound to one DBTX.
type Repos struct {
	Companies *repo.CompanyRepo
	Users     *repo.UserRepo
	Assets    *repo.AssetRepo
	Access    *repo.AccessRepo
	Audit     *repo.AuditRepo
}

func newRepos(db repo.DBTX) Repos {
	return Repos{
		Companies: repo.NewCompanyRepo(db),
		Users:     repo.NewUserRepo(db),
		Assets:    repo.NewAssetRepo(db),
		Access:    repo.NewAccessRepo(db),
		Audit:     repo.NewAuditRepo(db),
	}
}

type Store struct {
	db     *sql.DB
	reader Repos
}

func New(db *sql.DB) *Store {
	return &Store{db: db, reader: newRepos(db)}
}

// Reader returns repositories for reads outside an explicit transaction.
func (s *Store) Reader() Repos { return s.reader }

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return Classify(err)
	}
	return nil
}

// WithTx runs fn inside a transaction. The transaction commits only when fn
// returns nil; any error from fn or from the commit is classified and
// returned, and the transaction is rolled back.
func (s *Store) WithTx(ctx context.Context, fn func(r Repos) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Classify(err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(newRepos(tx)); err != nil {
		return Classify(err)
	}
	if err := tx.Commit(); err != nil {
		return Classify(err)
	}
	return nil
}
