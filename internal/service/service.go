// Package service implements the entity operations, the access grant
// manager, the deletion guard and the audit logger on top of the store. Every
// mutation runs in one transaction together with its audit entry.
package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/crucial707/hci-inventory/internal/store"
)

type Service struct {
	store *store.Store
	log   *slog.Logger
}

// New returns a Service. A nil logger means slog.Default().
func New(st *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, log: logger}
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// missing turns sql.ErrNoRows into a NotFound for resource.
func missing(err error, resource string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(resource)
	}
	return err
}

// read classifies an error from a read outside a transaction.
func read(err error, resource string) error {
	return store.Classify(missing(err, resource))
}
