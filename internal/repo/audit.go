package repo

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
)

const auditColumns = `id, entity_type, entity_id, action, company_id, actor, changes, created_at`

// AuditRepo persists audit log entries. There is no update or delete path.
type AuditRepo struct {
	db DBTX
}

// NewAuditRepo returns a new AuditRepo.
func NewAuditRepo(db DBTX) *AuditRepo {
	return &AuditRepo{db: db}
}

func scanAudit(s scanner) (models.AuditEntry, error) {
	var e models.AuditEntry
	var changes []byte
	err := s.Scan(&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.CompanyID, &e.Actor, &changes, &e.CreatedAt)
	e.Changes = changes
	return e, err
}

// Append records e and returns it with the stored timestamp.
func (r *AuditRepo) Append(ctx context.Context, e models.AuditEntry) (models.AuditEntry, error) {
	return scanAudit(r.db.QueryRowContext(ctx,
		`INSERT INTO audit_log (id, entity_type, entity_id, action, company_id, actor, changes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+auditColumns,
		e.ID, e.EntityType, e.EntityID, e.Action, e.CompanyID, e.Actor, string(e.Changes),
	))
}

// CountActivity counts entries for the entity other than its creation.
func (r *AuditRepo) CountActivity(ctx context.Context, entityType models.EntityType, entityID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_log WHERE entity_type = $1 AND entity_id = $2 AND action <> 'create'`,
		entityType, entityID,
	).Scan(&n)
	return n, err
}

// List returns entries matching f in append order.
func (r *AuditRepo) List(ctx context.Context, f query.AuditFilter, p query.Page) ([]models.AuditEntry, int, error) {
	var w query.Where
	query.UUID(&w, "company_id", f.CompanyID)
	query.Enum(&w, "entity_type", f.EntityType, models.EntityType.Valid)
	w.EqIf("entity_id", f.EntityID)
	query.Enum(&w, "action", f.Action, models.AuditAction.Valid)
	w.EqIf("actor", f.Actor)
	return r.list(ctx, &w, p)
}

// ListForUser returns entries about the user or performed by the user.
func (r *AuditRepo) ListForUser(ctx context.Context, userID string, p query.Page) ([]models.AuditEntry, int, error) {
	var w query.Where
	w.Or(userID, "actor", "entity_id")
	return r.list(ctx, &w, p)
}

func (r *AuditRepo) list(ctx context.Context, w *query.Where, p query.Page) ([]models.AuditEntry, int, error) {
	total, err := count(ctx, r.db, "audit_log", w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.Paginate(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+auditColumns+` FROM audit_log`+w.SQL()+` ORDER BY created_at ASC, id ASC`+limit,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := []models.AuditEntry{}
	for rows.Next() {
		e, err := scanAudit(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
