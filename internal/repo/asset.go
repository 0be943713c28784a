package repo

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
)

const assetColumns = `id, company_id, name, type, description, identifier, status, metadata, assigned_to, created_at, updated_at`

// ========================
// REPOSITORY STRUCT
// ========================

type AssetRepo struct {
	db DBTX
}

func NewAssetRepo(db DBTX) *AssetRepo {
	return &AssetRepo{db: db}
}

func scanAsset(s scanner) (models.Asset, error) {
	var a models.Asset
	var metadata []byte
	err := s.Scan(&a.ID, &a.CompanyID, &a.Name, &a.Type, &a.Description, &a.Identifier,
		&a.Status, &metadata, &a.AssignedTo, &a.CreatedAt, &a.UpdatedAt)
	a.Metadata = metadata
	return a, err
}

// ========================
// CREATE ASSET
// ========================

// Create inserts a. Metadata is bound as text so PostgreSQL parses it as JSONB.
func (r *AssetRepo) Create(ctx context.Context, a models.Asset) (models.Asset, error) {
	return scanAsset(r.db.QueryRowContext(ctx,
		`INSERT INTO assets (id, company_id, name, type, description, identifier, status, metadata, assigned_to)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+assetColumns,
		a.ID, a.CompanyID, a.Name, a.Type, a.Description, a.Identifier, a.Status, string(a.Metadata), a.AssignedTo,
	))
}

// ========================
// GET ASSET BY ID
// ========================

func (r *AssetRepo) Get(ctx context.Context, id string) (models.Asset, error) {
	return scanAsset(r.db.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE id = $1`, id))
}

func (r *AssetRepo) GetForUpdate(ctx context.Context, id string) (models.Asset, error) {
	return scanAsset(r.db.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE id = $1 FOR UPDATE`, id))
}

// ========================
// UPDATE ASSET BY ID
// ========================

// Update persists every mutable column. company_id is never rewritten.
func (r *AssetRepo) Update(ctx context.Context, a models.Asset) (models.Asset, error) {
	return scanAsset(r.db.QueryRowContext(ctx,
		`UPDATE assets
		 SET name = $2, type = $3, description = $4, identifier = $5, status = $6,
		     metadata = $7, assigned_to = $8, updated_at = now()
		 WHERE id = $1
		 RETURNING `+assetColumns,
		a.ID, a.Name, a.Type, a.Description, a.Identifier, a.Status, string(a.Metadata), a.AssignedTo,
	))
}

// ========================
// DELETE ASSET BY ID
// ========================

func (r *AssetRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	return err
}

// CountForCompany returns how many assets the company owns.
func (r *AssetRepo) CountForCompany(ctx context.Context, companyID string) (int, error) {
	var w query.Where
	w.Eq("company_id", companyID)
	return count(ctx, r.db, "assets", &w)
}

// ========================
// LIST ASSETS WITH PAGINATION
// ========================

func (r *AssetRepo) List(ctx context.Context, f query.AssetFilter, p query.Page) ([]models.Asset, int, error) {
	var w query.Where
	query.UUID(&w, "company_id", f.CompanyID)
	query.Enum(&w, "type", f.Type, models.AssetType.Valid)
	query.Enum(&w, "status", f.Status, models.AssetStatus.Valid)
	query.UUID(&w, "assigned_to", f.AssignedTo)

	total, err := count(ctx, r.db, "assets", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.Paginate(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+assetColumns+` FROM assets`+w.SQL()+` ORDER BY created_at ASC, id ASC`+limit,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}
