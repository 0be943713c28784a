package repo

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
)

const companyColumns = `id, name, description, status, created_at, updated_at`

// ==========================
// CompanyRepo
// ==========================
type CompanyRepo struct {
	db DBTX
}

func NewCompanyRepo(db DBTX) *CompanyRepo {
	return &CompanyRepo{db: db}
}

func scanCompany(s scanner) (models.Company, error) {
	var c models.Company
	err := s.Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ==========================
// Create
// ==========================
func (r *CompanyRepo) Create(ctx context.Context, c models.Company) (models.Company, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO companies (id, name, description, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+companyColumns,
		c.ID, c.Name, c.Description, c.Status,
	)
	return scanCompany(row)
}

// ==========================
// Get
// ==========================
func (r *CompanyRepo) Get(ctx context.Context, id string) (models.Company, error) {
	return scanCompany(r.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
}

// GetForUpdate reads the row and locks it until the transaction ends.
func (r *CompanyRepo) GetForUpdate(ctx context.Context, id string) (models.Company, error) {
	return scanCompany(r.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1 FOR UPDATE`, id))
}

// Exists share-locks the company so it cannot be deleted while a referencing
// row is written in the same transaction.
func (r *CompanyRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "companies", id)
}

// ==========================
// Update
// ==========================
func (r *CompanyRepo) Update(ctx context.Context, c models.Company) (models.Company, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE companies
		 SET name = $2, description = $3, status = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+companyColumns,
		c.ID, c.Name, c.Description, c.Status,
	)
	return scanCompany(row)
}

// ==========================
// Delete
// ==========================
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}

// ==========================
// List
// ==========================

// List returns one page of companies matching f and the total match count.
func (r *CompanyRepo) List(ctx context.Context, f query.CompanyFilter, p query.Page) ([]models.Company, int, error) {
	var w query.Where
	query.Enum(&w, "status", f.Status, models.CompanyStatus.Valid)
	w.ILike("name", f.Name)

	total, err := count(ctx, r.db, "companies", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.Paginate(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+companyColumns+` FROM companies`+w.SQL()+` ORDER BY created_at ASC, id ASC`+limit,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}
