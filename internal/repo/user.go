package repo

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
)

const userColumns = `id, email, name, primary_company_id, status, created_at, updated_at`

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Email, &u.Name, &u.PrimaryCompanyID, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// ==========================
// Create User
// ==========================
func (r *UserRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`INSERT INTO users (id, email, name, primary_company_id, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		u.ID, u.Email, u.Name, u.PrimaryCompanyID, u.Status,
	))
}

// ==========================
// Get By ID
// ==========================
func (r *UserRepo) Get(ctx context.Context, id string) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepo) GetForUpdate(ctx context.Context, id string) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
}

func (r *UserRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "users", id)
}

// ==========================
// Update User
// ==========================
func (r *UserRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET email = $2, name = $3, primary_company_id = $4, status = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		u.ID, u.Email, u.Name, u.PrimaryCompanyID, u.Status,
	))
}

// ==========================
// Delete User
// ==========================
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// ==========================
// List Users
// ==========================
func (r *UserRepo) List(ctx context.Context, f query.UserFilter, p query.Page) ([]models.User, int, error) {
	var w query.Where
	query.Enum(&w, "status", f.Status, models.UserStatus.Valid)
	query.UUID(&w, "primary_company_id", f.CompanyID)

	total, err := count(ctx, r.db, "users", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.Paginate(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users`+w.SQL()+` ORDER BY created_at ASC, id ASC`+limit,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}
