package repo

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
)

const accessColumns = `company_id, user_id, role, granted_at`

// AccessRepo persists company access grants. A grant is identified by
// (company_id, user_id); revoking hard-deletes the row.
type AccessRepo struct {
	db DBTX
}

func NewAccessRepo(db DBTX) *AccessRepo {
	return &AccessRepo{db: db}
}

func scanAccess(s scanner) (models.Access, error) {
	var a models.Access
	err := s.Scan(&a.CompanyID, &a.UserID, &a.Role, &a.GrantedAt)
	return a, err
}

// Grant inserts a new grant. An existing grant for the pair is a unique
// violation on the primary key.
func (r *AccessRepo) Grant(ctx context.Context, companyID, userID string, role models.Role) (models.Access, error) {
	return scanAccess(r.db.QueryRowContext(ctx,
		`INSERT INTO company_access (company_id, user_id, role)
		 VALUES ($1, $2, $3)
		 RETURNING `+accessColumns,
		companyID, userID, role,
	))
}

// Revoke deletes the grant and returns it. sql.ErrNoRows means there was none.
func (r *AccessRepo) Revoke(ctx context.Context, companyID, userID string) (models.Access, error) {
	return scanAccess(r.db.QueryRowContext(ctx,
		`DELETE FROM company_access WHERE company_id = $1 AND user_id = $2 RETURNING `+accessColumns,
		companyID, userID,
	))
}

// RevokeAllForCompany deletes every grant of the company and returns them.
func (r *AccessRepo) RevokeAllForCompany(ctx context.Context, companyID string) ([]models.Access, error) {
	return r.revokeWhere(ctx, "company_id", companyID)
}

// RevokeAllForUser deletes every grant held by the user and returns them.
func (r *AccessRepo) RevokeAllForUser(ctx context.Context, userID string) ([]models.Access, error) {
	return r.revokeWhere(ctx, "user_id", userID)
}

func (r *AccessRepo) revokeWhere(ctx context.Context, column, id string) ([]models.Access, error) {
	rows, err := r.db.QueryContext(ctx,
		`DELETE FROM company_access WHERE `+column+` = $1 RETURNING `+accessColumns, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Access
	for rows.Next() {
		a, err := scanAccess(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListForCompany returns the company's grants joined with user details.
func (r *AccessRepo) ListForCompany(ctx context.Context, companyID string, f query.AccessFilter, p query.Page) ([]models.CompanyMember, int, error) {
	var w query.Where
	w.Eq("ca.company_id", companyID)
	query.Enum(&w, "ca.role", f.Role, models.Role.Valid)

	total, err := count(ctx, r.db, "company_access ca", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.Paginate(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT ca.company_id, ca.user_id, ca.role, ca.granted_at, u.email, u.name
		 FROM company_access ca
		 JOIN users u ON u.id = ca.user_id`+w.SQL()+`
		 ORDER BY ca.granted_at ASC, ca.user_id ASC`+limit,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.CompanyMember{}
	for rows.Next() {
		var m models.CompanyMember
		if err := rows.Scan(&m.CompanyID, &m.UserID, &m.Role, &m.GrantedAt, &m.UserEmail, &m.UserName); err != nil {
			return nil, 0, err
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// ListForUser returns the user's grants joined with company details.
func (r *AccessRepo) ListForUser(ctx context.Context, userID string, p query.Page) ([]models.UserCompany, int, error) {
	var w query.Where
	w.Eq("ca.user_id", userID)

	total, err := count(ctx, r.db, "company_access ca", &w)
	if err != nil {
		return nil, 0, err
	}

	limit, args := w.Paginate(p)
	rows, err := r.db.QueryContext(ctx,
		`SELECT ca.company_id, ca.user_id, ca.role, ca.granted_at, c.name, c.status
		 FROM company_access ca
		 JOIN companies c ON c.id = ca.company_id`+w.SQL()+`
		 ORDER BY ca.granted_at ASC, ca.company_id ASC`+limit,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.UserCompany{}
	for rows.Next() {
		var uc models.UserCompany
		if err := rows.Scan(&uc.CompanyID, &uc.UserID, &uc.Role, &uc.GrantedAt, &uc.CompanyName, &uc.CompanyStatus); err != nil {
			return nil, 0, err
		}
		list = append(list, uc)
	}
	return list, total, rows.Err()
}
