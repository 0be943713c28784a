package service

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/store"
	"github.com/crucial707/hci-inventory/internal/validate"
)

// Grant gives a user a role within a company. The body is validated before
// either reference is looked up. An existing grant for the pair is a Conflict.
func (s *Service) Grant(ctx context.Context, companyID string, in models.GrantInput) (models.Access, error) {
	var col apperr.Collector
	col.Merge(validate.ID("company_id", companyID))
	userID, role, err := validate.Grant(in)
	col.Merge(err)
	if err := col.Err(); err != nil {
		return models.Access{}, err
	}

	var grant models.Access
	err = s.store.WithTx(ctx, func(r store.Repos) error {
		ok, err := r.Companies.Exists(ctx, companyID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("Company")
		}
		ok, err = r.Users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Invalid("user_id", "does not exist")
		}
		grant, err = r.Access.Grant(ctx, companyID, userID, role)
		if err != nil {
			return err
		}
		return s.record(ctx, r, models.EntityAccess, userID, models.ActionGrant, &grant.CompanyID,
			map[string]any{"granted": grant})
	})
	if err != nil {
		return models.Access{}, err
	}
	return grant, nil
}

// Revoke removes the user's grant. A missing company, user or grant is NotFound,
// so revoking twice fails the second time.
func (s *Service) Revoke(ctx context.Context, companyID, userID string) error {
	var col apperr.Collector
	col.Merge(validate.ID("company_id", companyID))
	col.Merge(validate.ID("user_id", userID))
	if err := col.Err(); err != nil {
		return err
	}

	return s.store.WithTx(ctx, func(r store.Repos) error {
		ok, err := r.Companies.Exists(ctx, companyID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("Company")
		}
		ok, err = r.Users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("User")
		}
		revoked, err := r.Access.Revoke(ctx, companyID, userID)
		if err != nil {
			return missing(err, "Access grant")
		}
		return s.revoked(ctx, r, revoked)
	})
}

func (s *Service) revoked(ctx context.Context, r store.Repos, a models.Access) error {
	return s.record(ctx, r, models.EntityAccess, a.UserID, models.ActionRevoke, &a.CompanyID,
		map[string]any{"revoked": a})
}

// ListCompanyUsers returns the grants of a company with user details.
func (s *Service) ListCompanyUsers(ctx context.Context, companyID string, f query.AccessFilter, p query.Page) ([]models.CompanyMember, query.Meta, error) {
	if err := validate.ID("company_id", companyID); err != nil {
		return nil, query.Meta{}, err
	}
	r := s.store.Reader()
	if _, err := r.Companies.Get(ctx, companyID); err != nil {
		return nil, query.Meta{}, read(err, "Company")
	}
	list, total, err := r.Access.ListForCompany(ctx, companyID, f, p)
	if err != nil {
		return nil, query.Meta{}, read(err, "Company")
	}
	return list, query.NewMeta(total, p), nil
}

// ListUserCompanies returns the grants held by a user with company details.
func (s *Service) ListUserCompanies(ctx context.Context, userID string, p query.Page) ([]models.UserCompany, query.Meta, error) {
	if err := validate.ID("id", userID); err != nil {
		return nil, query.Meta{}, err
	}
	r := s.store.Reader()
	if _, err := r.Users.Get(ctx, userID); err != nil {
		return nil, query.Meta{}, read(err, "User")
	}
	list, total, err := r.Access.ListForUser(ctx, userID, p)
	if err != nil {
		return nil, query.Meta{}, read(err, "User")
	}
	return list, query.NewMeta(total, p), nil
}
