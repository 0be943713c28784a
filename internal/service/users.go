package service

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/crucial707/hci-inventory/internal/ids"
	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/store"
	"github.com/crucial707/hci-inventory/internal/validate"
)

// checkPrimaryCompany share-locks the referenced company, if any.
func checkPrimaryCompany(ctx context.Context, r store.Repos, id *string) error {
	if id == nil {
		return nil
	}
	ok, err := r.Companies.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("primary_company_id", "does not exist")
	}
	return nil
}

func (s *Service) CreateUser(ctx context.Context, in models.UserInput) (models.User, error) {
	u, err := validate.NewUser(in)
	if err != nil {
		return models.User{}, err
	}
	u.ID = ids.NewEntity()

	err = s.store.WithTx(ctx, func(r store.Repos) error {
		if err := checkPrimaryCompany(ctx, r, u.PrimaryCompanyID); err != nil {
			return err
		}
		created, err := r.Users.Create(ctx, u)
		if err != nil {
			return err
		}
		u = created
		return s.record(ctx, r, models.EntityUser, u.ID, models.ActionCreate, u.PrimaryCompanyID,
			map[string]any{"created": u})
	})
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (models.User, error) {
	if err := validate.ID("id", id); err != nil {
		return models.User{}, err
	}
	u, err := s.store.Reader().Users.Get(ctx, id)
	if err != nil {
		return models.User{}, read(err, "User")
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, p models.UserPatch) (models.User, error) {
	if err := validate.ID("id", id); err != nil {
		return models.User{}, err
	}
	var out models.User
	err := s.store.WithTx(ctx, func(r store.Repos) error {
		existing, err := r.Users.GetForUpdate(ctx, id)
		if err != nil {
			return missing(err, "User")
		}
		merged, err := validate.MergeUser(existing, p)
		if err != nil {
			return err
		}
		if p.PrimaryCompanyID.Set {
			if err := checkPrimaryCompany(ctx, r, merged.PrimaryCompanyID); err != nil {
				return err
			}
		}
		out, err = r.Users.Update(ctx, merged)
		if err != nil {
			return err
		}
		changes, err := diff(existing, out)
		if err != nil {
			return err
		}
		return s.record(ctx, r, models.EntityUser, id, models.ActionUpdate, out.PrimaryCompanyID, changes)
	})
	if err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (s *Service) ListUsers(ctx context.Context, f query.UserFilter, p query.Page) ([]models.User, query.Meta, error) {
	list, total, err := s.store.Reader().Users.List(ctx, f, p)
	if err != nil {
		return nil, query.Meta{}, read(err, "User")
	}
	return list, query.NewMeta(total, p), nil
}
