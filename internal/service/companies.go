package service

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/ids"
	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/store"
	"github.com/crucial707/hci-inventory/internal/validate"
)

func (s *Service) CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error) {
	c, err := validate.NewCompany(in)
	if err != nil {
		return models.Company{}, err
	}
	c.ID = ids.NewEntity()

	err = s.store.WithTx(ctx, func(r store.Repos) error {
		created, err := r.Companies.Create(ctx, c)
		if err != nil {
			return err
		}
		c = created
		return s.record(ctx, r, models.EntityCompany, c.ID, models.ActionCreate, &c.ID,
			map[string]any{"created": c})
	})
	if err != nil {
		return models.Company{}, err
	}
	return c, nil
}

func (s *Service) GetCompany(ctx context.Context, id string) (models.Company, error) {
	if err := validate.ID("id", id); err != nil {
		return models.Company{}, err
	}
	c, err := s.store.Reader().Companies.Get(ctx, id)
	if err != nil {
		return models.Company{}, read(err, "Company")
	}
	return c, nil
}

// UpdateCompany merges p over the locked row and records the changed fields.
func (s *Service) UpdateCompany(ctx context.Context, id string, p models.CompanyPatch) (models.Company, error) {
	if err := validate.ID("id", id); err != nil {
		return models.Company{}, err
	}
	var out models.Company
	err := s.store.WithTx(ctx, func(r store.Repos) error {
		existing, err := r.Companies.GetForUpdate(ctx, id)
		if err != nil {
			return missing(err, "Company")
		}
		merged, err := validate.MergeCompany(existing, p)
		if err != nil {
			return err
		}
		out, err = r.Companies.Update(ctx, merged)
		if err != nil {
			return err
		}
		changes, err := diff(existing, out)
		if err != nil {
			return err
		}
		return s.record(ctx, r, models.EntityCompany, id, models.ActionUpdate, &out.ID, changes)
	})
	if err != nil {
		return models.Company{}, err
	}
	return out, nil
}

func (s *Service) ListCompanies(ctx context.Context, f query.CompanyFilter, p query.Page) ([]models.Company, query.Meta, error) {
	list, total, err := s.store.Reader().Companies.List(ctx, f, p)
	if err != nil {
		return nil, query.Meta{}, read(err, "Company")
	}
	return list, query.NewMeta(total, p), nil
}
