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

// checkAssetRefs share-locks the owning company and the assignee. Both
// missing references are reported together.
func checkAssetRefs(ctx context.Context, r store.Repos, companyID string, assignedTo *string) error {
	var col apperr.Collector
	if companyID != "" {
		ok, err := r.Companies.Exists(ctx, companyID)
		if err != nil {
			return err
		}
		if !ok {
			col.Add("company_id", "does not exist")
		}
	}
	if assignedTo != nil {
		ok, err := r.Users.Exists(ctx, *assignedTo)
		if err != nil {
			return err
		}
		if !ok {
			col.Add("assigned_to", "does not exist")
		}
	}
	return col.Err()
}

func (s *Service) CreateAsset(ctx context.Context, in models.AssetInput) (models.Asset, error) {
	a, err := validate.NewAsset(in)
	if err != nil {
		return models.Asset{}, err
	}
	a.ID = ids.NewEntity()

	err = s.store.WithTx(ctx, func(r store.Repos) error {
		if err := checkAssetRefs(ctx, r, a.CompanyID, a.AssignedTo); err != nil {
			return err
		}
		created, err := r.Assets.Create(ctx, a)
		if err != nil {
			return err
		}
		a = created
		return s.record(ctx, r, models.EntityAsset, a.ID, models.ActionCreate, &a.CompanyID,
			map[string]any{"created": a})
	})
	if err != nil {
		return models.Asset{}, err
	}
	return a, nil
}

func (s *Service) GetAsset(ctx context.Context, id string) (models.Asset, error) {
	if err := validate.ID("id", id); err != nil {
		return models.Asset{}, err
	}
	a, err := s.store.Reader().Assets.Get(ctx, id)
	if err != nil {
		return models.Asset{}, read(err, "Asset")
	}
	return a, nil
}

func (s *Service) UpdateAsset(ctx context.Context, id string, p models.AssetPatch) (models.Asset, error) {
	if err := validate.ID("id", id); err != nil {
		return models.Asset{}, err
	}
	var out models.Asset
	err := s.store.WithTx(ctx, func(r store.Repos) error {
		existing, err := r.Assets.GetForUpdate(ctx, id)
		if err != nil {
			return missing(err, "Asset")
		}
		merged, err := validate.MergeAsset(existing, p)
		if err != nil {
			return err
		}
		if p.AssignedTo.Set {
			if err := checkAssetRefs(ctx, r, "", merged.AssignedTo); err != nil {
				return err
			}
		}
		out, err = r.Assets.Update(ctx, merged)
		if err != nil {
			return err
		}
		changes, err := diff(existing, out)
		if err != nil {
			return err
		}
		return s.record(ctx, r, models.EntityAsset, id, models.ActionUpdate, &out.CompanyID, changes)
	})
	if err != nil {
		return models.Asset{}, err
	}
	return out, nil
}

func (s *Service) ListAssets(ctx context.Context, f query.AssetFilter, p query.Page) ([]models.Asset, query.Meta, error) {
	list, total, err := s.store.Reader().Assets.List(ctx, f, p)
	if err != nil {
		return nil, query.Meta{}, read(err, "Asset")
	}
	return list, query.NewMeta(total, p), nil
}
