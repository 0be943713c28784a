package service

import (
	"context"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/crucial707/hci-inventory/internal/metrics"
	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/store"
	"github.com/crucial707/hci-inventory/internal/validate"
)

// DeleteCompany removes a company that owns no assets. Its grants are revoked
// one by one, each with its own audit entry, before the row is deleted. Users
// whose primary company it was are cleared by the foreign key.
func (s *Service) DeleteCompany(ctx context.Context, id string) error {
	if err := validate.ID("id", id); err != nil {
		return err
	}
	return s.store.WithTx(ctx, func(r store.Repos) error {
		existing, err := r.Companies.GetForUpdate(ctx, id)
		if err != nil {
			return missing(err, "Company")
		}
		n, err := r.Assets.CountForCompany(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			s.blocked(models.EntityCompany, id, "company owns assets")
			return apperr.Conflictf("company owns %d asset(s) and cannot be deleted", n)
		}
		grants, err := r.Access.RevokeAllForCompany(ctx, id)
		if err != nil {
			return err
		}
		for _, g := range grants {
			if err := s.revoked(ctx, r, g); err != nil {
				return err
			}
		}
		if err := r.Companies.Delete(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, r, models.EntityCompany, id, models.ActionDelete, &existing.ID,
			map[string]any{"deleted": existing})
	})
}

// DeleteUser revokes every grant the user holds, deletes the user and clears
// asset assignments through the foreign key.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := validate.ID("id", id); err != nil {
		return err
	}
	return s.store.WithTx(ctx, func(r store.Repos) error {
		existing, err := r.Users.GetForUpdate(ctx, id)
		if err != nil {
			return missing(err, "User")
		}
		grants, err := r.Access.RevokeAllForUser(ctx, id)
		if err != nil {
			return err
		}
		for _, g := range grants {
			if err := s.revoked(ctx, r, g); err != nil {
				return err
			}
		}
		if err := r.Users.Delete(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, r, models.EntityUser, id, models.ActionDelete, existing.PrimaryCompanyID,
			map[string]any{"deleted": existing})
	})
}

// DeleteAsset deletes an asset that has no activity beyond its creation. The
// create entry written with the asset does not count as history, so a fresh
// asset can always be deleted; any later update blocks it. A blocked asset is
// left untouched.
func (s *Service) DeleteAsset(ctx context.Context, id string) error {
	if err := validate.ID("id", id); err != nil {
		return err
	}
	return s.store.WithTx(ctx, func(r store.Repos) error {
		existing, err := r.Assets.GetForUpdate(ctx, id)
		if err != nil {
			return missing(err, "Asset")
		}
		n, err := r.Audit.CountActivity(ctx, models.EntityAsset, id)
		if err != nil {
			return err
		}
		if n > 0 {
			s.blocked(models.EntityAsset, id, "asset has activity history")
			return apperr.Conflictf("asset has activity history and cannot be deleted")
		}
		if err := r.Assets.Delete(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, r, models.EntityAsset, id, models.ActionDelete, &existing.CompanyID,
			map[string]any{"deleted": existing})
	})
}

func (s *Service) blocked(et models.EntityType, id, reason string) {
	metrics.IncDeletionsBlocked(string(et))
	s.log.Warn("deletion blocked", "entity_type", et, "entity_id", id, "reason", reason)
}
