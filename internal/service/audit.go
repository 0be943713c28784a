package service

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/crucial707/hci-inventory/internal/actor"
	"github.com/crucial707/hci-inventory/internal/ids"
	"github.com/crucial707/hci-inventory/internal/metrics"
	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/store"
	"github.com/crucial707/hci-inventory/internal/validate"
)

// fields never reported in update payloads
var diffIgnored = map[string]bool{"id": true, "created_at": true, "updated_at": true}

// record appends an audit entry inside the caller's transaction. The actor is
// taken from ctx.
func (s *Service) record(ctx context.Context, r store.Repos, et models.EntityType, entityID string,
	action models.AuditAction, companyID *string, changes any) error {
	raw, err := json.Marshal(changes)
	if err != nil {
		return err
	}
	_, err = r.Audit.Append(ctx, models.AuditEntry{
		ID:         ids.NewAudit(),
		EntityType: et,
		EntityID:   entityID,
		Action:     action,
		CompanyID:  companyID,
		Actor:      actor.From(ctx),
		Changes:    raw,
	})
	if err != nil {
		return err
	}
	metrics.IncAuditEntries(string(et), string(action))
	return nil
}

// diff reports the JSON fields whose values differ between before and after.
func diff(before, after any) (map[string]models.Change, error) {
	b, err := toMap(before)
	if err != nil {
		return nil, err
	}
	a, err := toMap(after)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.Change)
	for k, to := range a {
		if diffIgnored[k] {
			continue
		}
		if from := b[k]; !reflect.DeepEqual(from, to) {
			out[k] = models.Change{From: from, To: to}
		}
	}
	return out, nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	err = json.Unmarshal(raw, &m)
	return m, err
}

// ListAudit returns audit entries matching f.
func (s *Service) ListAudit(ctx context.Context, f query.AuditFilter, p query.Page) ([]models.AuditEntry, query.Meta, error) {
	entries, total, err := s.store.Reader().Audit.List(ctx, f, p)
	if err != nil {
		return nil, query.Meta{}, read(err, "Audit log")
	}
	return entries, query.NewMeta(total, p), nil
}

// ListUserAudit returns entries about the user or performed by the user.
func (s *Service) ListUserAudit(ctx context.Context, userID string, p query.Page) ([]models.AuditEntry, query.Meta, error) {
	if err := validate.ID("id", userID); err != nil {
		return nil, query.Meta{}, err
	}
	r := s.store.Reader()
	if _, err := r.Users.Get(ctx, userID); err != nil {
		return nil, query.Meta{}, read(err, "User")
	}
	entries, total, err := r.Audit.ListForUser(ctx, userID, p)
	if err != nil {
		return nil, query.Meta{}, read(err, "Audit log")
	}
	return entries, query.NewMeta(total, p), nil
}
