package validate

import (
	"strings"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/crucial707/hci-inventory/internal/models"
)

func NewUser(in models.UserInput) (models.User, error) {
	u := models.User{
		Email:            strings.TrimSpace(in.Email),
		Name:             strings.TrimSpace(in.Name),
		PrimaryCompanyID: trimOptional(in.PrimaryCompanyID),
		Status:           models.UserStatus(strings.TrimSpace(in.Status)),
	}
	if u.Status == "" {
		u.Status = models.UserActive
	}
	return u, userRules(u)
}

func MergeUser(existing models.User, p models.UserPatch) (models.User, error) {
	if p.Empty() {
		return existing, noFields()
	}
	u := existing
	if p.Email != nil {
		u.Email = strings.TrimSpace(*p.Email)
	}
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.PrimaryCompanyID.Set {
		u.PrimaryCompanyID = trimOptional(p.PrimaryCompanyID.Value)
	}
	if p.Status != nil {
		u.Status = models.UserStatus(strings.TrimSpace(*p.Status))
	}
	return u, userRules(u)
}

func userRules(u models.User) error {
	var col apperr.Collector
	check(&col, "email", u.Email, "required,email,"+maxLen(maxNameLen))
	check(&col, "name", u.Name, "required,"+maxLen(maxNameLen))
	checkOptionalID(&col, "primary_company_id", u.PrimaryCompanyID)
	check(&col, "status", string(u.Status), "required,"+oneOf(models.UserStatuses))
	return col.Err()
}
