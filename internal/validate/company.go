package validate

import (
	"strings"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/crucial707/hci-inventory/internal/models"
)

// NewCompany normalizes a create payload. Status defaults to active.
func NewCompany(in models.CompanyInput) (models.Company, error) {
	c := models.Company{
		Name:        strings.TrimSpace(in.Name),
		Description: trimOptional(in.Description),
		Status:      models.CompanyStatus(strings.TrimSpace(in.Status)),
	}
	if c.Status == "" {
		c.Status = models.CompanyActive
	}
	return c, companyRules(c)
}

// MergeCompany applies p over existing and re-validates the result.
func MergeCompany(existing models.Company, p models.CompanyPatch) (models.Company, error) {
	if p.Empty() {
		return existing, noFields()
	}
	c := existing
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description.Set {
		c.Description = trimOptional(p.Description.Value)
	}
	if p.Status != nil {
		c.Status = models.CompanyStatus(strings.TrimSpace(*p.Status))
	}
	return c, companyRules(c)
}

func companyRules(c models.Company) error {
	var col apperr.Collector
	check(&col, "name", c.Name, "required,"+maxLen(maxNameLen))
	if c.Description != nil {
		check(&col, "description", *c.Description, maxLen(maxDescriptionLen))
	}
	check(&col, "status", string(c.Status), "required,"+oneOf(models.CompanyStatuses))
	return col.Err()
}
