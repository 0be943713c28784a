package models

import "time"

// CompanyStatus is the lifecycle state of a company.
type CompanyStatus string

const (
	CompanyActive    CompanyStatus = "active"
	CompanyInactive  CompanyStatus = "inactive"
	CompanySuspended CompanyStatus = "suspended"
)

// CompanyStatuses lists every recognised company status.
var CompanyStatuses = []CompanyStatus{CompanyActive, CompanyInactive, CompanySuspended}

func (s CompanyStatus) Valid() bool {
	for _, v := range CompanyStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Company is a tenant. Name is unique across all companies (exact match).
type Company struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Status      CompanyStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// CompanyInput is the create payload.
type CompanyInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// CompanyPatch carries the fields supplied to a partial update.
type CompanyPatch struct {
	Name        *string        `json:"name"`
	Description NullableString `json:"description"`
	Status      *string        `json:"status"`
}

// Empty reports whether no field was supplied.
func (p CompanyPatch) Empty() bool {
	return p.Name == nil && !p.Description.Set && p.Status == nil
}
