package models

import "time"

// UserStatus is the lifecycle state of a user.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

var UserStatuses = []UserStatus{UserActive, UserInactive, UserSuspended}

func (s UserStatus) Valid() bool {
	for _, v := range UserStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// User is a person who may hold access grants in several companies.
// PrimaryCompanyID is a lookup-only reference and does not imply a grant.
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	PrimaryCompanyID *string    `json:"primary_company_id"`
	Status           UserStatus `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type UserInput struct {
	Email            string  `json:"email"`
	Name             string  `json:"name"`
	PrimaryCompanyID *string `json:"primary_company_id"`
	Status           string  `json:"status"`
}

type UserPatch struct {
	Email            *string        `json:"email"`
	Name             *string        `json:"name"`
	PrimaryCompanyID NullableString `json:"primary_company_id"`
	Status           *string        `json:"status"`
}

func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Name == nil && !p.PrimaryCompanyID.Set && p.Status == nil
}
