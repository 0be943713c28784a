package models

import "time"

// Role is the level of access a user holds within a company.
type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleAdmin    Role = "ADMIN"
	RoleMember   Role = "MEMBER"
	RoleReadOnly Role = "READ_ONLY"
)

var Roles = []Role{RoleOwner, RoleAdmin, RoleMember, RoleReadOnly}

func (r Role) Valid() bool {
	for _, v := range Roles {
		if r == v {
			return true
		}
	}
	return false
}

// Access is an active grant of Role to a user within a company.
// (CompanyID, UserID) identifies the grant.
type Access struct {
	CompanyID string    `json:"company_id"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	GrantedAt time.Time `json:"granted_at"`
}

// CompanyMember is a grant joined with the user it names.
type CompanyMember struct {
	Access
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
}

// UserCompany is a grant joined with the company it names.
type UserCompany struct {
	Access
	CompanyName   string        `json:"company_name"`
	CompanyStatus CompanyStatus `json:"company_status"`
}

type GrantInput struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
