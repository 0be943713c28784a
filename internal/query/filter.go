package query

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// CompanyFilter selects companies.
type CompanyFilter struct {
	Status string
	Name   string
}

type UserFilter struct {
	Status    string
	CompanyID string
}

type AssetFilter struct {
	CompanyID  string
	Type       string
	Status     string
	AssignedTo string
}

type AccessFilter struct {
	Role string
}

// AuditFilter selects audit entries. Actor matches the recorded actor exactly.
type AuditFilter struct {
	CompanyID  string
	EntityType string
	EntityID   string
	Action     string
	Actor      string
}

func get(q url.Values, key string) string {
	return strings.TrimSpace(q.Get(key))
}

func CompanyFilterFrom(q url.Values) CompanyFilter {
	return CompanyFilter{Status: get(q, "status"), Name: get(q, "name")}
}

func UserFilterFrom(q url.Values) UserFilter {
	return UserFilter{Status: get(q, "status"), CompanyID: get(q, "company_id")}
}

func AssetFilterFrom(q url.Values) AssetFilter {
	return AssetFilter{
		CompanyID:  get(q, "company_id"),
		Type:       get(q, "type"),
		Status:     get(q, "status"),
		AssignedTo: get(q, "assigned_to"),
	}
}

func AccessFilterFrom(q url.Values) AccessFilter {
	return AccessFilter{Role: get(q, "role")}
}

func AuditFilterFrom(q url.Values) AuditFilter {
	return AuditFilter{
		CompanyID:  get(q, "company_id"),
		EntityType: get(q, "entity_type"),
		EntityID:   get(q, "entity_id"),
		Action:     get(q, "action"),
		Actor:      get(q, "actor"),
	}
}

// Enum adds column = value when value is set. A value outside valid matches
// nothing instead of failing the query.
func Enum[T ~string](w *Where, column, value string, valid func(T) bool) {
	if value == "" {
		return
	}
	if !valid(T(value)) {
		w.Never()
		return
	}
	w.Eq(column, value)
}

// UUID adds column = value for a UUID column. A malformed value matches
// nothing; PostgreSQL would otherwise reject the cast. The canonical form is
// bound, since uuid.Parse also accepts urn and braced forms the server does not.
func UUID(w *Where, column, value string) {
	if value == "" {
		return
	}
	id, err := uuid.Parse(value)
	if err != nil {
		w.Never()
		return
	}
	w.Eq(column, id.String())
}
