package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/crucial707/hci-inventory/internal/apperr"
)

// PostgreSQL SQLSTATE codes the service reacts to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

var uniqueMessages = map[string]string{
	"companies_name_key":  "a company with this name already exists",
	"users_email_key":     "a user with this email already exists",
	"company_access_pkey": "user already has access to this company",
}

// foreign keys by the field they constrain
var foreignKeyFields = map[string]string{
	"assets_company_id_fkey":         "company_id",
	"assets_assigned_to_fkey":        "assigned_to",
	"users_primary_company_id_fkey":  "primary_company_id",
	"company_access_company_id_fkey": "company_id",
	"company_access_user_id_fkey":    "user_id",
}

// Classify maps err onto the apperr taxonomy. Errors that already carry a
// Kind and sql.ErrNoRows pass through unchanged; anything the driver reports
// that is not a constraint violation is Unavailable.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeUniqueViolation:
			msg, ok := uniqueMessages[pqErr.Constraint]
			if !ok {
				msg = "resource already exists"
			}
			return &apperr.Error{Kind: apperr.KindConflict, Message: msg, Err: err}
		case codeForeignKeyViolation:
			// Deleting a row that is still referenced reports the same
			// constraint as inserting a dangling reference.
			if strings.HasPrefix(pqErr.Message, "update or delete") {
				return &apperr.Error{Kind: apperr.KindConflict, Message: "resource is still referenced", Err: err}
			}
			field, ok := foreignKeyFields[pqErr.Constraint]
			if !ok {
				field = "_root"
			}
			e := apperr.Invalid(field, "does not exist")
			e.Err = err
			return e
		case codeCheckViolation:
			e := apperr.Invalid("_root", "violates a value constraint")
			e.Err = err
			return e
		}
	}
	return apperr.Unavailable(err)
}
