package validate

import (
	"strings"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/crucial707/hci-inventory/internal/models"
)

// Grant validates a grant request. Role is required; there is no default.
func Grant(in models.GrantInput) (userID string, role models.Role, err error) {
	userID = strings.TrimSpace(in.UserID)
	role = models.Role(strings.TrimSpace(in.Role))

	var col apperr.Collector
	check(&col, "user_id", userID, "required,uuid")
	check(&col, "role", string(role), "required,"+oneOf(models.Roles))
	return userID, role, col.Err()
}
