package handlers

import (
	"net/http"

	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/service"
)

// AuditHandler serves the read-only audit trail.
type AuditHandler struct {
	Svc      *service.Service
	MaxLimit int
}

// List handles GET /audit-logs. Query: limit, offset, company_id, entity_type, entity_id, action, actor.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := query.ParsePage(r.URL.Query(), h.MaxLimit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	entries, meta, err := h.Svc.ListAudit(r.Context(), query.AuditFilterFrom(r.URL.Query()), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSONList(w, entries, meta)
}
