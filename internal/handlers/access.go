package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/service"
)

// AccessHandler serves the /companies/{id}/users sub-resource.
type AccessHandler struct {
	Svc      *service.Service
	MaxLimit int
}

func (h *AccessHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var input models.GrantInput
	if !decode(w, r, &input) {
		return
	}
	g, err := h.Svc.Grant(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusCreated, g)
}

// Revoke answers 204 with no body on success.
func (h *AccessHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Revoke(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID")); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccessHandler) ListCompanyUsers(w http.ResponseWriter, r *http.Request) {
	page, err := query.ParsePage(r.URL.Query(), h.MaxLimit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	list, meta, err := h.Svc.ListCompanyUsers(r.Context(), chi.URLParam(r, "id"), query.AccessFilterFrom(r.URL.Query()), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSONList(w, list, meta)
}
