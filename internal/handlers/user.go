package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/service"
)

type UserHandler struct {
	Svc      *service.Service
	MaxLimit int
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input models.UserInput
	if !decode(w, r, &input) {
		return
	}
	u, err := h.Svc.CreateUser(r.Context(), input)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusCreated, u)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := query.ParsePage(r.URL.Query(), h.MaxLimit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	list, meta, err := h.Svc.ListUsers(r.Context(), query.UserFilterFrom(r.URL.Query()), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSONList(w, list, meta)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.Svc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, u)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if !decode(w, r, &patch) {
		return
	}
	u, err := h.Svc.UpdateUser(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, u)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, messageBody{Message: "User deleted successfully"})
}

// ListUserCompanies lists the companies the user has been granted access to.
func (h *UserHandler) ListUserCompanies(w http.ResponseWriter, r *http.Request) {
	page, err := query.ParsePage(r.URL.Query(), h.MaxLimit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	list, meta, err := h.Svc.ListUserCompanies(r.Context(), chi.URLParam(r, "id"), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSONList(w, list, meta)
}

// ListUserAuditLogs lists audit entries about or by the user.
func (h *UserHandler) ListUserAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, err := query.ParsePage(r.URL.Query(), h.MaxLimit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	list, meta, err := h.Svc.ListUserAudit(r.Context(), chi.URLParam(r, "id"), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSONList(w, list, meta)
}
