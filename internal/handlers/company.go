package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/service"
)

type CompanyHandler struct {
	Svc *service.Service
	// MaxLimit caps the limit query parameter; 0 means query.MaxLimit.
	MaxLimit int
}

// ==========================
// Create Company
// ==========================

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var input models.CompanyInput
	if !decode(w, r, &input) {
		return
	}
	c, err := h.Svc.CreateCompany(r.Context(), input)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusCreated, c)
}

// ==========================
// List Companies
// ==========================

func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	page, err := query.ParsePage(r.URL.Query(), h.MaxLimit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	list, meta, err := h.Svc.ListCompanies(r.Context(), query.CompanyFilterFrom(r.URL.Query()), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSONList(w, list, meta)
}

// ==========================
// Get Company
// ==========================

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.GetCompany(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, c)
}

// ==========================
// Update Company
// ==========================

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var patch models.CompanyPatch
	if !decode(w, r, &patch) {
		return
	}
	c, err := h.Svc.UpdateCompany(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, c)
}

// ==========================
// Delete Company
// ==========================

func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteCompany(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, messageBody{Message: "Company deleted successfully"})
}
