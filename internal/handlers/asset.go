package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crucial707/hci-inventory/internal/models"
	"github.com/crucial707/hci-inventory/internal/query"
	"github.com/crucial707/hci-inventory/internal/service"
)

type AssetHandler struct {
	Svc      *service.Service
	MaxLimit int
}

//
// ==========================
// Create Asset
// ==========================
//

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var input models.AssetInput
	if !decode(w, r, &input) {
		return
	}
	a, err := h.Svc.CreateAsset(r.Context(), input)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusCreated, a)
}

//
// ==========================
// List Assets
// ==========================
//

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	page, err := query.ParsePage(r.URL.Query(), h.MaxLimit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	list, meta, err := h.Svc.ListAssets(r.Context(), query.AssetFilterFrom(r.URL.Query()), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSONList(w, list, meta)
}

//
// ==========================
// Get Asset By ID
// ==========================
//

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	a, err := h.Svc.GetAsset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, a)
}

//
// ==========================
// Update Asset
// ==========================
//

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	var patch models.AssetPatch
	if !decode(w, r, &patch) {
		return
	}
	a, err := h.Svc.UpdateAsset(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, a)
}

//
// ==========================
// Delete Asset
// ==========================
//

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteAsset(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, messageBody{Message: "Asset deleted successfully"})
}
