package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Verderen/MoneyHiver/internal/api/request"
	"github.com/Verderen/MoneyHiver/internal/api/response"
	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/service"
	"github.com/Verderen/MoneyHiver/internal/validation"
)

// AssetHandler handles the tracked-asset endpoints on the profile page.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// Assets handles GET /api/assets.
func (h *AssetHandler) Assets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetService.GetAssets(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssets.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"assets":  assets,
	})
}

// CreateCryptoAsset handles POST /api/assets/crypto.
func (h *AssetHandler) CreateCryptoAsset(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCryptoAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreateCryptoAsset(req); err != nil {
		response.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	asset, err := h.assetService.CreateCryptoAsset(r.Context(), req.Asset, req.Amount, req.Price, req.Currency)
	if err != nil {
		err = internalError(err, apperrors.ErrFailedToCreateAsset)
		response.RespondJSON(w, statusForError(err), map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"asset":   asset,
	})
}

// DeleteAsset handles DELETE /api/assets/{type}/{id}.
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetType := chi.URLParam(r, "type")
	id := chi.URLParam(r, "id")

	if err := h.assetService.DeleteAsset(r.Context(), assetType, id); err != nil {
		err = internalError(err, apperrors.ErrFailedToDeleteAsset)
		response.RespondJSON(w, statusForError(err), map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
