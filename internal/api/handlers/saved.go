package handlers

import (
	"net/http"

	"github.com/Verderen/MoneyHiver/internal/api/request"
	"github.com/Verderen/MoneyHiver/internal/api/response"
	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/calc"
	"github.com/Verderen/MoneyHiver/internal/service"
	"github.com/Verderen/MoneyHiver/internal/validation"
)

// SavedCalculationHandler handles the saved-calculation store endpoints.
// All responses carry a success flag the dashboard keys on: lists as
// {success, calculations}, details as {success, calculation}, mutations as
// {success} or {success: false, error}.
type SavedCalculationHandler struct {
	calculationService *service.CalculationService
}

// NewSavedCalculationHandler creates a new SavedCalculationHandler
func NewSavedCalculationHandler(calculationService *service.CalculationService) *SavedCalculationHandler {
	return &SavedCalculationHandler{
		calculationService: calculationService,
	}
}

func respondStoreError(w http.ResponseWriter, err error) {
	response.RespondJSON(w, statusForError(err), map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	})
}

func respondCalculations(w http.ResponseWriter, calculations interface{}, err error) {
	if err != nil {
		respondStoreError(w, internalError(err, apperrors.ErrFailedToRetrieveCalculations))
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"calculations": calculations,
	})
}

func respondCalculation(w http.ResponseWriter, calculation interface{}, err, fallback error) {
	if err != nil {
		respondStoreError(w, internalError(err, fallback))
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"calculation": calculation,
	})
}

// ListProfitLoss handles GET /get_saved_pl.
func (h *SavedCalculationHandler) ListProfitLoss(w http.ResponseWriter, r *http.Request) {
	calculations, err := h.calculationService.ListProfitLoss(r.Context())
	respondCalculations(w, calculations, err)
}

// ListDividend handles GET /get_saved_div.
func (h *SavedCalculationHandler) ListDividend(w http.ResponseWriter, r *http.Request) {
	calculations, err := h.calculationService.ListDividend(r.Context())
	respondCalculations(w, calculations, err)
}

// ListRiskReward handles GET /get_saved_rrr.
func (h *SavedCalculationHandler) ListRiskReward(w http.ResponseWriter, r *http.Request) {
	calculations, err := h.calculationService.ListRiskReward(r.Context())
	respondCalculations(w, calculations, err)
}

// ProfitLossDetails handles GET /get_pl_details?id=.
func (h *SavedCalculationHandler) ProfitLossDetails(w http.ResponseWriter, r *http.Request) {
	calculation, err := h.calculationService.GetProfitLoss(r.Context(), r.URL.Query().Get("id"))
	respondCalculation(w, calculation, err, apperrors.ErrFailedToRetrieveCalculation)
}

// DividendDetails handles GET /get_div_details?id=.
func (h *SavedCalculationHandler) DividendDetails(w http.ResponseWriter, r *http.Request) {
	calculation, err := h.calculationService.GetDividend(r.Context(), r.URL.Query().Get("id"))
	respondCalculation(w, calculation, err, apperrors.ErrFailedToRetrieveCalculation)
}

// RiskRewardDetails handles GET /get_rrr_details?id=.
func (h *SavedCalculationHandler) RiskRewardDetails(w http.ResponseWriter, r *http.Request) {
	calculation, err := h.calculationService.GetRiskReward(r.Context(), r.URL.Query().Get("id"))
	respondCalculation(w, calculation, err, apperrors.ErrFailedToRetrieveCalculation)
}

// SaveProfitLoss handles POST /save_pl: computes the result from the
// submitted inputs and persists inputs plus results as one row.
func (h *SavedCalculationHandler) SaveProfitLoss(w http.ResponseWriter, r *http.Request) {
	var req request.SaveProfitLossRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondStoreError(w, err)
		return
	}

	saved, err := h.calculationService.SaveProfitLoss(r.Context(), req.Title, calc.ProfitLossInput{
		AssetType:  req.AssetType,
		Pair:       req.Pair,
		OpenPrice:  req.OpenPrice,
		ClosePrice: req.ClosePrice,
		Amount:     req.Amount,
		Volume:     req.Volume,
		Leverage:   req.Leverage,
	})
	respondCalculation(w, saved, err, apperrors.ErrFailedToSaveCalculation)
}

// SaveDividend handles POST /save_div.
func (h *SavedCalculationHandler) SaveDividend(w http.ResponseWriter, r *http.Request) {
	var req request.SaveDividendRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondStoreError(w, err)
		return
	}

	saved, err := h.calculationService.SaveDividend(r.Context(), req.Title, calc.DividendInput{
		Asset:            req.Asset,
		PriceOfShare:     req.PriceOfShare,
		NumberOfShares:   req.NumberOfShares,
		DividendPerShare: req.DividendPerShare,
		PayPeriod:        req.PayPeriod,
		OwnPeriod:        req.OwnPeriod,
		TaxRate:          req.TaxRate,
		DividendGrowth:   req.DividendGrowth,
	})
	respondCalculation(w, saved, err, apperrors.ErrFailedToSaveCalculation)
}

// SaveRiskReward handles POST /save_rrr.
func (h *SavedCalculationHandler) SaveRiskReward(w http.ResponseWriter, r *http.Request) {
	var req request.SaveRiskRewardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondStoreError(w, err)
		return
	}

	saved, err := h.calculationService.SaveRiskReward(r.Context(), req.Title, calc.RiskRewardInput{
		OpenPrice:    req.OpenPrice,
		TakeProfit:   req.TakeProfit,
		StopLoss:     req.StopLoss,
		Balance:      req.Balance,
		RiskPerTrade: req.RiskPerTrade,
	})
	respondCalculation(w, saved, err, apperrors.ErrFailedToSaveCalculation)
}

func (h *SavedCalculationHandler) delete(w http.ResponseWriter, r *http.Request, remove func(id string) error) {
	var req request.DeleteCalculationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateDeleteCalculation(req); err != nil {
		respondStoreError(w, err)
		return
	}

	if err := remove(req.CalculationID); err != nil {
		respondStoreError(w, internalError(err, apperrors.ErrFailedToDeleteCalculation))
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// DeleteProfitLoss handles POST /delete_pl. A rejected delete leaves the
// stored list unchanged.
func (h *SavedCalculationHandler) DeleteProfitLoss(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, func(id string) error {
		return h.calculationService.DeleteProfitLoss(r.Context(), id)
	})
}

// DeleteDividend handles POST /delete_div.
func (h *SavedCalculationHandler) DeleteDividend(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, func(id string) error {
		return h.calculationService.DeleteDividend(r.Context(), id)
	})
}

// DeleteRiskReward handles POST /delete_rrr.
func (h *SavedCalculationHandler) DeleteRiskReward(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, func(id string) error {
		return h.calculationService.DeleteRiskReward(r.Context(), id)
	})
}
