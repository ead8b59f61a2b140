package handlers

import (
	"fmt"
	"net/http"

	"github.com/Verderen/MoneyHiver/internal/api/request"
	"github.com/Verderen/MoneyHiver/internal/api/response"
	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/service"
	"github.com/Verderen/MoneyHiver/internal/validation"
)

// AlertHandler handles price alert subscriptions and the contact form.
// Both endpoints are no-ops when alerting is not configured.
type AlertHandler struct {
	alertService *service.AlertService
}

// NewAlertHandler creates a new AlertHandler. alertService may be nil when
// alerting is disabled by configuration.
func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// Subscribe handles POST /subscribe.
func (h *AlertHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if h.alertService == nil {
		response.RespondError(w, http.StatusServiceUnavailable, "price alerts are not configured", nil)
		return
	}

	var req request.SubscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateSubscribe(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	alert, err := h.alertService.Subscribe(r.Context(), req.Email, req.Asset, req.Price)
	if err != nil {
		err = internalError(err, apperrors.ErrFailedToSubscribe)
		response.RespondError(w, statusForError(err), err.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{
		"success": fmt.Sprintf(
			"You have subscribed to %s price alerts! You will be notified when the price reaches $%.2f",
			alert.Asset, alert.Threshold,
		),
	})
}

// Message handles POST /message.
func (h *AlertHandler) Message(w http.ResponseWriter, r *http.Request) {
	if h.alertService == nil {
		response.RespondError(w, http.StatusServiceUnavailable, "mail relay is not configured", nil)
		return
	}

	var req request.MessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateMessage(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.alertService.RelayMessage(req.Name, req.Email, req.Message); err != nil {
		err = internalError(err, apperrors.ErrFailedToSendMessage)
		response.RespondError(w, statusForError(err), err.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{
		"success": "Your message has been sent successfully!",
	})
}
