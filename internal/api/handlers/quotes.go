package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Verderen/MoneyHiver/internal/api/response"
	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/service"
)

// QuoteHandler serves the live price boards from the quote snapshot.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// Crypto handles GET /api/crypto.
func (h *QuoteHandler) Crypto(w http.ResponseWriter, r *http.Request) {
	prices, err := h.quoteService.CryptoPrices(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrieveQuotes.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, prices)
}

// Currency handles GET /api/currency: the full ruble cross board.
func (h *QuoteHandler) Currency(w http.ResponseWriter, r *http.Request) {
	rates, err := h.quoteService.CurrencyRates(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrieveQuotes.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, rates)
}

// CurrencyRate handles GET /api/currency/{code}.
func (h *QuoteHandler) CurrencyRate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	rate, err := h.quoteService.CurrencyRate(r.Context(), code)
	if err != nil {
		response.RespondError(w, statusForError(err), err.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]float64{"price": rate})
}

// Stock handles GET /api/stocks/{symbol}.
func (h *QuoteHandler) Stock(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	price, err := h.quoteService.StockPrice(r.Context(), symbol)
	if err != nil {
		response.RespondError(w, statusForError(err), err.Error(), nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]float64{"price": price})
}
