package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Verderen/MoneyHiver/internal/api/response"
	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/chart"
	"github.com/Verderen/MoneyHiver/internal/quotes"
)

// ChartHandler renders price history charts as PNG. Assets with candle
// history (the Binance pairs) go through the kline-backed source; currency
// codes and stock tickers only have a scalar price, so their source
// synthesizes a display series from it.
type ChartHandler struct {
	candleSource *quotes.ChartSource
	scalarSource *quotes.ChartSource
}

// NewChartHandler creates a new ChartHandler
func NewChartHandler(candleSource, scalarSource *quotes.ChartSource) *ChartHandler {
	return &ChartHandler{
		candleSource: candleSource,
		scalarSource: scalarSource,
	}
}

// pairForAsset maps a dashboard asset name to its Binance trading pair.
// Returns "" for assets that have no candle provider.
func pairForAsset(asset string) string {
	switch strings.ToUpper(asset) {
	case "BTC", "BTCUSDT":
		return "BTCUSDT"
	case "ETH", "ETHUSDT":
		return "ETHUSDT"
	default:
		return ""
	}
}

// Chart handles GET /api/charts/{asset}?days=.
func (h *ChartHandler) Chart(w http.ResponseWriter, r *http.Request) {
	asset := chi.URLParam(r, "asset")
	days := r.URL.Query().Get("days")
	if days == "" {
		days = "1"
	}

	source := h.scalarSource
	symbol := asset
	if pair := pairForAsset(asset); pair != "" {
		source = h.candleSource
		symbol = pair
	}

	series, err := source.History(r.Context(), symbol, days)
	if err != nil {
		response.RespondError(w, statusForError(err), err.Error(), nil)
		return
	}

	png, err := chart.RenderPriceChart(symbol, series)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRenderChart.Error(), nil)
		return
	}

	response.RespondPNG(w, http.StatusOK, png)
}
