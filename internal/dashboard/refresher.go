package dashboard

import (
	"context"
	"strings"

	"github.com/Verderen/MoneyHiver/internal/client"
	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/quotes"
	"github.com/Verderen/MoneyHiver/internal/service"
)

// Refresher drives the dashboard boards: each refresh takes a token before
// the fetch and applies the result through it, so overlapping refreshes
// resolve to the newest request. Fetch failures leave the previous board
// value in place.
type Refresher struct {
	api     *client.Client
	candles *quotes.ChartSource
	scalars *quotes.ChartSource
	state   *State
}

// NewRefresher creates a refresher over the API client and chart sources.
func NewRefresher(api *client.Client, candles, scalars *quotes.ChartSource, state *State) *Refresher {
	return &Refresher{
		api:     api,
		candles: candles,
		scalars: scalars,
		state:   state,
	}
}

// State returns the state container the refresher writes to.
func (r *Refresher) State() *State {
	return r.state
}

// RefreshCrypto reloads the crypto board.
func (r *Refresher) RefreshCrypto(ctx context.Context) error {
	token := r.state.Begin(BoardCrypto)

	prices, err := r.api.CryptoPrices(ctx)
	if err != nil {
		return err
	}

	r.state.ApplyCrypto(token, prices)
	return nil
}

// RefreshCurrency reloads the currency board.
func (r *Refresher) RefreshCurrency(ctx context.Context) error {
	token := r.state.Begin(BoardCurrency)

	rates, err := r.api.CurrencyRates(ctx)
	if err != nil {
		return err
	}

	r.state.ApplyCurrency(token, rates)
	return nil
}

// RefreshStocks reloads every board ticker. Tickers that fail keep their
// previous value; the first error is reported after the sweep.
func (r *Refresher) RefreshStocks(ctx context.Context) error {
	token := r.state.Begin(BoardStocks)

	var firstErr error
	for _, symbol := range service.StockSymbols {
		price, err := r.api.StockPrice(ctx, symbol)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		r.state.ApplyStock(token, symbol, price)
	}

	return firstErr
}

// RefreshSaved reloads the three saved-calculation lists.
func (r *Refresher) RefreshSaved(ctx context.Context) error {
	token := r.state.Begin(BoardSaved)

	kinds := []struct {
		kind string
		load func(context.Context) ([]model.CalculationSummary, error)
	}{
		{model.TypeProfitLoss, r.api.SavedProfitLoss},
		{model.TypeDividend, r.api.SavedDividend},
		{model.TypeRiskReward, r.api.SavedRiskReward},
	}

	for _, k := range kinds {
		calculations, err := k.load(ctx)
		if err != nil {
			return err
		}
		r.state.ApplySaved(token, k.kind, calculations)
	}

	return nil
}

// binancePair maps a dashboard asset to its candle-backed trading pair,
// or "" when the asset only has a scalar price.
func binancePair(asset string) string {
	switch strings.ToUpper(asset) {
	case "BTC", "BTCUSDT":
		return "BTCUSDT"
	case "ETH", "ETHUSDT":
		return "ETHUSDT"
	default:
		return ""
	}
}

// LoadChart switches the chart selection and loads its series. Assets with
// candle history go through the kline source; currency codes and stock
// tickers get a synthesized series from their latest price. A selection
// change while the fetch is in flight discards the result.
func (r *Refresher) LoadChart(ctx context.Context, asset, days string) error {
	token := r.state.SelectChart(asset, days)
	asset, days = r.state.Selection()

	source := r.scalars
	symbol := asset
	if pair := binancePair(asset); pair != "" {
		source = r.candles
		symbol = pair
	}

	series, err := source.History(ctx, symbol, days)
	if err != nil {
		return err
	}

	r.state.ApplyChart(token, series)
	return nil
}
