// Package dashboard holds the client-side refresh state: the latest value
// of every board plus the chart selection. Each board carries a monotonic
// request sequence so a slow response from an earlier refresh can never
// overwrite a newer one.
package dashboard

import (
	"sync"

	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/quotes"
	"github.com/Verderen/MoneyHiver/internal/service"
)

// Board identifies one independently refreshed panel.
type Board int

// Boards tracked by the state container.
const (
	BoardCrypto Board = iota
	BoardCurrency
	BoardStocks
	BoardChart
	BoardSaved
	boardCount
)

// State is the dashboard state container. All access is mutex-guarded; the
// zero chart selection is BTC over one day, matching the landing view.
type State struct {
	mu  sync.Mutex
	seq [boardCount]uint64

	crypto   service.CryptoPrices
	currency quotes.RubRates
	stocks   map[string]float64
	chart    model.Series
	saved    map[string][]model.CalculationSummary

	chartAsset string
	chartDays  string
}

// NewState creates a dashboard state with the default chart selection.
func NewState() *State {
	return &State{
		stocks:     make(map[string]float64),
		saved:      make(map[string][]model.CalculationSummary),
		chartAsset: "BTC",
		chartDays:  "1",
	}
}

// Begin starts a refresh for a board and returns the request token. A later
// Begin for the same board invalidates every token issued before it.
func (s *State) Begin(board Board) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[board]++
	return s.seq[board]
}

// current reports whether the token is still the newest for its board.
// Callers must hold s.mu.
func (s *State) current(board Board, token uint64) bool {
	return s.seq[board] == token
}

// ApplyCrypto stores a crypto board result. Stale tokens are ignored and
// reported as false.
func (s *State) ApplyCrypto(token uint64, prices service.CryptoPrices) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(BoardCrypto, token) {
		return false
	}
	s.crypto = prices
	return true
}

// ApplyCurrency stores a currency board result.
func (s *State) ApplyCurrency(token uint64, rates quotes.RubRates) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(BoardCurrency, token) {
		return false
	}
	s.currency = rates
	return true
}

// ApplyStock stores one ticker result. The whole stocks board shares a
// sequence, so a stale sweep is discarded as a unit.
func (s *State) ApplyStock(token uint64, symbol string, price float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(BoardStocks, token) {
		return false
	}
	s.stocks[symbol] = price
	return true
}

// ApplyChart stores a chart series result.
func (s *State) ApplyChart(token uint64, series model.Series) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(BoardChart, token) {
		return false
	}
	s.chart = series
	return true
}

// ApplySaved stores a saved-calculation list for one kind.
func (s *State) ApplySaved(token uint64, kind string, calculations []model.CalculationSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(BoardSaved, token) {
		return false
	}
	s.saved[kind] = calculations
	return true
}

// Crypto returns the last applied crypto board.
func (s *State) Crypto() service.CryptoPrices {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.crypto
}

// Currency returns the last applied currency board.
func (s *State) Currency() quotes.RubRates {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// Stock returns the last applied price for one ticker.
func (s *State) Stock(symbol string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	price, ok := s.stocks[symbol]
	return price, ok
}

// Chart returns the last applied chart series.
func (s *State) Chart() model.Series {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chart
}

// Saved returns the last applied summaries for one calculation kind.
func (s *State) Saved(kind string) []model.CalculationSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved[kind]
}

// Selection returns the current chart asset and day range.
func (s *State) Selection() (asset, days string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chartAsset, s.chartDays
}

// SelectChart switches the chart to a new asset or day range and returns
// the token for loading it. The switch itself invalidates every in-flight
// chart request, so a late response for the previous selection is dropped.
func (s *State) SelectChart(asset, days string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if asset != "" {
		s.chartAsset = asset
	}
	if days != "" {
		s.chartDays = days
	}
	s.seq[BoardChart]++
	return s.seq[BoardChart]
}
