package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/quotes"
)

// CryptoSource supplies spot prices for trading pairs.
type CryptoSource interface {
	TickerPrice(ctx context.Context, symbol string) (float64, error)
}

// RateSource supplies a USD-based currency rate table.
type RateSource interface {
	Latest(ctx context.Context) (map[string]float64, error)
}

// StockSource supplies current stock quotes.
type StockSource interface {
	Quote(ctx context.Context, symbol string) (float64, error)
}

// StockSymbols are the tickers shown on the stocks board, in display order.
var StockSymbols = []string{"AAPL", "NVDA", "TSLA", "AMZN"}

// CryptoPrices is the crypto board snapshot.
type CryptoPrices struct {
	BTC float64 `json:"btc_price"`
	ETH float64 `json:"eth_price"`
}

// QuoteService keeps a mutex-guarded snapshot of provider prices, refreshed
// by the scheduler. Readers get warm data without touching the providers;
// on a cold snapshot the getters fetch live once so the first request after
// startup still answers.
type QuoteService struct {
	crypto CryptoSource
	rates  RateSource
	stocks StockSource

	mu           sync.RWMutex
	cryptoSnap   CryptoPrices
	currencySnap quotes.RubRates
	tableSnap    map[string]float64
	stockSnap    map[string]float64
	cryptoAt     time.Time
	currencyAt   time.Time
	stockAt      time.Time
}

// NewQuoteService creates a new QuoteService with the provided provider clients.
func NewQuoteService(crypto CryptoSource, rates RateSource, stocks StockSource) *QuoteService {
	return &QuoteService{
		crypto:    crypto,
		rates:     rates,
		stocks:    stocks,
		stockSnap: make(map[string]float64),
	}
}

// RefreshCrypto fetches BTC and ETH spot prices in parallel and updates the
// snapshot. A failed fetch leaves the previous snapshot in place.
func (s *QuoteService) RefreshCrypto(ctx context.Context) error {
	var btc, eth float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		btc, err = s.crypto.TickerPrice(gctx, "BTCUSDT")
		return err
	})
	g.Go(func() error {
		var err error
		eth, err = s.crypto.TickerPrice(gctx, "ETHUSDT")
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to refresh crypto prices: %w", err)
	}

	s.mu.Lock()
	s.cryptoSnap = CryptoPrices{BTC: btc, ETH: eth}
	s.cryptoAt = time.Now()
	s.mu.Unlock()

	return nil
}

// RefreshCurrency fetches the USD-based rate table and updates the ruble
// cross snapshot.
func (s *QuoteService) RefreshCurrency(ctx context.Context) error {
	table, err := s.rates.Latest(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh currency rates: %w", err)
	}

	crosses, err := quotes.RubCrosses(table)
	if err != nil {
		return fmt.Errorf("failed to refresh currency rates: %w", err)
	}

	s.mu.Lock()
	s.currencySnap = crosses
	s.tableSnap = table
	s.currencyAt = time.Now()
	s.mu.Unlock()

	return nil
}

// UsdRates returns the full USD-based rate table used for conversions,
// live on a cold start.
func (s *QuoteService) UsdRates(ctx context.Context) (map[string]float64, error) {
	s.mu.RLock()
	table := s.tableSnap
	warm := !s.currencyAt.IsZero()
	s.mu.RUnlock()

	if warm && len(table) > 0 {
		return table, nil
	}

	if err := s.RefreshCurrency(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	table = s.tableSnap
	s.mu.RUnlock()
	return table, nil
}

// RefreshStocks fetches all board tickers in parallel and updates the
// snapshot. Symbols that fail keep their previous value.
func (s *QuoteService) RefreshStocks(ctx context.Context) error {
	prices := make([]float64, len(StockSymbols))

	g, gctx := errgroup.WithContext(ctx)
	for i, symbol := range StockSymbols {
		g.Go(func() error {
			var err error
			prices[i], err = s.stocks.Quote(gctx, symbol)
			return err
		})
	}
	err := g.Wait()

	s.mu.Lock()
	for i, symbol := range StockSymbols {
		if prices[i] > 0 {
			s.stockSnap[symbol] = prices[i]
		}
	}
	s.stockAt = time.Now()
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to refresh stock quotes: %w", err)
	}
	return nil
}

// CryptoPrices returns the crypto board. Serves the snapshot when warm,
// fetches live on a cold start.
func (s *QuoteService) CryptoPrices(ctx context.Context) (CryptoPrices, error) {
	s.mu.RLock()
	snap := s.cryptoSnap
	warm := !s.cryptoAt.IsZero()
	s.mu.RUnlock()

	if warm {
		return snap, nil
	}

	if err := s.RefreshCrypto(ctx); err != nil {
		return CryptoPrices{}, err
	}

	s.mu.RLock()
	snap = s.cryptoSnap
	s.mu.RUnlock()
	return snap, nil
}

// CurrencyRates returns the ruble cross board, live on a cold start.
func (s *QuoteService) CurrencyRates(ctx context.Context) (quotes.RubRates, error) {
	s.mu.RLock()
	snap := s.currencySnap
	warm := !s.currencyAt.IsZero()
	s.mu.RUnlock()

	if warm {
		return snap, nil
	}

	if err := s.RefreshCurrency(ctx); err != nil {
		return quotes.RubRates{}, err
	}

	s.mu.RLock()
	snap = s.currencySnap
	s.mu.RUnlock()
	return snap, nil
}

// CurrencyRate returns the ruble cross for a single currency code.
func (s *QuoteService) CurrencyRate(ctx context.Context, code string) (float64, error) {
	board, err := s.CurrencyRates(ctx)
	if err != nil {
		return 0, err
	}
	return board.Rate(code)
}

// StockPrice returns the quote for one board ticker, live on a cold start.
func (s *QuoteService) StockPrice(ctx context.Context, symbol string) (float64, error) {
	symbol = strings.ToUpper(symbol)
	if !validStockSymbol(symbol) {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, symbol)
	}

	s.mu.RLock()
	price, ok := s.stockSnap[symbol]
	s.mu.RUnlock()

	if ok && price > 0 {
		return price, nil
	}

	return s.stocks.Quote(ctx, symbol)
}

// LatestPrice resolves any dashboard asset (trading pair, currency code or
// stock ticker) to its current price. Used as the fallback scalar for chart
// synthesis.
func (s *QuoteService) LatestPrice(ctx context.Context, asset string) (float64, error) {
	switch upper := strings.ToUpper(asset); {
	case upper == "BTC" || upper == "BTCUSDT":
		board, err := s.CryptoPrices(ctx)
		return board.BTC, err
	case upper == "ETH" || upper == "ETHUSDT":
		board, err := s.CryptoPrices(ctx)
		return board.ETH, err
	case validStockSymbol(upper):
		return s.StockPrice(ctx, upper)
	default:
		return s.CurrencyRate(ctx, asset)
	}
}

func validStockSymbol(symbol string) bool {
	for _, s := range StockSymbols {
		if s == symbol {
			return true
		}
	}
	return false
}
