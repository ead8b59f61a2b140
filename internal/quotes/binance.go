// Package quotes contains the clients for the external market-data
// providers (Binance, Open Exchange Rates, Finnhub) and the chart source
// adapter that normalizes their responses into price series with a
// fallback path. Each client wraps an http.Client with a bounded timeout
// and classifies failures as network errors or malformed responses so the
// adapter can decide when to fall back.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/model"
)

// BinanceClient fetches spot ticker prices and candlestick series from the
// Binance public API.
type BinanceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBinanceClient creates a Binance client. baseURL is normally
// https://api.binance.com; tests point it at a local server.
func NewBinanceClient(baseURL string, timeout time.Duration) *BinanceClient {
	return &BinanceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// tickerResponse is the raw /api/v3/ticker/price shape. Binance quotes the
// price as a decimal string.
type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// TickerPrice returns the current price for a symbol such as "BTCUSDT".
func (c *BinanceClient) TickerPrice(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", c.baseURL, symbol)

	body, err := c.get(ctx, url)
	if err != nil {
		return 0, err
	}

	var ticker tickerResponse
	if err := json.Unmarshal(body, &ticker); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	price, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil || price <= 0 {
		return 0, fmt.Errorf("%w: bad price %q for %s", apperrors.ErrMalformedResponse, ticker.Price, symbol)
	}

	return price, nil
}

// Klines fetches up to limit candles for the symbol at the given interval
// ("1h", "4h", "1d") and maps each candle to a PricePoint of its open time
// and close price. Binance returns candles as positional JSON arrays:
// [openTime, open, high, low, close, volume, ...] with prices as strings.
func (c *BinanceClient) Klines(ctx context.Context, symbol, interval string, limit int) ([]model.PricePoint, error) {
	url := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=%s&limit=%d", c.baseURL, symbol, interval, limit)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var candles [][]json.RawMessage
	if err := json.Unmarshal(body, &candles); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	points := make([]model.PricePoint, 0, len(candles))
	for _, candle := range candles {
		if len(candle) < 5 {
			return nil, fmt.Errorf("%w: candle with %d fields", apperrors.ErrMalformedResponse, len(candle))
		}

		var openTime int64
		if err := json.Unmarshal(candle[0], &openTime); err != nil {
			return nil, fmt.Errorf("%w: candle open time: %v", apperrors.ErrMalformedResponse, err)
		}

		var closeStr string
		if err := json.Unmarshal(candle[4], &closeStr); err != nil {
			return nil, fmt.Errorf("%w: candle close: %v", apperrors.ErrMalformedResponse, err)
		}
		closePrice, err := strconv.ParseFloat(closeStr, 64)
		if err != nil || closePrice <= 0 {
			return nil, fmt.Errorf("%w: bad close price %q", apperrors.ErrMalformedResponse, closeStr)
		}

		points = append(points, model.PricePoint{Timestamp: openTime, Price: closePrice})
	}

	return points, nil
}

// get executes a GET request and returns the body, classifying transport
// failures and non-2xx statuses as network errors.
func (c *BinanceClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}

	return body, nil
}
