package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
)

// FinnhubClient fetches current stock quotes from the Finnhub API.
type FinnhubClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewFinnhubClient creates a Finnhub client.
func NewFinnhubClient(baseURL, apiKey string, timeout time.Duration) *FinnhubClient {
	return &FinnhubClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// quoteResponse is the raw /api/v1/quote shape; C is the current price.
type quoteResponse struct {
	Current float64 `json:"c"`
}

// Quote returns the current price for a stock symbol such as "AAPL".
// Finnhub answers 200 with c=0 for unknown symbols, which is reported as
// a symbol lookup failure rather than a price.
func (c *FinnhubClient) Quote(ctx context.Context, symbol string) (float64, error) {
	url := fmt.Sprintf("%s/api/v1/quote?symbol=%s&token=%s", c.baseURL, symbol, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: unexpected status %d", apperrors.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}

	var quote quoteResponse
	if err := json.Unmarshal(body, &quote); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}
	if quote.Current <= 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrSymbolNotFound, symbol)
	}

	return quote.Current, nil
}
