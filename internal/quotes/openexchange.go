package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
)

// OpenExchangeClient fetches the latest USD-based currency rates from
// openexchangerates.org.
type OpenExchangeClient struct {
	baseURL    string
	appID      string
	httpClient *http.Client
}

// NewOpenExchangeClient creates an Open Exchange Rates client.
func NewOpenExchangeClient(baseURL, appID string, timeout time.Duration) *OpenExchangeClient {
	return &OpenExchangeClient{
		baseURL:    baseURL,
		appID:      appID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// latestResponse is the raw /api/latest.json shape. Rates are quoted as
// units of each currency per 1 USD.
type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// RubRates holds the dashboard's currency board: how many rubles one unit
// of each quoted currency buys.
type RubRates struct {
	USD float64 `json:"usdprice"`
	EUR float64 `json:"eurprice"`
	CNY float64 `json:"cnyprice"`
	CHF float64 `json:"chfprice"`
}

// Latest returns the full USD-based rate table.
func (c *OpenExchangeClient) Latest(ctx context.Context) (map[string]float64, error) {
	url := fmt.Sprintf("%s/api/latest.json?app_id=%s", c.baseURL, c.appID)

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

	var latest latestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}
	if len(latest.Rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate table", apperrors.ErrMalformedResponse)
	}

	return latest.Rates, nil
}

// RubCrosses derives the ruble crosses from a USD-based rate table:
// rub_per_X = RUB/USD ÷ X/USD. Values are rounded to two decimal places
// for display, matching the ticker board.
func RubCrosses(rates map[string]float64) (RubRates, error) {
	rub, ok := rates["RUB"]
	if !ok || rub <= 0 {
		return RubRates{}, fmt.Errorf("%w: RUB", apperrors.ErrCurrencyNotSupported)
	}

	cross := func(code string) (float64, error) {
		rate, ok := rates[code]
		if !ok || rate <= 0 {
			return 0, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotSupported, code)
		}
		return math.Round(rub/rate*100) / 100, nil
	}

	var out RubRates
	var err error
	if out.USD, err = cross("USD"); err != nil {
		return RubRates{}, err
	}
	if out.EUR, err = cross("EUR"); err != nil {
		return RubRates{}, err
	}
	if out.CNY, err = cross("CNY"); err != nil {
		return RubRates{}, err
	}
	if out.CHF, err = cross("CHF"); err != nil {
		return RubRates{}, err
	}

	return out, nil
}

// Rate returns the ruble cross for a single currency code from the board.
func (r RubRates) Rate(code string) (float64, error) {
	switch code {
	case "usd", "USD":
		return r.USD, nil
	case "eur", "EUR":
		return r.EUR, nil
	case "cny", "CNY":
		return r.CNY, nil
	case "chf", "CHF":
		return r.CHF, nil
	default:
		return 0, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotSupported, code)
	}
}
