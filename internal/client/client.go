// Package client is the HTTP client for the dashboard API: the
// saved-calculation store, the quote boards and the calculators. Network
// and decode failures surface as typed errors so callers can keep their
// previous state instead of rendering garbage.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/quotes"
	"github.com/Verderen/MoneyHiver/internal/service"
)

// Client talks to one dashboard API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}

	return c.do(req, dest)
}

func (c *Client) post(ctx context.Context, path string, body, dest interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dest)
}

// do runs the request and decodes the JSON body regardless of status code:
// the API reports failures inside the body, which the caller inspects via
// the success flag or error field.
func (c *Client) do(req *http.Request, dest interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}

	if dest != nil {
		if err := json.Unmarshal(body, dest); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
		}
	}

	return nil
}

// storeEnvelope is the common wrapper on store responses.
type storeEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (e storeEnvelope) err() error {
	if e.Success {
		return nil
	}
	msg := e.Error
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Errorf("%w: %s", apperrors.ErrBackendFailure, msg)
}

type listResponse struct {
	storeEnvelope
	Calculations []model.CalculationSummary `json:"calculations"`
}

func (c *Client) list(ctx context.Context, path string) ([]model.CalculationSummary, error) {
	var resp listResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	return resp.Calculations, nil
}

// SavedProfitLoss retrieves the saved profit/loss summaries.
func (c *Client) SavedProfitLoss(ctx context.Context) ([]model.CalculationSummary, error) {
	return c.list(ctx, "/get_saved_pl")
}

// SavedDividend retrieves the saved dividend summaries.
func (c *Client) SavedDividend(ctx context.Context) ([]model.CalculationSummary, error) {
	return c.list(ctx, "/get_saved_div")
}

// SavedRiskReward retrieves the saved risk/reward summaries.
func (c *Client) SavedRiskReward(ctx context.Context) ([]model.CalculationSummary, error) {
	return c.list(ctx, "/get_saved_rrr")
}

func detailsPath(endpoint, id string) string {
	return endpoint + "?id=" + url.QueryEscape(id)
}

// ProfitLossDetails retrieves one saved profit/loss calculation.
func (c *Client) ProfitLossDetails(ctx context.Context, id string) (model.SavedProfitLoss, error) {
	var resp struct {
		storeEnvelope
		Calculation model.SavedProfitLoss `json:"calculation"`
	}
	if err := c.get(ctx, detailsPath("/get_pl_details", id), &resp); err != nil {
		return model.SavedProfitLoss{}, err
	}
	return resp.Calculation, resp.err()
}

// DividendDetails retrieves one saved dividend calculation.
func (c *Client) DividendDetails(ctx context.Context, id string) (model.SavedDividend, error) {
	var resp struct {
		storeEnvelope
		Calculation model.SavedDividend `json:"calculation"`
	}
	if err := c.get(ctx, detailsPath("/get_div_details", id), &resp); err != nil {
		return model.SavedDividend{}, err
	}
	return resp.Calculation, resp.err()
}

// RiskRewardDetails retrieves one saved risk/reward calculation.
func (c *Client) RiskRewardDetails(ctx context.Context, id string) (model.SavedRiskReward, error) {
	var resp struct {
		storeEnvelope
		Calculation model.SavedRiskReward `json:"calculation"`
	}
	if err := c.get(ctx, detailsPath("/get_rrr_details", id), &resp); err != nil {
		return model.SavedRiskReward{}, err
	}
	return resp.Calculation, resp.err()
}

func deleteEndpoint(kind string) (string, error) {
	switch kind {
	case model.TypeProfitLoss:
		return "/delete_pl", nil
	case model.TypeDividend:
		return "/delete_div", nil
	case model.TypeRiskReward:
		return "/delete_rrr", nil
	default:
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidCalculationType, kind)
	}
}

// DeleteCalculation removes one saved calculation of the given kind. When
// the backend rejects the delete the stored list is unchanged and the
// rejection comes back as ErrBackendFailure.
func (c *Client) DeleteCalculation(ctx context.Context, kind, id string) error {
	endpoint, err := deleteEndpoint(kind)
	if err != nil {
		return err
	}

	var resp storeEnvelope
	if err := c.post(ctx, endpoint, map[string]string{"calculation_id": id}, &resp); err != nil {
		return err
	}
	return resp.err()
}

// SaveProfitLoss persists a profit/loss calculation and returns the stored row.
func (c *Client) SaveProfitLoss(ctx context.Context, payload interface{}) (model.SavedProfitLoss, error) {
	var resp struct {
		storeEnvelope
		Calculation model.SavedProfitLoss `json:"calculation"`
	}
	if err := c.post(ctx, "/save_pl", payload, &resp); err != nil {
		return model.SavedProfitLoss{}, err
	}
	return resp.Calculation, resp.err()
}

// SaveDividend persists a dividend calculation and returns the stored row.
func (c *Client) SaveDividend(ctx context.Context, payload interface{}) (model.SavedDividend, error) {
	var resp struct {
		storeEnvelope
		Calculation model.SavedDividend `json:"calculation"`
	}
	if err := c.post(ctx, "/save_div", payload, &resp); err != nil {
		return model.SavedDividend{}, err
	}
	return resp.Calculation, resp.err()
}

// SaveRiskReward persists a risk/reward calculation and returns the stored row.
func (c *Client) SaveRiskReward(ctx context.Context, payload interface{}) (model.SavedRiskReward, error) {
	var resp struct {
		storeEnvelope
		Calculation model.SavedRiskReward `json:"calculation"`
	}
	if err := c.post(ctx, "/save_rrr", payload, &resp); err != nil {
		return model.SavedRiskReward{}, err
	}
	return resp.Calculation, resp.err()
}

// CryptoPrices retrieves the crypto board.
func (c *Client) CryptoPrices(ctx context.Context) (service.CryptoPrices, error) {
	var resp service.CryptoPrices
	if err := c.get(ctx, "/api/crypto", &resp); err != nil {
		return service.CryptoPrices{}, err
	}
	return resp, nil
}

// CurrencyRates retrieves the ruble cross board.
func (c *Client) CurrencyRates(ctx context.Context) (quotes.RubRates, error) {
	var resp quotes.RubRates
	if err := c.get(ctx, "/api/currency", &resp); err != nil {
		return quotes.RubRates{}, err
	}
	return resp, nil
}

// StockPrice retrieves the quote for one board ticker.
func (c *Client) StockPrice(ctx context.Context, symbol string) (float64, error) {
	var resp struct {
		Price float64 `json:"price"`
		Error string  `json:"error"`
	}
	if err := c.get(ctx, "/api/stocks/"+url.PathEscape(symbol), &resp); err != nil {
		return 0, err
	}
	if resp.Error != "" {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrBackendFailure, resp.Error)
	}
	return resp.Price, nil
}
