package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Verderen/MoneyHiver/internal/api/handlers"
	"github.com/Verderen/MoneyHiver/internal/testutil"
)

// TestQuoteHandler_Crypto tests the crypto board endpoint.
func TestQuoteHandler_Crypto(t *testing.T) {
	handler := handlers.NewQuoteHandler(newStubQuoteService())

	req := httptest.NewRequest(http.MethodGet, "/api/crypto", nil)
	rec := httptest.NewRecorder()
	handler.Crypto(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp map[string]float64
	testutil.DecodeJSON(t, rec, &resp)
	if resp["btc_price"] != 65000 {
		t.Errorf("Expected btc_price 65000, got %v", resp["btc_price"])
	}
	if resp["eth_price"] != 3200 {
		t.Errorf("Expected eth_price 3200, got %v", resp["eth_price"])
	}
}

// TestQuoteHandler_Currency tests the ruble cross board endpoint.
func TestQuoteHandler_Currency(t *testing.T) {
	handler := handlers.NewQuoteHandler(newStubQuoteService())

	req := httptest.NewRequest(http.MethodGet, "/api/currency", nil)
	rec := httptest.NewRecorder()
	handler.Currency(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp map[string]float64
	testutil.DecodeJSON(t, rec, &resp)
	if resp["usdprice"] != 90 {
		t.Errorf("Expected usdprice 90, got %v", resp["usdprice"])
	}
	if resp["eurprice"] != 100 {
		t.Errorf("Expected eurprice 100, got %v", resp["eurprice"])
	}
}

// TestQuoteHandler_CurrencyRate tests the single-rate endpoint.
func TestQuoteHandler_CurrencyRate(t *testing.T) {
	handler := handlers.NewQuoteHandler(newStubQuoteService())

	t.Run("returns the cross for a known code", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/currency/eur", map[string]string{"code": "eur"})
		rec := httptest.NewRecorder()
		handler.CurrencyRate(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var resp map[string]float64
		testutil.DecodeJSON(t, rec, &resp)
		if resp["price"] != 100 {
			t.Errorf("Expected price 100, got %v", resp["price"])
		}
	})

	t.Run("rejects unknown codes with 400", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/currency/xyz", map[string]string{"code": "xyz"})
		rec := httptest.NewRecorder()
		handler.CurrencyRate(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

// TestQuoteHandler_Stock tests the single-stock endpoint.
func TestQuoteHandler_Stock(t *testing.T) {
	handler := handlers.NewQuoteHandler(newStubQuoteService())

	t.Run("resolves board tickers case-insensitively", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/stocks/aapl", map[string]string{"symbol": "aapl"})
		rec := httptest.NewRecorder()
		handler.Stock(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var resp map[string]float64
		testutil.DecodeJSON(t, rec, &resp)
		if resp["price"] != 210 {
			t.Errorf("Expected price 210, got %v", resp["price"])
		}
	})

	t.Run("rejects symbols off the board with 404", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/stocks/gme", map[string]string{"symbol": "gme"})
		rec := httptest.NewRecorder()
		handler.Stock(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}
