package quotes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
)

func TestOpenExchangeClient_Latest(t *testing.T) {
	t.Run("returns the rate table", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("app_id"); got != "test-app" {
				t.Errorf("Expected app_id test-app, got %s", got)
			}
			w.Write([]byte(`{"base":"USD","rates":{"RUB":80.0,"EUR":0.9,"CNY":7.2,"CHF":0.88}}`))
		}))
		defer server.Close()

		client := NewOpenExchangeClient(server.URL, "test-app", time.Second)
		rates, err := client.Latest(context.Background())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if rates["RUB"] != 80.0 {
			t.Errorf("Expected RUB rate 80.0, got %v", rates["RUB"])
		}
	})

	t.Run("empty rate table is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"base":"USD","rates":{}}`))
		}))
		defer server.Close()

		client := NewOpenExchangeClient(server.URL, "test-app", time.Second)
		_, err := client.Latest(context.Background())
		if !errors.Is(err, apperrors.ErrMalformedResponse) {
			t.Errorf("Expected ErrMalformedResponse, got %v", err)
		}
	})
}

func TestRubCrosses(t *testing.T) {
	rates := map[string]float64{"RUB": 80.0, "EUR": 0.9, "CNY": 7.2, "CHF": 0.88}

	crosses, err := RubCrosses(rates)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if crosses.USD != 80.0 {
		t.Errorf("Expected USD cross 80.0, got %v", crosses.USD)
	}
	if crosses.EUR != 88.89 {
		t.Errorf("Expected EUR cross 88.89, got %v", crosses.EUR)
	}
	if crosses.CNY != 11.11 {
		t.Errorf("Expected CNY cross 11.11, got %v", crosses.CNY)
	}
	if crosses.CHF != 90.91 {
		t.Errorf("Expected CHF cross 90.91, got %v", crosses.CHF)
	}

	t.Run("missing ruble rate is unsupported", func(t *testing.T) {
		_, err := RubCrosses(map[string]float64{"EUR": 0.9})
		if !errors.Is(err, apperrors.ErrCurrencyNotSupported) {
			t.Errorf("Expected ErrCurrencyNotSupported, got %v", err)
		}
	})

	t.Run("single code lookup", func(t *testing.T) {
		if rate, err := crosses.Rate("eur"); err != nil || rate != 88.89 {
			t.Errorf("Expected eur rate 88.89, got %v (%v)", rate, err)
		}
		if _, err := crosses.Rate("jpy"); !errors.Is(err, apperrors.ErrCurrencyNotSupported) {
			t.Errorf("Expected ErrCurrencyNotSupported, got %v", err)
		}
	})
}
