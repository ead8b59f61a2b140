package dashboard

import (
	"testing"
	"time"

	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/service"
)

func testSeries(last float64) model.Series {
	now := time.Now().UnixMilli()
	return model.Series{
		Points: []model.PricePoint{
			{Timestamp: now - time.Hour.Milliseconds(), Price: last - 10},
			{Timestamp: now, Price: last},
		},
	}
}

// TestState_StaleDiscard tests the request token protocol.
//
// WHY: Refreshes run concurrently and responses arrive out of order. A
// response that started before a newer request must be dropped so the
// boards never roll backwards.
func TestState_StaleDiscard(t *testing.T) {
	t.Run("newest token wins", func(t *testing.T) {
		state := NewState()

		stale := state.Begin(BoardCrypto)
		fresh := state.Begin(BoardCrypto)

		if !state.ApplyCrypto(fresh, service.CryptoPrices{BTC: 66000, ETH: 3300}) {
			t.Fatal("Expected the fresh result to apply")
		}
		if state.ApplyCrypto(stale, service.CryptoPrices{BTC: 65000, ETH: 3200}) {
			t.Fatal("Expected the stale result to be discarded")
		}

		if got := state.Crypto().BTC; got != 66000 {
			t.Errorf("Expected BTC 66000, got %v", got)
		}
	})

	t.Run("boards invalidate independently", func(t *testing.T) {
		state := NewState()

		cryptoToken := state.Begin(BoardCrypto)
		state.Begin(BoardCurrency)

		if !state.ApplyCrypto(cryptoToken, service.CryptoPrices{BTC: 65000}) {
			t.Error("Expected a currency refresh to leave crypto tokens valid")
		}
	})

	t.Run("stocks board discards a stale sweep as a unit", func(t *testing.T) {
		state := NewState()

		stale := state.Begin(BoardStocks)
		fresh := state.Begin(BoardStocks)

		if !state.ApplyStock(fresh, "AAPL", 215) {
			t.Fatal("Expected the fresh price to apply")
		}
		if state.ApplyStock(stale, "AAPL", 210) {
			t.Fatal("Expected the stale price to be discarded")
		}

		price, ok := state.Stock("AAPL")
		if !ok || price != 215 {
			t.Errorf("Expected AAPL 215, got %v (%v)", price, ok)
		}
	})

	t.Run("saved lists share one board token", func(t *testing.T) {
		state := NewState()

		stale := state.Begin(BoardSaved)
		fresh := state.Begin(BoardSaved)

		if state.ApplySaved(stale, model.TypeProfitLoss, []model.CalculationSummary{{Title: "old"}}) {
			t.Fatal("Expected the stale list to be discarded")
		}
		if !state.ApplySaved(fresh, model.TypeProfitLoss, []model.CalculationSummary{{Title: "new"}}) {
			t.Fatal("Expected the fresh list to apply")
		}

		saved := state.Saved(model.TypeProfitLoss)
		if len(saved) != 1 || saved[0].Title != "new" {
			t.Errorf("Expected the fresh list, got %+v", saved)
		}
	})
}

// TestState_SelectChart tests chart selection switching.
//
// WHY: Switching asset or range must invalidate the in-flight load for the
// previous selection, otherwise a slow BTC response could be drawn under an
// ETH heading.
func TestState_SelectChart(t *testing.T) {
	t.Run("selection switch drops the in-flight load", func(t *testing.T) {
		state := NewState()

		btcToken := state.SelectChart("BTC", "1")
		ethToken := state.SelectChart("ETH", "7")

		if state.ApplyChart(btcToken, testSeries(65000)) {
			t.Fatal("Expected the superseded load to be discarded")
		}
		if !state.ApplyChart(ethToken, testSeries(3200)) {
			t.Fatal("Expected the current load to apply")
		}

		if got := state.Chart().Latest(); got != 3200 {
			t.Errorf("Expected the current series to be stored, got latest %v", got)
		}
	})

	t.Run("empty fields keep the previous selection", func(t *testing.T) {
		state := NewState()

		state.SelectChart("ETH", "")
		asset, days := state.Selection()
		if asset != "ETH" || days != "1" {
			t.Errorf("Expected ETH over 1 day, got %s over %s", asset, days)
		}

		state.SelectChart("", "30")
		asset, days = state.Selection()
		if asset != "ETH" || days != "30" {
			t.Errorf("Expected ETH over 30 days, got %s over %s", asset, days)
		}
	})

	t.Run("defaults to BTC over one day", func(t *testing.T) {
		asset, days := NewState().Selection()
		if asset != "BTC" || days != "1" {
			t.Errorf("Expected BTC over 1 day, got %s over %s", asset, days)
		}
	})
}
