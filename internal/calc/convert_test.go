package calc

import "testing"

func TestConvert(t *testing.T) {
	t.Run("crosses through USD", func(t *testing.T) {
		// 100 EUR at 0.90 EUR/USD and 80 RUB/USD -> 8888.89 RUB.
		result, err := Convert(ConvertInput{
			Amount:       100,
			FromCurrency: "EUR",
			ToAsset:      "RUB",
			RateFrom:     0.90,
			RateTo:       80,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		assertApprox(t, "ConvertedAmount", result.ConvertedAmount, 100/0.90*80)
		assertApprox(t, "ExchangeRate", result.ExchangeRate, 80/0.90)
	})

	t.Run("rate is quoted as target units per source unit", func(t *testing.T) {
		result, err := Convert(ConvertInput{
			Amount: 250, FromCurrency: "USD", ToAsset: "CHF", RateFrom: 1, RateTo: 0.88,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		assertApprox(t, "ExchangeRate", result.ExchangeRate, result.ConvertedAmount/result.Amount)
		assertApprox(t, "ExchangeRate", result.ExchangeRate, 0.88)
	})

	t.Run("identity conversion", func(t *testing.T) {
		result, err := Convert(ConvertInput{
			Amount: 42, FromCurrency: "USD", ToAsset: "USD", RateFrom: 1, RateTo: 1,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		assertApprox(t, "ConvertedAmount", result.ConvertedAmount, 42)
		assertApprox(t, "ExchangeRate", result.ExchangeRate, 1)
	})

	t.Run("rejects non-positive amount and rates", func(t *testing.T) {
		cases := []ConvertInput{
			{Amount: 0, RateFrom: 1, RateTo: 1},
			{Amount: -5, RateFrom: 1, RateTo: 1},
			{Amount: 10, RateFrom: 0, RateTo: 1},
			{Amount: 10, RateFrom: 1, RateTo: 0},
		}
		for _, in := range cases {
			_, err := Convert(in)
			assertInvalidInput(t, err)
		}
	})
}
