package calc

import (
	"math"
	"testing"
)

func TestDividend(t *testing.T) {
	t.Run("flat total with no tax and no growth", func(t *testing.T) {
		// 1.20 per share yearly, 100 shares, 5 years -> 600 total.
		result, err := Dividend(DividendInput{
			Asset:            "KO",
			PriceOfShare:     60,
			NumberOfShares:   100,
			DividendPerShare: 1.20,
			PayPeriod:        PayPeriodYear,
			OwnPeriod:        5,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		assertApprox(t, "TotalDividend", result.TotalDividend, 600)
		assertApprox(t, "TotalNoTaxNoGrowth", result.TotalNoTaxNoGrowth, 600)
		assertApprox(t, "DividendYield", result.DividendYield, 2)
		assertApprox(t, "TotalDividendYield", result.TotalDividendYield, 10)
		assertApprox(t, "AverageAnnualReturn", result.AverageAnnualReturn, 2)

		// Without tax or growth all four totals collapse to the flat total.
		assertApprox(t, "TotalWithTaxAndGrowth", result.TotalWithTaxAndGrowth, 600)
		assertApprox(t, "TotalWithTaxNoGrowth", result.TotalWithTaxNoGrowth, 600)
		assertApprox(t, "TotalNoTaxWithGrowth", result.TotalNoTaxWithGrowth, 600)
	})

	t.Run("monthly payments annualize twelvefold", func(t *testing.T) {
		monthly, err := Dividend(DividendInput{
			PriceOfShare: 100, NumberOfShares: 1, DividendPerShare: 1,
			PayPeriod: PayPeriodMonth, OwnPeriod: 1,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		assertApprox(t, "TotalDividend", monthly.TotalDividend, 12)
		assertApprox(t, "DividendYield", monthly.DividendYield, 12)
	})

	t.Run("tax reduces every variant by the rate", func(t *testing.T) {
		result, err := Dividend(DividendInput{
			PriceOfShare: 100, NumberOfShares: 10, DividendPerShare: 4,
			PayPeriod: PayPeriodYear, OwnPeriod: 3, TaxRate: 25,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		assertApprox(t, "TotalNoTaxNoGrowth", result.TotalNoTaxNoGrowth, 120)
		assertApprox(t, "TotalWithTaxNoGrowth", result.TotalWithTaxNoGrowth, 90)
		assertApprox(t, "DividendYield", result.DividendYield, 4)
		assertApprox(t, "DividendYieldAfterTax", result.DividendYieldAfterTax, 3)
	})

	t.Run("growth compounds year over year", func(t *testing.T) {
		// 10 per share, 10% growth, 3 years: 10 + 11 + 12.1 = 33.1 per share.
		result, err := Dividend(DividendInput{
			PriceOfShare: 200, NumberOfShares: 1, DividendPerShare: 10,
			PayPeriod: PayPeriodYear, OwnPeriod: 3, DividendGrowth: 10,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		assertApprox(t, "TotalNoTaxWithGrowth", result.TotalNoTaxWithGrowth, 33.1)
		assertApprox(t, "TotalDividend", result.TotalDividend, 33.1)
		// The flat variant ignores growth.
		assertApprox(t, "TotalNoTaxNoGrowth", result.TotalNoTaxNoGrowth, 30)
	})

	t.Run("growth series matches explicit per-year accumulation", func(t *testing.T) {
		annual, growth, years := 7.5, 4.0, 6.0
		var want float64
		for i := 0; i < int(years); i++ {
			want += annual * math.Pow(1+growth/100, float64(i))
		}
		got := growthTotalPerShare(annual, growth, years)
		assertApprox(t, "growthTotalPerShare", got, want)
	})

	t.Run("tax and growth combine multiplicatively", func(t *testing.T) {
		result, err := Dividend(DividendInput{
			PriceOfShare: 50, NumberOfShares: 20, DividendPerShare: 2,
			PayPeriod: PayPeriodYear, OwnPeriod: 4, TaxRate: 10, DividendGrowth: 5,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		assertApprox(t, "TotalWithTaxAndGrowth",
			result.TotalWithTaxAndGrowth, result.TotalNoTaxWithGrowth*0.9)
		assertApprox(t, "TotalDividendYield",
			result.TotalDividendYield, result.TotalDividend/(50*20)*100)
		assertApprox(t, "AverageAnnualReturn",
			result.AverageAnnualReturn, result.TotalDividendYield/4)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		cases := []DividendInput{
			{PriceOfShare: 0, NumberOfShares: 1, DividendPerShare: 1, PayPeriod: PayPeriodYear, OwnPeriod: 1},
			{PriceOfShare: 1, NumberOfShares: -1, DividendPerShare: 1, PayPeriod: PayPeriodYear, OwnPeriod: 1},
			{PriceOfShare: 1, NumberOfShares: 1, DividendPerShare: 0, PayPeriod: PayPeriodYear, OwnPeriod: 1},
			{PriceOfShare: 1, NumberOfShares: 1, DividendPerShare: 1, PayPeriod: "week", OwnPeriod: 1},
			{PriceOfShare: 1, NumberOfShares: 1, DividendPerShare: 1, PayPeriod: PayPeriodYear, OwnPeriod: 0},
			{PriceOfShare: 1, NumberOfShares: 1, DividendPerShare: 1, PayPeriod: PayPeriodYear, OwnPeriod: 1, TaxRate: -5},
		}
		for _, in := range cases {
			_, err := Dividend(in)
			assertInvalidInput(t, err)
		}
	})
}
