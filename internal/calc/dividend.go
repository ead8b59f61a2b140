package calc

import "math"

// Dividend pay periods.
const (
	PayPeriodMonth = "month"
	PayPeriodYear  = "year"
)

// DividendInput describes a dividend-paying position held for OwnPeriod
// years. TaxRate and DividendGrowth are percentages; both are optional and
// zero-effect when absent.
type DividendInput struct {
	Asset            string
	PriceOfShare     float64
	NumberOfShares   float64
	DividendPerShare float64
	PayPeriod        string // "month" or "year"
	OwnPeriod        float64
	TaxRate          float64
	DividendGrowth   float64
}

// DividendResult reports dividend income over the holding period. The four
// Total* fields cover the full tax × growth matrix so the caller can show
// all variants regardless of which optional inputs were supplied; the
// headline TotalDividend applies exactly the tax and growth given.
type DividendResult struct {
	Asset string

	// Totals over the whole holding period, across all shares.
	TotalDividend         float64 // with given tax and growth
	TotalWithTaxAndGrowth float64
	TotalWithTaxNoGrowth  float64
	TotalNoTaxWithGrowth  float64
	TotalNoTaxNoGrowth    float64

	// First-year yields against the share price, percent.
	DividendYield         float64 // pre-tax
	DividendYieldAfterTax float64

	// Whole-period yields against the initial investment, percent.
	TotalDividendYield      float64 // with given tax and growth
	TotalPeriodYieldWithTax float64
	TotalPeriodYieldNoTax   float64

	// TotalDividendYield spread evenly across the holding years, percent.
	AverageAnnualReturn float64
}

// growthTotalPerShare sums the per-share dividend over years of ownership
// with annual compounding: Σ annual × (1+g)^i. For g == 0 the geometric
// series degenerates to annual × years. Fractional holding periods use the
// closed form annual × ((1+g)^years − 1) / g, matching year-by-year
// accumulation exactly on whole years.
func growthTotalPerShare(annual, growthPct, years float64) float64 {
	if growthPct == 0 {
		return annual * years
	}
	g := growthPct / 100
	return annual * (math.Pow(1+g, years) - 1) / g
}

// Dividend computes dividend income, yield and average annual return for a
// position. The base annual dividend per share is DividendPerShare
// annualized (×12 when paid monthly). Tax removes TaxRate percent of every
// payment; growth compounds the payment DividendGrowth percent per year.
func Dividend(in DividendInput) (DividendResult, error) {
	if err := requirePositive("price_of_1_share", in.PriceOfShare); err != nil {
		return DividendResult{}, err
	}
	if err := requirePositive("number_of_shares", in.NumberOfShares); err != nil {
		return DividendResult{}, err
	}
	if err := requirePositive("div_per_1_share", in.DividendPerShare); err != nil {
		return DividendResult{}, err
	}
	if err := requirePositive("own_period", in.OwnPeriod); err != nil {
		return DividendResult{}, err
	}
	if in.PayPeriod != PayPeriodMonth && in.PayPeriod != PayPeriodYear {
		return DividendResult{}, invalid("pay_period", "must be month or year")
	}
	if err := requireNonNegative("tax_rate", in.TaxRate); err != nil {
		return DividendResult{}, err
	}
	if err := requireNonNegative("div_growth", in.DividendGrowth); err != nil {
		return DividendResult{}, err
	}

	periods := 1.0
	if in.PayPeriod == PayPeriodMonth {
		periods = 12
	}
	annualPerShare := in.DividendPerShare * periods
	afterTaxFactor := 1 - in.TaxRate/100
	investment := in.PriceOfShare * in.NumberOfShares

	flatPerShare := annualPerShare * in.OwnPeriod
	grownPerShare := growthTotalPerShare(annualPerShare, in.DividendGrowth, in.OwnPeriod)

	result := DividendResult{
		Asset:                 in.Asset,
		TotalNoTaxNoGrowth:    flatPerShare * in.NumberOfShares,
		TotalNoTaxWithGrowth:  grownPerShare * in.NumberOfShares,
		TotalWithTaxNoGrowth:  flatPerShare * afterTaxFactor * in.NumberOfShares,
		TotalWithTaxAndGrowth: grownPerShare * afterTaxFactor * in.NumberOfShares,
		DividendYield:         annualPerShare / in.PriceOfShare * 100,
		DividendYieldAfterTax: annualPerShare * afterTaxFactor / in.PriceOfShare * 100,
	}

	result.TotalDividend = result.TotalWithTaxAndGrowth
	result.TotalDividendYield = result.TotalDividend / investment * 100
	result.TotalPeriodYieldWithTax = result.TotalWithTaxAndGrowth / investment * 100
	result.TotalPeriodYieldNoTax = result.TotalNoTaxWithGrowth / investment * 100
	result.AverageAnnualReturn = result.TotalDividendYield / in.OwnPeriod

	return result, nil
}
