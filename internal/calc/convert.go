package calc

// ConvertInput converts an amount between two currencies quoted against
// USD. RateFrom and RateTo are the USD-based rates (units per 1 USD) for
// the source and target currency; the rate table itself is sourced
// externally, never computed here.
type ConvertInput struct {
	Amount       float64
	FromCurrency string
	ToAsset      string
	RateFrom     float64
	RateTo       float64
}

// ConvertResult is the converted amount plus the effective rate.
//
// ExchangeRate is quoted as target units per one source unit
// (1 FROM = rate TO), i.e. ConvertedAmount / Amount. The rate direction is
// fixed here once for the whole system.
type ConvertResult struct {
	Amount          float64
	FromCurrency    string
	ToAsset         string
	ConvertedAmount float64
	ExchangeRate    float64
}

// Convert crosses the amount through USD: amount / rate_from × rate_to.
func Convert(in ConvertInput) (ConvertResult, error) {
	if err := requirePositive("amount", in.Amount); err != nil {
		return ConvertResult{}, err
	}
	if err := requirePositive("rate_from", in.RateFrom); err != nil {
		return ConvertResult{}, err
	}
	if err := requirePositive("rate_to", in.RateTo); err != nil {
		return ConvertResult{}, err
	}

	converted := in.Amount / in.RateFrom * in.RateTo

	return ConvertResult{
		Amount:          in.Amount,
		FromCurrency:    in.FromCurrency,
		ToAsset:         in.ToAsset,
		ConvertedAmount: converted,
		ExchangeRate:    converted / in.Amount,
	}, nil
}
