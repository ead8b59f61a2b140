package calc

// MarginInput describes a prospective leveraged position.
type MarginInput struct {
	AssetType      string
	Pair           string
	PricePerShare  float64
	NumberOfShares float64
	Leverage       float64
}

// MarginResult reports the capital required to open the position.
// LiquidationPrice is the long-only approximation price × (1 − 1/leverage):
// the price at which the loss consumes the posted margin.
type MarginResult struct {
	AssetType        string
	Pair             string
	PricePerShare    float64
	NumberOfShares   float64
	Leverage         float64
	Volume           float64
	Margin           float64
	MarginPercentage float64
	LiquidationPrice float64
}

// Margin computes required margin for a leveraged position: the trade
// volume is price × shares, the margin is volume / leverage, and the
// margin percentage is 100 / leverage.
func Margin(in MarginInput) (MarginResult, error) {
	if err := requirePositive("price_per_1_share", in.PricePerShare); err != nil {
		return MarginResult{}, err
	}
	if err := requirePositive("number_of_shares", in.NumberOfShares); err != nil {
		return MarginResult{}, err
	}
	if err := requirePositive("leverage", in.Leverage); err != nil {
		return MarginResult{}, err
	}

	volume := in.PricePerShare * in.NumberOfShares

	return MarginResult{
		AssetType:        in.AssetType,
		Pair:             in.Pair,
		PricePerShare:    in.PricePerShare,
		NumberOfShares:   in.NumberOfShares,
		Leverage:         in.Leverage,
		Volume:           volume,
		Margin:           volume / in.Leverage,
		MarginPercentage: 100 / in.Leverage,
		LiquidationPrice: in.PricePerShare * (1 - 1/in.Leverage),
	}, nil
}
