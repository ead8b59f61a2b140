package calc

// ProfitLossInput carries a closed (or hypothetical) trade. Volume is the
// forex lot multiplier and Leverage the borrowed-capital factor; both are
// optional and zero means "not used". AssetType and Pair are echoes kept
// for display, they do not influence the arithmetic.
type ProfitLossInput struct {
	AssetType  string
	Pair       string
	OpenPrice  float64
	ClosePrice float64
	Amount     float64
	Volume     float64
	Leverage   float64
}

// ProfitLossResult is the derived outcome of a trade.
type ProfitLossResult struct {
	AssetType       string
	Pair            string
	OpenPrice       float64
	ClosePrice      float64
	Amount          float64
	Volume          float64
	Leverage        float64
	PositionSize    float64
	ProfitLoss      float64
	ProfitLossYield float64
	Margin          float64
}

// ProfitLoss computes the monetary outcome of a trade.
//
// The position size is the unleveraged exposure open × amount (× volume for
// lot-based instruments). The profit/loss is the price move times the
// quantity, scaled by leverage when leverage is used; its sign always
// matches the sign of close − open. The yield is the profit relative to the
// position size, and for leveraged trades the margin is the capital
// actually locked: position size / leverage.
func ProfitLoss(in ProfitLossInput) (ProfitLossResult, error) {
	if err := requirePositive("open_price", in.OpenPrice); err != nil {
		return ProfitLossResult{}, err
	}
	if err := requirePositive("close_price", in.ClosePrice); err != nil {
		return ProfitLossResult{}, err
	}
	if err := requirePositive("amount", in.Amount); err != nil {
		return ProfitLossResult{}, err
	}
	if err := requireNonNegative("volume", in.Volume); err != nil {
		return ProfitLossResult{}, err
	}
	if err := requireNonNegative("leverage", in.Leverage); err != nil {
		return ProfitLossResult{}, err
	}

	quantity := in.Amount
	if in.Volume > 0 {
		quantity *= in.Volume
	}
	leverage := in.Leverage
	if leverage == 0 {
		leverage = 1
	}

	positionSize := in.OpenPrice * quantity
	profitLoss := (in.ClosePrice - in.OpenPrice) * quantity * leverage

	result := ProfitLossResult{
		AssetType:       in.AssetType,
		Pair:            in.Pair,
		OpenPrice:       in.OpenPrice,
		ClosePrice:      in.ClosePrice,
		Amount:          in.Amount,
		Volume:          in.Volume,
		Leverage:        in.Leverage,
		PositionSize:    positionSize,
		ProfitLoss:      profitLoss,
		ProfitLossYield: profitLoss / positionSize * 100,
	}
	if in.Leverage > 0 {
		result.Margin = positionSize / in.Leverage
	}

	return result, nil
}
