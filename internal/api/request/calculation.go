// Package request defines the JSON payloads accepted by the API.
package request

// ProfitLossRequest is the body of POST /calculate_profit_loss. Volume and
// Leverage are optional; zero means "not used".
type ProfitLossRequest struct {
	AssetType  string  `json:"asset_type"`
	Pair       string  `json:"pair"`
	OpenPrice  float64 `json:"open_price"`
	ClosePrice float64 `json:"close_price"`
	Amount     float64 `json:"amount"`
	Volume     float64 `json:"volume"`
	Leverage   float64 `json:"leverage"`
}

// DividendRequest is the body of POST /dividend. TaxRate and DividendGrowth
// are optional percentages.
type DividendRequest struct {
	Asset            string  `json:"asset"`
	PriceOfShare     float64 `json:"price_of_1_share"`
	NumberOfShares   float64 `json:"number_of_shares"`
	DividendPerShare float64 `json:"div_per_1_share"`
	PayPeriod        string  `json:"pay_period"`
	OwnPeriod        float64 `json:"own_period"`
	TaxRate          float64 `json:"tax_rate"`
	DividendGrowth   float64 `json:"div_growth"`
}

// MarginRequest is the body of POST /margin.
type MarginRequest struct {
	AssetType      string  `json:"asset_type"`
	Pair           string  `json:"pair"`
	PricePerShare  float64 `json:"price_per_1_share"`
	NumberOfShares float64 `json:"number_of_shares"`
	Leverage       float64 `json:"leverage"`
}

// RiskRewardRequest is the body of POST /rrr.
type RiskRewardRequest struct {
	OpenPrice    float64 `json:"open_price"`
	TakeProfit   float64 `json:"take_profit"`
	StopLoss     float64 `json:"stop_loss"`
	Balance      float64 `json:"balance"`
	RiskPerTrade float64 `json:"risk_per_trade"`
}

// ConvertRequest is the body of POST /calculate_conversion. Currencies are
// ISO codes from the USD-based rate table.
type ConvertRequest struct {
	Amount       float64 `json:"amount"`
	FromCurrency string  `json:"from_currency"`
	ToAsset      string  `json:"to_asset"`
}

// SaveProfitLossRequest is the body of POST /save_pl: the calculation
// inputs plus a display title.
type SaveProfitLossRequest struct {
	Title string `json:"title"`
	ProfitLossRequest
}

// SaveDividendRequest is the body of POST /save_div.
type SaveDividendRequest struct {
	Title string `json:"title"`
	DividendRequest
}

// SaveRiskRewardRequest is the body of POST /save_rrr.
type SaveRiskRewardRequest struct {
	Title string `json:"title"`
	RiskRewardRequest
}

// DeleteCalculationRequest is the body of POST /delete_pl, /delete_div and
// /delete_rrr.
type DeleteCalculationRequest struct {
	CalculationID string `json:"calculation_id"`
}
