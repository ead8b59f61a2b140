package model

import "time"

// Calculation type tags. Each tag owns one table and one set of
// list/detail/save/delete endpoints.
const (
	TypeProfitLoss = "pl"
	TypeDividend   = "div"
	TypeRiskReward = "rrr"
)

// ValidType reports whether t is one of the known calculation type tags.
func ValidType(t string) bool {
	return t == TypeProfitLoss || t == TypeDividend || t == TypeRiskReward
}

// CalculationSummary is the list-view projection of a saved calculation.
// The wire field names mirror what the dashboard history panels consume.
type CalculationSummary struct {
	CalculationID   string `json:"calculation_id"`
	Title           string `json:"title"`
	CalculationDate string `json:"calculation_date"` // YYYY-MM-DD
	Type            string `json:"type"`
}

// SavedProfitLoss is a persisted profit/loss calculation: the submitted
// inputs plus the derived result fields. Rows are immutable once created.
type SavedProfitLoss struct {
	ID              string    `json:"calculation_id"`
	Title           string    `json:"title"`
	CalculationDate time.Time `json:"calculation_date"`
	AssetType       string    `json:"asset_type"`
	Pair            string    `json:"pair"`
	OpenPrice       float64   `json:"open_price"`
	ClosePrice      float64   `json:"close_price"`
	Amount          float64   `json:"amount"`
	Volume          float64   `json:"volume,omitempty"`
	Leverage        float64   `json:"leverage,omitempty"`
	PositionSize    float64   `json:"position_size"`
	ProfitLoss      float64   `json:"profit_loss"`
	ProfitLossYield float64   `json:"profit_loss_yield"`
	Margin          float64   `json:"margin,omitempty"`
}

// SavedDividend is a persisted dividend calculation.
type SavedDividend struct {
	ID                  string    `json:"calculation_id"`
	Title               string    `json:"title"`
	CalculationDate     time.Time `json:"calculation_date"`
	Asset               string    `json:"asset"`
	PriceOfShare        float64   `json:"price_of_1_share"`
	NumberOfShares      float64   `json:"number_of_shares"`
	DividendPerShare    float64   `json:"div_per_1_share"`
	PayPeriod           string    `json:"pay_period"`
	OwnPeriod           float64   `json:"own_period"`
	TaxRate             float64   `json:"tax_rate,omitempty"`
	DividendGrowth      float64   `json:"div_growth,omitempty"`
	TotalDividend       float64   `json:"total_div"`
	DividendYield       float64   `json:"div_yield"`
	TotalDividendYield  float64   `json:"total_div_yield"`
	AverageAnnualReturn float64   `json:"ave_ann_ret"`
}

// SavedRiskReward is a persisted risk/reward calculation.
type SavedRiskReward struct {
	ID                 string    `json:"calculation_id"`
	Title              string    `json:"title"`
	CalculationDate    time.Time `json:"calculation_date"`
	OpenPrice          float64   `json:"open_price"`
	TakeProfit         float64   `json:"take_profit"`
	StopLoss           float64   `json:"stop_loss"`
	Balance            float64   `json:"balance"`
	RiskPerTrade       float64   `json:"risk_per_trade"`
	PositionSize       float64   `json:"position_size"`
	PositionCost       float64   `json:"position_cost"`
	RiskRewardRatio    float64   `json:"rrr"`
	ProfitPerShare     float64   `json:"profit_per_share"`
	RiskPerShare       float64   `json:"risk_per_share"`
	TotalProfit        float64   `json:"total_profit"`
	TotalRisk          float64   `json:"total_risk"`
	BalanceAfterProfit float64   `json:"balance_after_profit"`
	BalanceAfterLoss   float64   `json:"balance_after_loss"`
}
