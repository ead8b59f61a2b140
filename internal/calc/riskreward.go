package calc

import (
	"fmt"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
)

// RiskRewardInput describes a planned long trade sized from account risk.
// RiskPerTrade is the percentage of the balance put at risk.
type RiskRewardInput struct {
	OpenPrice    float64
	TakeProfit   float64
	StopLoss     float64
	Balance      float64
	RiskPerTrade float64
}

// RiskRewardResult reports position sizing and the risk/reward ratio.
type RiskRewardResult struct {
	OpenPrice          float64
	TakeProfit         float64
	StopLoss           float64
	Balance            float64
	RiskPerTrade       float64
	PositionSize       float64
	PositionCost       float64
	RiskRewardRatio    float64
	ProfitPerShare     float64
	RiskPerShare       float64
	TotalProfit        float64
	TotalRisk          float64
	BalanceAfterProfit float64
	BalanceAfterLoss   float64
}

// RiskReward sizes a trade from the risk budget. The precondition
// stop_loss < open_price < take_profit is enforced before computation.
// The position size is total risk / risk per share, so by construction
// total_profit / total_risk equals the risk/reward ratio.
func RiskReward(in RiskRewardInput) (RiskRewardResult, error) {
	if err := requirePositive("open_price", in.OpenPrice); err != nil {
		return RiskRewardResult{}, err
	}
	if err := requirePositive("take_profit", in.TakeProfit); err != nil {
		return RiskRewardResult{}, err
	}
	if err := requirePositive("stop_loss", in.StopLoss); err != nil {
		return RiskRewardResult{}, err
	}
	if err := requirePositive("balance", in.Balance); err != nil {
		return RiskRewardResult{}, err
	}
	if err := requirePositive("risk_per_trade", in.RiskPerTrade); err != nil {
		return RiskRewardResult{}, err
	}
	if in.StopLoss >= in.OpenPrice {
		return RiskRewardResult{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, apperrors.ErrStopLossAboveOpen)
	}
	if in.TakeProfit <= in.OpenPrice {
		return RiskRewardResult{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, apperrors.ErrTakeProfitBelowOpen)
	}

	riskPerShare := in.OpenPrice - in.StopLoss
	profitPerShare := in.TakeProfit - in.OpenPrice
	totalRisk := in.Balance * in.RiskPerTrade / 100
	positionSize := totalRisk / riskPerShare
	totalProfit := positionSize * profitPerShare

	return RiskRewardResult{
		OpenPrice:          in.OpenPrice,
		TakeProfit:         in.TakeProfit,
		StopLoss:           in.StopLoss,
		Balance:            in.Balance,
		RiskPerTrade:       in.RiskPerTrade,
		PositionSize:       positionSize,
		PositionCost:       positionSize * in.OpenPrice,
		RiskRewardRatio:    profitPerShare / riskPerShare,
		ProfitPerShare:     profitPerShare,
		RiskPerShare:       riskPerShare,
		TotalProfit:        totalProfit,
		TotalRisk:          totalRisk,
		BalanceAfterProfit: in.Balance + totalProfit,
		BalanceAfterLoss:   in.Balance - totalRisk,
	}, nil
}
