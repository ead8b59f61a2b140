package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Verderen/MoneyHiver/internal/api/request"
	"github.com/Verderen/MoneyHiver/internal/api/response"
	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/calc"
	"github.com/Verderen/MoneyHiver/internal/service"
)

// CalculatorHandler handles the stateless calculator endpoints. Every
// endpoint runs the calculation engine on the submitted inputs and responds
// {status: "success", result: {...}} without persisting anything.
type CalculatorHandler struct {
	quoteService *service.QuoteService
}

// NewCalculatorHandler creates a new CalculatorHandler. The quote service
// supplies the USD rate table for currency conversion.
func NewCalculatorHandler(quoteService *service.QuoteService) *CalculatorHandler {
	return &CalculatorHandler{
		quoteService: quoteService,
	}
}

func respondResult(w http.ResponseWriter, result interface{}) {
	response.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"result": result,
	})
}

func respondCalcError(w http.ResponseWriter, err error) {
	response.RespondError(w, statusForError(err), err.Error(), nil)
}

// ProfitLossResult is the wire form of a profit/loss calculation.
type ProfitLossResult struct {
	AssetType       string  `json:"asset_type"`
	Pair            string  `json:"pair"`
	OpenPrice       float64 `json:"open_price"`
	ClosePrice      float64 `json:"close_price"`
	Amount          float64 `json:"amount"`
	Volume          float64 `json:"volume,omitempty"`
	Leverage        float64 `json:"leverage,omitempty"`
	PositionSize    float64 `json:"position_size"`
	ProfitLoss      float64 `json:"profit_loss"`
	ProfitLossYield float64 `json:"profit_loss_yield"`
	Margin          float64 `json:"margin,omitempty"`
}

func toProfitLossResult(r calc.ProfitLossResult) ProfitLossResult {
	return ProfitLossResult{
		AssetType:       r.AssetType,
		Pair:            r.Pair,
		OpenPrice:       r.OpenPrice,
		ClosePrice:      r.ClosePrice,
		Amount:          r.Amount,
		Volume:          r.Volume,
		Leverage:        r.Leverage,
		PositionSize:    r.PositionSize,
		ProfitLoss:      r.ProfitLoss,
		ProfitLossYield: r.ProfitLossYield,
		Margin:          r.Margin,
	}
}

// ProfitLoss handles POST /calculate_profit_loss.
func (h *CalculatorHandler) ProfitLoss(w http.ResponseWriter, r *http.Request) {
	var req request.ProfitLossRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Pair) == "" {
		respondCalcError(w, fmt.Errorf("%w: fill in the pair/stock symbol", apperrors.ErrInvalidInput))
		return
	}

	result, err := calc.ProfitLoss(calc.ProfitLossInput{
		AssetType:  req.AssetType,
		Pair:       req.Pair,
		OpenPrice:  req.OpenPrice,
		ClosePrice: req.ClosePrice,
		Amount:     req.Amount,
		Volume:     req.Volume,
		Leverage:   req.Leverage,
	})
	if err != nil {
		respondCalcError(w, err)
		return
	}

	respondResult(w, toProfitLossResult(result))
}

// DividendResult is the wire form of a dividend calculation, covering the
// full tax and growth matrix so the dashboard can show every variant.
type DividendResult struct {
	Asset                   string  `json:"asset"`
	TotalDividend           float64 `json:"total_div"`
	TotalWithTaxAndGrowth   float64 `json:"total_div_tax_growth"`
	TotalWithTaxNoGrowth    float64 `json:"total_div_tax"`
	TotalNoTaxWithGrowth    float64 `json:"total_div_growth"`
	TotalNoTaxNoGrowth      float64 `json:"total_div_plain"`
	DividendYield           float64 `json:"div_yield"`
	DividendYieldAfterTax   float64 `json:"div_yield_after_tax"`
	TotalDividendYield      float64 `json:"total_div_yield"`
	TotalPeriodYieldWithTax float64 `json:"total_period_yield_with_tax"`
	TotalPeriodYieldNoTax   float64 `json:"total_period_yield_no_tax"`
	AverageAnnualReturn     float64 `json:"ave_ann_ret"`
}

func toDividendResult(r calc.DividendResult) DividendResult {
	return DividendResult{
		Asset:                   r.Asset,
		TotalDividend:           r.TotalDividend,
		TotalWithTaxAndGrowth:   r.TotalWithTaxAndGrowth,
		TotalWithTaxNoGrowth:    r.TotalWithTaxNoGrowth,
		TotalNoTaxWithGrowth:    r.TotalNoTaxWithGrowth,
		TotalNoTaxNoGrowth:      r.TotalNoTaxNoGrowth,
		DividendYield:           r.DividendYield,
		DividendYieldAfterTax:   r.DividendYieldAfterTax,
		TotalDividendYield:      r.TotalDividendYield,
		TotalPeriodYieldWithTax: r.TotalPeriodYieldWithTax,
		TotalPeriodYieldNoTax:   r.TotalPeriodYieldNoTax,
		AverageAnnualReturn:     r.AverageAnnualReturn,
	}
}

// Dividend handles POST /dividend.
func (h *CalculatorHandler) Dividend(w http.ResponseWriter, r *http.Request) {
	var req request.DividendRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := calc.Dividend(calc.DividendInput{
		Asset:            req.Asset,
		PriceOfShare:     req.PriceOfShare,
		NumberOfShares:   req.NumberOfShares,
		DividendPerShare: req.DividendPerShare,
		PayPeriod:        req.PayPeriod,
		OwnPeriod:        req.OwnPeriod,
		TaxRate:          req.TaxRate,
		DividendGrowth:   req.DividendGrowth,
	})
	if err != nil {
		respondCalcError(w, err)
		return
	}

	respondResult(w, toDividendResult(result))
}

// MarginResult is the wire form of a margin calculation.
type MarginResult struct {
	AssetType        string  `json:"asset_type"`
	Pair             string  `json:"pair"`
	PricePerShare    float64 `json:"price_per_1_share"`
	NumberOfShares   float64 `json:"number_of_shares"`
	Leverage         float64 `json:"leverage"`
	Volume           float64 `json:"volume"`
	Margin           float64 `json:"margin"`
	MarginPercentage float64 `json:"margin_percentage"`
	LiquidationPrice float64 `json:"liquidation_price"`
}

// Margin handles POST /margin.
func (h *CalculatorHandler) Margin(w http.ResponseWriter, r *http.Request) {
	var req request.MarginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := calc.Margin(calc.MarginInput{
		AssetType:      req.AssetType,
		Pair:           req.Pair,
		PricePerShare:  req.PricePerShare,
		NumberOfShares: req.NumberOfShares,
		Leverage:       req.Leverage,
	})
	if err != nil {
		respondCalcError(w, err)
		return
	}

	respondResult(w, MarginResult{
		AssetType:        result.AssetType,
		Pair:             result.Pair,
		PricePerShare:    result.PricePerShare,
		NumberOfShares:   result.NumberOfShares,
		Leverage:         result.Leverage,
		Volume:           result.Volume,
		Margin:           result.Margin,
		MarginPercentage: result.MarginPercentage,
		LiquidationPrice: result.LiquidationPrice,
	})
}

// RiskRewardResult is the wire form of a risk/reward calculation.
type RiskRewardResult struct {
	OpenPrice          float64 `json:"open_price"`
	TakeProfit         float64 `json:"take_profit"`
	StopLoss           float64 `json:"stop_loss"`
	Balance            float64 `json:"balance"`
	RiskPerTrade       float64 `json:"risk_per_trade"`
	PositionSize       float64 `json:"position_size"`
	PositionCost       float64 `json:"position_cost"`
	RiskRewardRatio    float64 `json:"rrr"`
	ProfitPerShare     float64 `json:"profit_per_share"`
	RiskPerShare       float64 `json:"risk_per_share"`
	TotalProfit        float64 `json:"total_profit"`
	TotalRisk          float64 `json:"total_risk"`
	BalanceAfterProfit float64 `json:"balance_after_profit"`
	BalanceAfterLoss   float64 `json:"balance_after_loss"`
}

func toRiskRewardResult(r calc.RiskRewardResult) RiskRewardResult {
	return RiskRewardResult{
		OpenPrice:          r.OpenPrice,
		TakeProfit:         r.TakeProfit,
		StopLoss:           r.StopLoss,
		Balance:            r.Balance,
		RiskPerTrade:       r.RiskPerTrade,
		PositionSize:       r.PositionSize,
		PositionCost:       r.PositionCost,
		RiskRewardRatio:    r.RiskRewardRatio,
		ProfitPerShare:     r.ProfitPerShare,
		RiskPerShare:       r.RiskPerShare,
		TotalProfit:        r.TotalProfit,
		TotalRisk:          r.TotalRisk,
		BalanceAfterProfit: r.BalanceAfterProfit,
		BalanceAfterLoss:   r.BalanceAfterLoss,
	}
}

// RiskReward handles POST /rrr.
func (h *CalculatorHandler) RiskReward(w http.ResponseWriter, r *http.Request) {
	var req request.RiskRewardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := calc.RiskReward(calc.RiskRewardInput{
		OpenPrice:    req.OpenPrice,
		TakeProfit:   req.TakeProfit,
		StopLoss:     req.StopLoss,
		Balance:      req.Balance,
		RiskPerTrade: req.RiskPerTrade,
	})
	if err != nil {
		respondCalcError(w, err)
		return
	}

	respondResult(w, toRiskRewardResult(result))
}

// ConvertResult is the wire form of a currency conversion.
type ConvertResult struct {
	Amount          float64 `json:"amount"`
	FromCurrency    string  `json:"from_currency"`
	ToAsset         string  `json:"to_asset"`
	ConvertedAmount float64 `json:"converted_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
}

// Convert handles POST /calculate_conversion. Rates come from the currency
// snapshot, so conversions work even while the provider is down.
func (h *CalculatorHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req request.ConvertRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rates, err := h.quoteService.UsdRates(r.Context())
	if err != nil {
		respondCalcError(w, err)
		return
	}

	from := strings.ToUpper(strings.TrimSpace(req.FromCurrency))
	to := strings.ToUpper(strings.TrimSpace(req.ToAsset))

	rateFrom, okFrom := rates[from]
	rateTo, okTo := rates[to]
	if !okFrom {
		respondCalcError(w, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotSupported, from))
		return
	}
	if !okTo {
		respondCalcError(w, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotSupported, to))
		return
	}

	result, err := calc.Convert(calc.ConvertInput{
		Amount:       req.Amount,
		FromCurrency: from,
		ToAsset:      to,
		RateFrom:     rateFrom,
		RateTo:       rateTo,
	})
	if err != nil {
		respondCalcError(w, err)
		return
	}

	respondResult(w, ConvertResult{
		Amount:          result.Amount,
		FromCurrency:    result.FromCurrency,
		ToAsset:         result.ToAsset,
		ConvertedAmount: result.ConvertedAmount,
		ExchangeRate:    result.ExchangeRate,
	})
}
