package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/calc"
	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/repository"
)

// CalculationService handles the saved-calculation lifecycle: it runs the
// calculation engine on submitted inputs and persists inputs plus derived
// results as one immutable row. Saved rows replay without recomputation.
type CalculationService struct {
	calculationRepo *repository.CalculationRepository
	now             func() time.Time
}

// NewCalculationService creates a new CalculationService with the provided repository.
func NewCalculationService(calculationRepo *repository.CalculationRepository) *CalculationService {
	return &CalculationService{
		calculationRepo: calculationRepo,
		now:             time.Now,
	}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.ErrInvalidInput
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return apperrors.ErrEmptyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidUUID
	}
	return nil
}

// SaveProfitLoss computes and persists a profit/loss calculation.
func (s *CalculationService) SaveProfitLoss(ctx context.Context, title string, in calc.ProfitLossInput) (model.SavedProfitLoss, error) {
	if err := validateTitle(title); err != nil {
		return model.SavedProfitLoss{}, err
	}

	result, err := calc.ProfitLoss(in)
	if err != nil {
		return model.SavedProfitLoss{}, err
	}

	saved := model.SavedProfitLoss{
		ID:              uuid.New().String(),
		Title:           strings.TrimSpace(title),
		CalculationDate: s.now().UTC(),
		AssetType:       result.AssetType,
		Pair:            result.Pair,
		OpenPrice:       result.OpenPrice,
		ClosePrice:      result.ClosePrice,
		Amount:          result.Amount,
		Volume:          result.Volume,
		Leverage:        result.Leverage,
		PositionSize:    result.PositionSize,
		ProfitLoss:      result.ProfitLoss,
		ProfitLossYield: result.ProfitLossYield,
		Margin:          result.Margin,
	}

	if err := s.calculationRepo.InsertProfitLoss(ctx, saved); err != nil {
		return model.SavedProfitLoss{}, err
	}

	return saved, nil
}

// SaveDividend computes and persists a dividend calculation.
func (s *CalculationService) SaveDividend(ctx context.Context, title string, in calc.DividendInput) (model.SavedDividend, error) {
	if err := validateTitle(title); err != nil {
		return model.SavedDividend{}, err
	}

	result, err := calc.Dividend(in)
	if err != nil {
		return model.SavedDividend{}, err
	}

	saved := model.SavedDividend{
		ID:                  uuid.New().String(),
		Title:               strings.TrimSpace(title),
		CalculationDate:     s.now().UTC(),
		Asset:               result.Asset,
		PriceOfShare:        in.PriceOfShare,
		NumberOfShares:      in.NumberOfShares,
		DividendPerShare:    in.DividendPerShare,
		PayPeriod:           in.PayPeriod,
		OwnPeriod:           in.OwnPeriod,
		TaxRate:             in.TaxRate,
		DividendGrowth:      in.DividendGrowth,
		TotalDividend:       result.TotalDividend,
		DividendYield:       result.DividendYield,
		TotalDividendYield:  result.TotalDividendYield,
		AverageAnnualReturn: result.AverageAnnualReturn,
	}

	if err := s.calculationRepo.InsertDividend(ctx, saved); err != nil {
		return model.SavedDividend{}, err
	}

	return saved, nil
}

// SaveRiskReward computes and persists a risk/reward calculation.
func (s *CalculationService) SaveRiskReward(ctx context.Context, title string, in calc.RiskRewardInput) (model.SavedRiskReward, error) {
	if err := validateTitle(title); err != nil {
		return model.SavedRiskReward{}, err
	}

	result, err := calc.RiskReward(in)
	if err != nil {
		return model.SavedRiskReward{}, err
	}

	saved := model.SavedRiskReward{
		ID:                 uuid.New().String(),
		Title:              strings.TrimSpace(title),
		CalculationDate:    s.now().UTC(),
		OpenPrice:          result.OpenPrice,
		TakeProfit:         result.TakeProfit,
		StopLoss:           result.StopLoss,
		Balance:            result.Balance,
		RiskPerTrade:       result.RiskPerTrade,
		PositionSize:       result.PositionSize,
		PositionCost:       result.PositionCost,
		RiskRewardRatio:    result.RiskRewardRatio,
		ProfitPerShare:     result.ProfitPerShare,
		RiskPerShare:       result.RiskPerShare,
		TotalProfit:        result.TotalProfit,
		TotalRisk:          result.TotalRisk,
		BalanceAfterProfit: result.BalanceAfterProfit,
		BalanceAfterLoss:   result.BalanceAfterLoss,
	}

	if err := s.calculationRepo.InsertRiskReward(ctx, saved); err != nil {
		return model.SavedRiskReward{}, err
	}

	return saved, nil
}

// ListProfitLoss retrieves summaries of all saved profit/loss calculations.
func (s *CalculationService) ListProfitLoss(ctx context.Context) ([]model.CalculationSummary, error) {
	return s.calculationRepo.ListProfitLoss(ctx)
}

// ListDividend retrieves summaries of all saved dividend calculations.
func (s *CalculationService) ListDividend(ctx context.Context) ([]model.CalculationSummary, error) {
	return s.calculationRepo.ListDividend(ctx)
}

// ListRiskReward retrieves summaries of all saved risk/reward calculations.
func (s *CalculationService) ListRiskReward(ctx context.Context) ([]model.CalculationSummary, error) {
	return s.calculationRepo.ListRiskReward(ctx)
}

// GetProfitLoss retrieves one saved profit/loss calculation by ID.
func (s *CalculationService) GetProfitLoss(ctx context.Context, id string) (model.SavedProfitLoss, error) {
	if err := validateID(id); err != nil {
		return model.SavedProfitLoss{}, err
	}
	return s.calculationRepo.GetProfitLossOnID(ctx, id)
}

// GetDividend retrieves one saved dividend calculation by ID.
func (s *CalculationService) GetDividend(ctx context.Context, id string) (model.SavedDividend, error) {
	if err := validateID(id); err != nil {
		return model.SavedDividend{}, err
	}
	return s.calculationRepo.GetDividendOnID(ctx, id)
}

// GetRiskReward retrieves one saved risk/reward calculation by ID.
func (s *CalculationService) GetRiskReward(ctx context.Context, id string) (model.SavedRiskReward, error) {
	if err := validateID(id); err != nil {
		return model.SavedRiskReward{}, err
	}
	return s.calculationRepo.GetRiskRewardOnID(ctx, id)
}

// DeleteProfitLoss removes one saved profit/loss calculation by ID.
// A rejected delete leaves stored state unchanged.
func (s *CalculationService) DeleteProfitLoss(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.calculationRepo.DeleteProfitLoss(ctx, id)
}

// DeleteDividend removes one saved dividend calculation by ID.
func (s *CalculationService) DeleteDividend(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.calculationRepo.DeleteDividend(ctx, id)
}

// DeleteRiskReward removes one saved risk/reward calculation by ID.
func (s *CalculationService) DeleteRiskReward(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.calculationRepo.DeleteRiskReward(ctx, id)
}
