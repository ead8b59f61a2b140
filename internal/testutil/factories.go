package testutil

import (
	"context"
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/repository"
)

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.New().String()
}

// MakeTitle generates a unique calculation title for testing.
//
// Example usage:
//
//	title := testutil.MakeTitle("BTC long")
//	// Returns: "BTC long ABC123"
func MakeTitle(base string) string {
	if base == "" {
		base = "Calculation"
	}
	return base + " " + randomAlphanumeric(6)
}

func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// ProfitLossBuilder provides a fluent interface for creating saved
// profit/loss calculations in tests.
//
// Example usage:
//
//	saved := testutil.NewProfitLoss().WithTitle("ETH swing").Build(t, db)
type ProfitLossBuilder struct {
	calc model.SavedProfitLoss
}

// NewProfitLoss creates a ProfitLossBuilder with sensible defaults:
// a spot trade of 2 units bought at 100 and sold at 110.
func NewProfitLoss() *ProfitLossBuilder {
	return &ProfitLossBuilder{calc: model.SavedProfitLoss{
		ID:              MakeID(),
		Title:           MakeTitle("Test PL"),
		CalculationDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		AssetType:       "crypto",
		Pair:            "BTCUSDT",
		OpenPrice:       100,
		ClosePrice:      110,
		Amount:          2,
		PositionSize:    200,
		ProfitLoss:      20,
		ProfitLossYield: 10,
	}}
}

// WithID sets a custom ID.
func (b *ProfitLossBuilder) WithID(id string) *ProfitLossBuilder {
	b.calc.ID = id
	return b
}

// WithTitle sets a custom title.
func (b *ProfitLossBuilder) WithTitle(title string) *ProfitLossBuilder {
	b.calc.Title = title
	return b
}

// WithDate sets a custom calculation date.
func (b *ProfitLossBuilder) WithDate(date time.Time) *ProfitLossBuilder {
	b.calc.CalculationDate = date
	return b
}

// Leveraged sets leverage and the margin that goes with it.
func (b *ProfitLossBuilder) Leveraged(leverage float64) *ProfitLossBuilder {
	b.calc.Leverage = leverage
	b.calc.Margin = b.calc.PositionSize / leverage
	b.calc.ProfitLoss = (b.calc.ClosePrice - b.calc.OpenPrice) * b.calc.Amount * leverage
	return b
}

// Build inserts the calculation and returns it.
func (b *ProfitLossBuilder) Build(t *testing.T, db *sql.DB) model.SavedProfitLoss {
	t.Helper()

	repo := repository.NewCalculationRepository(db)
	if err := repo.InsertProfitLoss(context.Background(), b.calc); err != nil {
		t.Fatalf("Failed to insert test pl_calculation: %v", err)
	}
	return b.calc
}

// DividendBuilder provides a fluent interface for creating saved dividend
// calculations in tests.
type DividendBuilder struct {
	calc model.SavedDividend
}

// NewDividend creates a DividendBuilder with sensible defaults:
// 10 shares at 100 paying 1 per share monthly over one year, no tax or growth.
func NewDividend() *DividendBuilder {
	return &DividendBuilder{calc: model.SavedDividend{
		ID:                  MakeID(),
		Title:               MakeTitle("Test Div"),
		CalculationDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Asset:               "KO",
		PriceOfShare:        100,
		NumberOfShares:      10,
		DividendPerShare:    1,
		PayPeriod:           "month",
		OwnPeriod:           1,
		TotalDividend:       120,
		DividendYield:       12,
		TotalDividendYield:  12,
		AverageAnnualReturn: 12,
	}}
}

// WithID sets a custom ID.
func (b *DividendBuilder) WithID(id string) *DividendBuilder {
	b.calc.ID = id
	return b
}

// WithTitle sets a custom title.
func (b *DividendBuilder) WithTitle(title string) *DividendBuilder {
	b.calc.Title = title
	return b
}

// Build inserts the calculation and returns it.
func (b *DividendBuilder) Build(t *testing.T, db *sql.DB) model.SavedDividend {
	t.Helper()

	repo := repository.NewCalculationRepository(db)
	if err := repo.InsertDividend(context.Background(), b.calc); err != nil {
		t.Fatalf("Failed to insert test div_calculation: %v", err)
	}
	return b.calc
}

// RiskRewardBuilder provides a fluent interface for creating saved
// risk/reward calculations in tests.
type RiskRewardBuilder struct {
	calc model.SavedRiskReward
}

// NewRiskReward creates a RiskRewardBuilder with sensible defaults:
// the 100/120/90 trade on a 1000 balance risking 2%.
func NewRiskReward() *RiskRewardBuilder {
	return &RiskRewardBuilder{calc: model.SavedRiskReward{
		ID:                 MakeID(),
		Title:              MakeTitle("Test RRR"),
		CalculationDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		OpenPrice:          100,
		TakeProfit:         120,
		StopLoss:           90,
		Balance:            1000,
		RiskPerTrade:       2,
		PositionSize:       2,
		PositionCost:       200,
		RiskRewardRatio:    2,
		ProfitPerShare:     20,
		RiskPerShare:       10,
		TotalProfit:        40,
		TotalRisk:          20,
		BalanceAfterProfit: 1040,
		BalanceAfterLoss:   980,
	}}
}

// WithID sets a custom ID.
func (b *RiskRewardBuilder) WithID(id string) *RiskRewardBuilder {
	b.calc.ID = id
	return b
}

// WithTitle sets a custom title.
func (b *RiskRewardBuilder) WithTitle(title string) *RiskRewardBuilder {
	b.calc.Title = title
	return b
}

// Build inserts the calculation and returns it.
func (b *RiskRewardBuilder) Build(t *testing.T, db *sql.DB) model.SavedRiskReward {
	t.Helper()

	repo := repository.NewCalculationRepository(db)
	if err := repo.InsertRiskReward(context.Background(), b.calc); err != nil {
		t.Fatalf("Failed to insert test rrr_calculation: %v", err)
	}
	return b.calc
}

// AssetBuilder provides a fluent interface for creating tracked assets in tests.
type AssetBuilder struct {
	asset model.Asset
}

// NewAsset creates an AssetBuilder holding half a BTC bought at 50000 USD.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{asset: model.Asset{
		ID:            MakeID(),
		Type:          model.AssetTypeCrypto,
		Symbol:        "BTC",
		Amount:        0.5,
		PricePerUnit:  50000,
		PriceCurrency: "USD",
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}
}

// WithSymbol sets a custom symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.asset.Symbol = symbol
	return b
}

// WithAmount sets a custom amount.
func (b *AssetBuilder) WithAmount(amount float64) *AssetBuilder {
	b.asset.Amount = amount
	return b
}

// Build inserts the asset and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	repo := repository.NewAssetRepository(db)
	if err := repo.InsertAsset(context.Background(), b.asset); err != nil {
		t.Fatalf("Failed to insert test asset: %v", err)
	}
	return b.asset
}
