package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/model"
)

// CalculationRepository provides data access methods for the three saved
// calculation tables (pl_calculation, div_calculation, rrr_calculation).
// Rows are immutable: there is no update path, only insert and delete.
type CalculationRepository struct {
	db *sql.DB
}

// NewCalculationRepository creates a new CalculationRepository with the provided database connection.
func NewCalculationRepository(db *sql.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

func (r *CalculationRepository) listSummaries(ctx context.Context, table, kind string) ([]model.CalculationSummary, error) {
	//#nosec G202 -- Safe: table names come from the fixed callers below, not from user input
	query := `
        SELECT id, title, calculation_date
        FROM ` + table + `
        ORDER BY calculation_date DESC, rowid DESC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s table: %w", table, err)
	}
	defer rows.Close()

	summaries := []model.CalculationSummary{}

	for rows.Next() {
		var s model.CalculationSummary

		err := rows.Scan(
			&s.CalculationID,
			&s.Title,
			&s.CalculationDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s table results: %w", table, err)
		}

		s.Type = kind
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s table: %w", table, err)
	}

	return summaries, nil
}

// ListProfitLoss retrieves summaries of all saved profit/loss calculations,
// newest first.
func (r *CalculationRepository) ListProfitLoss(ctx context.Context) ([]model.CalculationSummary, error) {
	return r.listSummaries(ctx, "pl_calculation", model.TypeProfitLoss)
}

// ListDividend retrieves summaries of all saved dividend calculations.
func (r *CalculationRepository) ListDividend(ctx context.Context) ([]model.CalculationSummary, error) {
	return r.listSummaries(ctx, "div_calculation", model.TypeDividend)
}

// ListRiskReward retrieves summaries of all saved risk/reward calculations.
func (r *CalculationRepository) ListRiskReward(ctx context.Context) ([]model.CalculationSummary, error) {
	return r.listSummaries(ctx, "rrr_calculation", model.TypeRiskReward)
}

// GetProfitLossOnID retrieves a single saved profit/loss calculation.
// Returns ErrCalculationNotFound if no record with the given ID exists.
func (r *CalculationRepository) GetProfitLossOnID(ctx context.Context, id string) (model.SavedProfitLoss, error) {
	query := `
        SELECT id, title, calculation_date, asset_type, pair,
               open_price, close_price, amount, volume, leverage,
               position_size, profit_loss, profit_loss_yield, margin
        FROM pl_calculation
        WHERE id = ?
    `

	var c model.SavedProfitLoss
	var date string
	var volume, leverage, margin sql.NullFloat64

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&date,
		&c.AssetType,
		&c.Pair,
		&c.OpenPrice,
		&c.ClosePrice,
		&c.Amount,
		&volume,
		&leverage,
		&c.PositionSize,
		&c.ProfitLoss,
		&c.ProfitLossYield,
		&margin,
	)
	if err == sql.ErrNoRows {
		return model.SavedProfitLoss{}, apperrors.ErrCalculationNotFound
	}
	if err != nil {
		return model.SavedProfitLoss{}, fmt.Errorf("failed to query pl_calculation: %w", err)
	}

	if c.CalculationDate, err = ParseTime(date); err != nil {
		return model.SavedProfitLoss{}, err
	}
	c.Volume = floatOrZero(volume)
	c.Leverage = floatOrZero(leverage)
	c.Margin = floatOrZero(margin)

	return c, nil
}

// InsertProfitLoss persists a profit/loss calculation. The caller assigns the ID.
func (r *CalculationRepository) InsertProfitLoss(ctx context.Context, c model.SavedProfitLoss) error {
	query := `
        INSERT INTO pl_calculation (
            id, title, calculation_date, asset_type, pair,
            open_price, close_price, amount, volume, leverage,
            position_size, profit_loss, profit_loss_yield, margin
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		c.CalculationDate.Format("2006-01-02"),
		c.AssetType,
		c.Pair,
		c.OpenPrice,
		c.ClosePrice,
		c.Amount,
		nullIfZero(c.Volume),
		nullIfZero(c.Leverage),
		c.PositionSize,
		c.ProfitLoss,
		c.ProfitLossYield,
		nullIfZero(c.Margin),
	)
	if err != nil {
		return fmt.Errorf("failed to insert pl_calculation: %w", err)
	}

	return nil
}

// GetDividendOnID retrieves a single saved dividend calculation.
// Returns ErrCalculationNotFound if no record with the given ID exists.
func (r *CalculationRepository) GetDividendOnID(ctx context.Context, id string) (model.SavedDividend, error) {
	query := `
        SELECT id, title, calculation_date, asset,
               price_of_1_share, number_of_shares, div_per_1_share,
               pay_period, own_period, tax_rate, div_growth,
               total_div, div_yield, total_div_yield, ave_ann_ret
        FROM div_calculation
        WHERE id = ?
    `

	var c model.SavedDividend
	var date string
	var taxRate, divGrowth sql.NullFloat64

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&date,
		&c.Asset,
		&c.PriceOfShare,
		&c.NumberOfShares,
		&c.DividendPerShare,
		&c.PayPeriod,
		&c.OwnPeriod,
		&taxRate,
		&divGrowth,
		&c.TotalDividend,
		&c.DividendYield,
		&c.TotalDividendYield,
		&c.AverageAnnualReturn,
	)
	if err == sql.ErrNoRows {
		return model.SavedDividend{}, apperrors.ErrCalculationNotFound
	}
	if err != nil {
		return model.SavedDividend{}, fmt.Errorf("failed to query div_calculation: %w", err)
	}

	if c.CalculationDate, err = ParseTime(date); err != nil {
		return model.SavedDividend{}, err
	}
	c.TaxRate = floatOrZero(taxRate)
	c.DividendGrowth = floatOrZero(divGrowth)

	return c, nil
}

// InsertDividend persists a dividend calculation. The caller assigns the ID.
func (r *CalculationRepository) InsertDividend(ctx context.Context, c model.SavedDividend) error {
	query := `
        INSERT INTO div_calculation (
            id, title, calculation_date, asset,
            price_of_1_share, number_of_shares, div_per_1_share,
            pay_period, own_period, tax_rate, div_growth,
            total_div, div_yield, total_div_yield, ave_ann_ret
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		c.CalculationDate.Format("2006-01-02"),
		c.Asset,
		c.PriceOfShare,
		c.NumberOfShares,
		c.DividendPerShare,
		c.PayPeriod,
		c.OwnPeriod,
		nullIfZero(c.TaxRate),
		nullIfZero(c.DividendGrowth),
		c.TotalDividend,
		c.DividendYield,
		c.TotalDividendYield,
		c.AverageAnnualReturn,
	)
	if err != nil {
		return fmt.Errorf("failed to insert div_calculation: %w", err)
	}

	return nil
}

// GetRiskRewardOnID retrieves a single saved risk/reward calculation.
// Returns ErrCalculationNotFound if no record with the given ID exists.
func (r *CalculationRepository) GetRiskRewardOnID(ctx context.Context, id string) (model.SavedRiskReward, error) {
	query := `
        SELECT id, title, calculation_date,
               open_price, take_profit, stop_loss, balance, risk_per_trade,
               position_size, position_cost, rrr,
               profit_per_share, risk_per_share, total_profit, total_risk,
               balance_after_profit, balance_after_loss
        FROM rrr_calculation
        WHERE id = ?
    `

	var c model.SavedRiskReward
	var date string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Title,
		&date,
		&c.OpenPrice,
		&c.TakeProfit,
		&c.StopLoss,
		&c.Balance,
		&c.RiskPerTrade,
		&c.PositionSize,
		&c.PositionCost,
		&c.RiskRewardRatio,
		&c.ProfitPerShare,
		&c.RiskPerShare,
		&c.TotalProfit,
		&c.TotalRisk,
		&c.BalanceAfterProfit,
		&c.BalanceAfterLoss,
	)
	if err == sql.ErrNoRows {
		return model.SavedRiskReward{}, apperrors.ErrCalculationNotFound
	}
	if err != nil {
		return model.SavedRiskReward{}, fmt.Errorf("failed to query rrr_calculation: %w", err)
	}

	if c.CalculationDate, err = ParseTime(date); err != nil {
		return model.SavedRiskReward{}, err
	}

	return c, nil
}

// InsertRiskReward persists a risk/reward calculation. The caller assigns the ID.
func (r *CalculationRepository) InsertRiskReward(ctx context.Context, c model.SavedRiskReward) error {
	query := `
        INSERT INTO rrr_calculation (
            id, title, calculation_date,
            open_price, take_profit, stop_loss, balance, risk_per_trade,
            position_size, position_cost, rrr,
            profit_per_share, risk_per_share, total_profit, total_risk,
            balance_after_profit, balance_after_loss
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		c.CalculationDate.Format("2006-01-02"),
		c.OpenPrice,
		c.TakeProfit,
		c.StopLoss,
		c.Balance,
		c.RiskPerTrade,
		c.PositionSize,
		c.PositionCost,
		c.RiskRewardRatio,
		c.ProfitPerShare,
		c.RiskPerShare,
		c.TotalProfit,
		c.TotalRisk,
		c.BalanceAfterProfit,
		c.BalanceAfterLoss,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rrr_calculation: %w", err)
	}

	return nil
}

func (r *CalculationRepository) deleteOnID(ctx context.Context, table, id string) error {
	//#nosec G202 -- Safe: table names come from the fixed callers below, not from user input
	query := `DELETE FROM ` + table + ` WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrCalculationNotFound
	}

	return nil
}

// DeleteProfitLoss removes a saved profit/loss calculation by its ID.
// Returns ErrCalculationNotFound if no record with the given ID exists.
func (r *CalculationRepository) DeleteProfitLoss(ctx context.Context, id string) error {
	return r.deleteOnID(ctx, "pl_calculation", id)
}

// DeleteDividend removes a saved dividend calculation by its ID.
func (r *CalculationRepository) DeleteDividend(ctx context.Context, id string) error {
	return r.deleteOnID(ctx, "div_calculation", id)
}

// DeleteRiskReward removes a saved risk/reward calculation by its ID.
func (r *CalculationRepository) DeleteRiskReward(ctx context.Context, id string) error {
	return r.deleteOnID(ctx, "rrr_calculation", id)
}
