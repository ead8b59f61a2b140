package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/model"
)

// AssetRepository provides data access methods for the asset table.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// GetAssets retrieves all tracked assets, newest first.
// Returns an empty slice if no assets exist.
func (r *AssetRepository) GetAssets(ctx context.Context) ([]model.Asset, error) {
	query := `
        SELECT id, type, symbol, amount, price_per_unit, price_currency, created_at
        FROM asset
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}

	for rows.Next() {
		var a model.Asset
		var createdAt string

		err := rows.Scan(
			&a.ID,
			&a.Type,
			&a.Symbol,
			&a.Amount,
			&a.PricePerUnit,
			&a.PriceCurrency,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset table results: %w", err)
		}

		if a.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}

		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// InsertAsset persists a new asset. The caller assigns the ID and CreatedAt.
func (r *AssetRepository) InsertAsset(ctx context.Context, a model.Asset) error {
	query := `
        INSERT INTO asset (id, type, symbol, amount, price_per_unit, price_currency, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Type,
		a.Symbol,
		a.Amount,
		a.PricePerUnit,
		a.PriceCurrency,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	return nil
}

// DeleteAsset removes an asset by type and ID.
// Returns ErrAssetNotFound if no matching record exists.
func (r *AssetRepository) DeleteAsset(ctx context.Context, assetType, id string) error {
	query := `DELETE FROM asset WHERE type = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, assetType, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAssetNotFound
	}

	return nil
}
