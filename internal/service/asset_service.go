package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/repository"
)

// AssetService handles the tracked-asset list shown on the profile page.
type AssetService struct {
	assetRepo *repository.AssetRepository
	now       func() time.Time
}

// NewAssetService creates a new AssetService with the provided repository.
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
		now:       time.Now,
	}
}

// GetAssets retrieves all tracked assets, newest first.
func (s *AssetService) GetAssets(ctx context.Context) ([]model.Asset, error) {
	return s.assetRepo.GetAssets(ctx)
}

// CreateCryptoAsset validates and persists a new crypto holding.
func (s *AssetService) CreateCryptoAsset(ctx context.Context, symbol string, amount, price float64, currency string) (model.Asset, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if symbol == "" {
		return model.Asset{}, fmt.Errorf("%w: asset symbol is required", apperrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.Asset{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidInput)
	}
	if price <= 0 {
		return model.Asset{}, fmt.Errorf("%w: price must be positive", apperrors.ErrInvalidInput)
	}
	if currency == "" {
		currency = "USD"
	}

	asset := model.Asset{
		ID:            uuid.New().String(),
		Type:          model.AssetTypeCrypto,
		Symbol:        symbol,
		Amount:        amount,
		PricePerUnit:  price,
		PriceCurrency: currency,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.assetRepo.InsertAsset(ctx, asset); err != nil {
		return model.Asset{}, err
	}

	return asset, nil
}

// DeleteAsset removes a tracked asset by type and ID.
func (s *AssetService) DeleteAsset(ctx context.Context, assetType, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.assetRepo.DeleteAsset(ctx, assetType, id)
}
