package testutil

import (
	"database/sql"
	"testing"

	"github.com/Verderen/MoneyHiver/internal/repository"
	"github.com/Verderen/MoneyHiver/internal/service"
)

// FernetTestKey is a fixed base64 fernet key for alert tests.
const FernetTestKey = "cy73R3TQM0ToEtYjPmzfQiHCAIpTjbbNW4bDJpYd8N0="

func NewTestCalculationService(t *testing.T, db *sql.DB) *service.CalculationService {
	t.Helper()

	calculationRepo := repository.NewCalculationRepository(db)

	return service.NewCalculationService(
		calculationRepo,
	)
}

func NewTestAssetService(t *testing.T, db *sql.DB) *service.AssetService {
	t.Helper()

	assetRepo := repository.NewAssetRepository(db)

	return service.NewAssetService(
		assetRepo,
	)
}

// NewTestAlertService creates an AlertService over the given quote service
// and mailer, keyed with FernetTestKey.
func NewTestAlertService(t *testing.T, db *sql.DB, quoteService *service.QuoteService, mailer service.Mailer) *service.AlertService {
	t.Helper()

	alertRepo := repository.NewAlertRepository(db)

	svc, err := service.NewAlertService(alertRepo, quoteService, mailer, FernetTestKey, "admin@example.com")
	if err != nil {
		t.Fatalf("Failed to create alert service: %v", err)
	}
	return svc
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}
