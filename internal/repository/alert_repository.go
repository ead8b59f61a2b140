package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
)

// StoredAlert is a price alert row as persisted: the e-mail address is kept
// only as an encrypted token. Decryption happens in the alert service.
type StoredAlert struct {
	ID         string
	EmailToken string
	Asset      string
	Threshold  float64
	CreatedAt  time.Time
}

// AlertRepository provides data access methods for the price_alert table.
type AlertRepository struct {
	db *sql.DB
}

// NewAlertRepository creates a new AlertRepository with the provided database connection.
func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// GetAlerts retrieves all pending price alerts.
// Returns an empty slice if none exist.
func (r *AlertRepository) GetAlerts(ctx context.Context) ([]StoredAlert, error) {
	query := `
        SELECT id, email_token, asset, threshold, created_at
        FROM price_alert
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query price_alert table: %w", err)
	}
	defer rows.Close()

	alerts := []StoredAlert{}

	for rows.Next() {
		var a StoredAlert
		var createdAt string

		err := rows.Scan(
			&a.ID,
			&a.EmailToken,
			&a.Asset,
			&a.Threshold,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price_alert table results: %w", err)
		}

		if a.CreatedAt, err = ParseTime(createdAt); err != nil {
			return nil, err
		}

		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price_alert table: %w", err)
	}

	return alerts, nil
}

// InsertAlert persists a new price alert subscription.
func (r *AlertRepository) InsertAlert(ctx context.Context, a StoredAlert) error {
	query := `
        INSERT INTO price_alert (id, email_token, asset, threshold, created_at)
        VALUES (?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.EmailToken,
		a.Asset,
		a.Threshold,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert price_alert: %w", err)
	}

	return nil
}

// DeleteAlert removes a price alert by its ID. Alerts fire once; the sweep
// deletes the row right after the notification is sent.
// Returns ErrAlertNotFound if no record with the given ID exists.
func (r *AlertRepository) DeleteAlert(ctx context.Context, id string) error {
	query := `DELETE FROM price_alert WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete price_alert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAlertNotFound
	}

	return nil
}
