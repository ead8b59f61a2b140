package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/model"
	"github.com/Verderen/MoneyHiver/internal/repository"
)

// Mailer sends a single outbound e-mail.
type Mailer interface {
	Send(to, subject, body string) error
}

// AlertService manages one-shot price alert subscriptions and the contact
// form relay. Subscriber addresses are fernet-encrypted before they reach
// the database; the sweep decrypts them only at send time.
type AlertService struct {
	alertRepo    *repository.AlertRepository
	quoteService *QuoteService
	mailer       Mailer
	key          *fernet.Key
	adminAddress string
	now          func() time.Time
}

// NewAlertService creates a new AlertService. fernetKey is the base64 key
// protecting addresses at rest; adminAddress receives contact form relays.
func NewAlertService(
	alertRepo *repository.AlertRepository,
	quoteService *QuoteService,
	mailer Mailer,
	fernetKey string,
	adminAddress string,
) (*AlertService, error) {
	key, err := fernet.DecodeKey(fernetKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode alert key: %w", err)
	}

	return &AlertService{
		alertRepo:    alertRepo,
		quoteService: quoteService,
		mailer:       mailer,
		key:          key,
		adminAddress: adminAddress,
		now:          time.Now,
	}, nil
}

// Subscribe registers a one-shot alert: when the asset price reaches the
// threshold an e-mail goes out and the subscription is removed.
func (s *AlertService) Subscribe(ctx context.Context, email, asset string, threshold float64) (model.Alert, error) {
	email = strings.TrimSpace(email)
	asset = strings.ToUpper(strings.TrimSpace(asset))

	if email == "" || !strings.Contains(email, "@") {
		return model.Alert{}, fmt.Errorf("%w: a valid e-mail address is required", apperrors.ErrInvalidInput)
	}
	if asset != "BTC" && asset != "ETH" {
		return model.Alert{}, fmt.Errorf("%w: asset must be BTC or ETH", apperrors.ErrInvalidInput)
	}
	if threshold <= 0 {
		return model.Alert{}, fmt.Errorf("%w: price must be greater than zero", apperrors.ErrInvalidInput)
	}

	token, err := fernet.EncryptAndSign([]byte(email), s.key)
	if err != nil {
		return model.Alert{}, fmt.Errorf("failed to encrypt subscriber address: %w", err)
	}

	alert := model.Alert{
		ID:        uuid.New().String(),
		Email:     email,
		Asset:     asset,
		Threshold: threshold,
		CreatedAt: s.now().UTC(),
	}

	stored := repository.StoredAlert{
		ID:         alert.ID,
		EmailToken: string(token),
		Asset:      alert.Asset,
		Threshold:  alert.Threshold,
		CreatedAt:  alert.CreatedAt,
	}

	if err := s.alertRepo.InsertAlert(ctx, stored); err != nil {
		return model.Alert{}, err
	}

	return alert, nil
}

// Sweep compares every pending alert against the current crypto snapshot,
// notifies subscribers whose threshold has been reached and removes those
// subscriptions. Individual send failures are logged and the subscription
// kept for the next sweep.
func (s *AlertService) Sweep(ctx context.Context) error {
	prices, err := s.quoteService.CryptoPrices(ctx)
	if err != nil {
		return fmt.Errorf("failed to read prices for alert sweep: %w", err)
	}

	alerts, err := s.alertRepo.GetAlerts(ctx)
	if err != nil {
		return err
	}

	for _, alert := range alerts {
		current := prices.BTC
		if alert.Asset == "ETH" {
			current = prices.ETH
		}
		if current <= 0 || current < alert.Threshold {
			continue
		}

		email := fernet.VerifyAndDecrypt([]byte(alert.EmailToken), 0, []*fernet.Key{s.key})
		if email == nil {
			// Undecryptable rows can never be delivered, drop them.
			log.Printf("alert %s: undecryptable subscriber token, removing", alert.ID)
			if err := s.alertRepo.DeleteAlert(ctx, alert.ID); err != nil {
				log.Printf("alert %s: failed to remove: %v", alert.ID, err)
			}
			continue
		}

		subject := fmt.Sprintf("%s reached $%.2f!", alert.Asset, current)
		body := fmt.Sprintf("%s price: $%.2f\nYour threshold: $%.2f", alert.Asset, current, alert.Threshold)

		if err := s.mailer.Send(string(email), subject, body); err != nil {
			log.Printf("alert %s: failed to send notification: %v", alert.ID, err)
			continue
		}

		if err := s.alertRepo.DeleteAlert(ctx, alert.ID); err != nil {
			log.Printf("alert %s: failed to remove after send: %v", alert.ID, err)
		}
	}

	return nil
}

// RelayMessage forwards a contact form submission to the admin address.
func (s *AlertService) RelayMessage(name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return fmt.Errorf("%w: all fields are required", apperrors.ErrInvalidInput)
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", name, email, message)
	if err := s.mailer.Send(s.adminAddress, "New message from "+name, body); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToSendMessage, err)
	}

	return nil
}
