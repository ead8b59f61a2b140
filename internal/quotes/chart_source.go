package quotes

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/Verderen/MoneyHiver/internal/model"
)

// maxFetchTries bounds the retry loop around the primary provider. The
// public APIs rate-limit aggressively, so retries stay few and backed off.
const maxFetchTries = 3

// KlineSource supplies the primary candle series for a symbol.
type KlineSource interface {
	Klines(ctx context.Context, symbol, interval string, limit int) ([]model.PricePoint, error)
}

// LatestPriceFunc supplies the fallback scalar price for a symbol when the
// primary series is unavailable.
type LatestPriceFunc func(ctx context.Context, symbol string) (float64, error)

// ChartSource produces chart-ready price series for a symbol and day
// range. The primary path is the kline provider; when it fails, the
// latest scalar price is jittered across the requested window into a
// flagged, display-only series. Failures never propagate as panics and
// the returned series is always safe to render: both paths failing yields
// an empty series plus the error for the caller's messaging.
type ChartSource struct {
	primary  KlineSource
	fallback LatestPriceFunc
	now      func() time.Time
}

// NewChartSource creates a chart source. primary may be nil for assets
// that have no candle provider (stocks, currencies); those go straight to
// the synthesized path.
func NewChartSource(primary KlineSource, fallback LatestPriceFunc) *ChartSource {
	return &ChartSource{
		primary:  primary,
		fallback: fallback,
		now:      time.Now,
	}
}

// History returns the price series for symbol over the selected day range.
func (s *ChartSource) History(ctx context.Context, symbol, days string) (model.Series, error) {
	rng, err := RangeForDays(days)
	if err != nil {
		return model.Series{}, err
	}

	if s.primary != nil {
		points, err := s.fetchWithRetry(ctx, symbol, rng)
		if err == nil && len(points) > 0 {
			return model.Series{Points: points}, nil
		}
		if err != nil {
			log.Printf("primary chart source failed for %s: %v", symbol, err)
		}
	}

	price, err := s.fallback(ctx, symbol)
	if err != nil {
		return model.Series{}, err
	}

	return s.synthesize(price, rng), nil
}

// fetchWithRetry wraps the primary provider in bounded exponential backoff.
func (s *ChartSource) fetchWithRetry(ctx context.Context, symbol string, rng Range) ([]model.PricePoint, error) {
	operation := func() ([]model.PricePoint, error) {
		return s.primary.Klines(ctx, symbol, rng.Interval, rng.Limit)
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxFetchTries))
}

// synthesize builds a flagged placeholder series by jittering the scalar
// price ±2% across the window. The point count always matches the range
// and every price stays positive; the Fallback flag tells callers the
// series is display-only.
func (s *ChartSource) synthesize(price float64, rng Range) model.Series {
	now := s.now()
	points := make([]model.PricePoint, rng.Limit)

	for i := 0; i < rng.Limit; i++ {
		at := now.Add(-time.Duration(rng.Limit-1-i) * rng.Step)
		jitter := 0.98 + rand.Float64()*0.04
		points[i] = model.PricePoint{
			Timestamp: at.UnixMilli(),
			Price:     price * jitter,
		}
	}

	return model.Series{Points: points, Fallback: true}
}
