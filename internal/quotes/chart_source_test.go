package quotes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/model"
)

type stubKlines struct {
	points []model.PricePoint
	err    error
	calls  int
}

func (s *stubKlines) Klines(_ context.Context, _, _ string, _ int) ([]model.PricePoint, error) {
	s.calls++
	return s.points, s.err
}

func staticPrice(price float64, err error) LatestPriceFunc {
	return func(context.Context, string) (float64, error) {
		return price, err
	}
}

func TestChartSource_History(t *testing.T) {
	t.Run("primary series is passed through unflagged", func(t *testing.T) {
		primary := &stubKlines{points: []model.PricePoint{
			{Timestamp: 1, Price: 100},
			{Timestamp: 2, Price: 101},
		}}
		source := NewChartSource(primary, staticPrice(0, errors.New("unused")))

		series, err := source.History(context.Background(), "BTCUSDT", "1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if series.Fallback {
			t.Error("Primary series must not be flagged as fallback")
		}
		if len(series.Points) != 2 {
			t.Errorf("Expected 2 points, got %d", len(series.Points))
		}
		if series.Latest() != 101 {
			t.Errorf("Expected latest price 101, got %v", series.Latest())
		}
	})

	t.Run("primary failure synthesizes a flagged series", func(t *testing.T) {
		primary := &stubKlines{err: apperrors.ErrNetwork}
		source := NewChartSource(primary, staticPrice(50000, nil))

		series, err := source.History(context.Background(), "BTCUSDT", "7")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !series.Fallback {
			t.Error("Synthesized series must carry the fallback flag")
		}
		if len(series.Points) != 42 {
			t.Errorf("Expected 42 points for 7 days, got %d", len(series.Points))
		}
		for i, p := range series.Points {
			if p.Price <= 0 {
				t.Errorf("Point %d has non-positive price %v", i, p.Price)
			}
			if i > 0 && p.Timestamp <= series.Points[i-1].Timestamp {
				t.Errorf("Timestamps not ascending at %d", i)
			}
		}
		if primary.calls < 2 {
			t.Errorf("Expected the primary fetch to be retried, got %d calls", primary.calls)
		}
	})

	t.Run("nil primary goes straight to the synthesized path", func(t *testing.T) {
		source := NewChartSource(nil, staticPrice(212.5, nil))

		series, err := source.History(context.Background(), "AAPL", "30")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !series.Fallback || len(series.Points) != 30 {
			t.Errorf("Expected 30 flagged points, got %d (fallback=%v)", len(series.Points), series.Fallback)
		}
	})

	t.Run("both paths failing yields an empty series and the error", func(t *testing.T) {
		primary := &stubKlines{err: apperrors.ErrNetwork}
		source := NewChartSource(primary, staticPrice(0, apperrors.ErrNetwork))

		series, err := source.History(context.Background(), "ETHUSDT", "1")
		if err == nil {
			t.Fatal("Expected an error when both paths fail")
		}
		if len(series.Points) != 0 {
			t.Errorf("Expected empty series, got %d points", len(series.Points))
		}
	})

	t.Run("unknown day range is rejected", func(t *testing.T) {
		source := NewChartSource(nil, staticPrice(1, nil))

		_, err := source.History(context.Background(), "BTCUSDT", "365")
		if !errors.Is(err, apperrors.ErrInvalidDayRange) {
			t.Errorf("Expected ErrInvalidDayRange, got %v", err)
		}
	})

	t.Run("synthesized window spans the requested range", func(t *testing.T) {
		fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		source := NewChartSource(nil, staticPrice(100, nil))
		source.now = func() time.Time { return fixed }

		series, err := source.History(context.Background(), "USDRUB", "1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		first := series.Points[0].Timestamp
		last := series.Points[len(series.Points)-1].Timestamp
		if last != fixed.UnixMilli() {
			t.Errorf("Expected last point at now, got %d", last)
		}
		wantSpan := int64(23 * time.Hour / time.Millisecond)
		if last-first != wantSpan {
			t.Errorf("Expected span %d ms, got %d", wantSpan, last-first)
		}
	})
}
