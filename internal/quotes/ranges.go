package quotes

import (
	"fmt"
	"time"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
)

// Range maps a day-range selector onto a provider granularity: the candle
// interval identifier, the number of points to request, and the wall-clock
// distance between consecutive points (used when synthesizing a fallback
// series).
type Range struct {
	Days     int
	Interval string
	Limit    int
	Step     time.Duration
}

// rangeTable is the supported day-range → granularity mapping. One day is
// charted hourly; a week in 4-hour candles; a month or quarter daily.
var rangeTable = map[string]Range{
	"1":  {Days: 1, Interval: "1h", Limit: 24, Step: time.Hour},
	"7":  {Days: 7, Interval: "4h", Limit: 42, Step: 4 * time.Hour},
	"30": {Days: 30, Interval: "1d", Limit: 30, Step: 24 * time.Hour},
	"90": {Days: 90, Interval: "1d", Limit: 90, Step: 24 * time.Hour},
}

// RangeForDays resolves a day-range selector ("1", "7", "30", "90").
func RangeForDays(days string) (Range, error) {
	rng, ok := rangeTable[days]
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDayRange, days)
	}
	return rng, nil
}
