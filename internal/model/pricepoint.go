package model

// PricePoint is a single charted observation: epoch milliseconds and the
// price at that instant. Serialized as a [timestamp, price] pair to match
// the wire format the chart widgets consume.
type PricePoint struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
}

// Series is an ascending-time sequence of price points for one asset.
// Fallback marks a synthesized display-only series built by jittering a
// scalar price across the requested window; it must never be used for
// financial decisions.
type Series struct {
	Points   []PricePoint `json:"prices"`
	Fallback bool         `json:"fallback,omitempty"`
}

// Latest returns the most recent price in the series, or 0 for an empty one.
func (s Series) Latest() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Price
}
