package model

import "time"

// PriceSeries holds a normalized closing-price sequence for one pair and
// timeframe, chronological (oldest first), with null upstream entries removed.
// It carries no identity beyond the sequence itself and is never persisted.
type PriceSeries struct {
	Pair      string
	Timeframe string
	Closes    []float64
	FetchedAt time.Time
}

// Last returns the most recent closing price. The collector never returns
// an empty series, so the index is safe for series it produced.
func (s *PriceSeries) Last() float64 {
	return s.Closes[len(s.Closes)-1]
}
