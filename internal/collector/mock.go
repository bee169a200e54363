package collector

import (
	"context"
	"time"

	"FxPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Closes []float64
	Err    error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCloses(_ context.Context, pair, timeframe string) (*model.PriceSeries, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	closes := m.Closes
	if closes == nil {
		closes = generateMockCloses(1.1, 390)
	}
	return &model.PriceSeries{
		Pair:      pair,
		Timeframe: timeframe,
		Closes:    closes,
		FetchedAt: time.Now(),
	}, nil
}

func generateMockCloses(basePrice float64, count int) []float64 {
	closes := make([]float64, count)
	for i := 0; i < count; i++ {
		closes[i] = basePrice * (1 + float64(i-count/2)*0.0001)
	}
	return closes
}
