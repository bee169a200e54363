package collector

import (
	"context"
	"strings"

	"FxPulse/internal/model"
)

// Fetcher retrieves a normalized closing-price series for a currency pair
// and timeframe. Each call performs exactly one upstream request: no
// retry, no caching.
type Fetcher interface {
	FetchCloses(ctx context.Context, pair, timeframe string) (*model.PriceSeries, error)
	Name() string
}

// PairSymbol maps a domain pair like "eur.usd" to the provider ticker
// "EURUSD=X". The mapping is mechanical, so it is total and deterministic
// over any supported pair set.
func PairSymbol(pair string) string {
	return strings.ToUpper(strings.ReplaceAll(pair, ".", "")) + "=X"
}
