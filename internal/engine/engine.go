package engine

import (
	"context"
	"fmt"

	"github.com/moznion/go-optional"

	"FxPulse/internal/calculator"
	"FxPulse/internal/collector"
	"FxPulse/internal/model"
	"FxPulse/internal/strategy"
)

// Engine runs the fetch → indicators → signal pipeline for one request.
// It holds no mutable state; every invocation is independent.
type Engine struct {
	fetcher collector.Fetcher
}

// New creates an Engine on top of the given fetcher.
func New(fetcher collector.Fetcher) *Engine {
	return &Engine{fetcher: fetcher}
}

// Analyze fetches the price series for pair/timeframe, computes all
// indicators, and applies the decision rule. A fetch failure
// short-circuits: no partial indicator results are ever returned.
func (e *Engine) Analyze(ctx context.Context, pair, timeframe string) (*model.Analysis, error) {
	series, err := e.fetcher.FetchCloses(ctx, pair, timeframe)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", pair, timeframe, err)
	}

	ind := Compute(series.Closes)
	sig := strategy.Evaluate(ind.RSI, optional.Some(ind.MACD), ind.Stochastic)

	return &model.Analysis{
		Pair:       pair,
		Timeframe:  timeframe,
		LastPrice:  ind.LastPrice,
		SMA:        ind.SMA,
		RSI:        ind.RSI,
		MACD:       ind.MACD,
		Bollinger:  ind.Bollinger,
		Stochastic: ind.Stochastic,
		Signal:     sig,
	}, nil
}

// Compute derives the full indicator set from a non-empty closing-price
// sequence. The indicators are independent of each other; identical input
// always yields identical output.
func Compute(closes []float64) model.IndicatorSet {
	return model.IndicatorSet{
		LastPrice:  closes[len(closes)-1],
		SMA:        calculator.CalculateSMA(closes, calculator.DefaultSMAPeriod),
		RSI:        calculator.CalculateRSI(closes, calculator.DefaultRSIPeriod),
		MACD:       calculator.CalculateMACD(closes),
		Bollinger:  calculator.CalculateBollinger(closes, calculator.DefaultBollingerPeriod),
		Stochastic: calculator.CalculateStochastic(closes, calculator.DefaultStochasticPeriod),
	}
}
