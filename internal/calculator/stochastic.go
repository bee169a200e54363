package calculator

import "github.com/moznion/go-optional"

// CalculateStochastic computes %K over the most recent period values:
// (close - low) / (high - low) * 100, where close is the latest value and
// high/low are the window extrema. Returns None when the series is shorter
// than the period. A perfectly flat window divides zero by zero and yields
// NaN; the decision rule treats NaN as a non-match.
func CalculateStochastic(values []float64, period int) optional.Option[float64] {
	if period <= 0 || len(values) < period {
		return optional.None[float64]()
	}
	window := values[len(values)-period:]
	high, low := window[0], window[0]
	for _, v := range window {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}
	latest := window[len(window)-1]
	return optional.Some((latest - low) / (high - low) * 100.0)
}
