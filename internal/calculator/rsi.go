package calculator

import "github.com/moznion/go-optional"

// lossFloor keeps RS finite when a window has gains but no losses.
const lossFloor = 1e-9

// CalculateRSI computes the simple-average RSI over the most recent
// period transitions, which needs period+1 values. Returns None when the
// series is too short. A flat window (no gains, no losses) is exactly 50.
func CalculateRSI(values []float64, period int) optional.Option[float64] {
	if period <= 0 || len(values) < period+1 {
		return optional.None[float64]()
	}
	window := values[len(values)-period-1:]
	var gains, losses float64
	for i := 1; i < len(window); i++ {
		change := window[i] - window[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	if gains+losses == 0 {
		return optional.Some(50.0)
	}
	if losses < lossFloor {
		losses = lossFloor
	}
	rs := gains / losses
	return optional.Some(100.0 - 100.0/(1.0+rs))
}
