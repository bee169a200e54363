package calculator

import (
	"math"

	"github.com/moznion/go-optional"

	"FxPulse/internal/model"
)

// CalculateBollinger computes Bollinger bands over the most recent period
// values: the mean plus/minus two population standard deviations.
// Returns None when the series is shorter than the period.
func CalculateBollinger(values []float64, period int) optional.Option[model.Bollinger] {
	if period <= 0 || len(values) < period {
		return optional.None[model.Bollinger]()
	}
	window := values[len(values)-period:]

	mean := 0.0
	for _, v := range window {
		mean += v
	}
	mean /= float64(period)

	variance := 0.0
	for _, v := range window {
		d := v - mean
		variance += d * d
	}
	variance /= float64(period)
	std := math.Sqrt(variance)

	return optional.Some(model.Bollinger{
		Upper: mean + 2*std,
		Lower: mean - 2*std,
		SMA:   mean,
	})
}
