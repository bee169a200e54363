package calculator

import "github.com/moznion/go-optional"

// Default periods used by the analysis pipeline.
const (
	DefaultSMAPeriod        = 20
	DefaultRSIPeriod        = 14
	DefaultBollingerPeriod  = 20
	DefaultStochasticPeriod = 14
)

// CalculateSMA computes the arithmetic mean of the most recent period
// values. Returns None when the series is shorter than the period.
func CalculateSMA(values []float64, period int) optional.Option[float64] {
	if period <= 0 || len(values) < period {
		return optional.None[float64]()
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return optional.Some(sum / float64(period))
}
