package calculator

// CalculateEMA computes an exponential moving average with smoothing
// constant k = 2/(period+1), seeded with the first value and updated
// recursively through the whole series, not just a trailing window.
// There is no minimum-length guard: a one-element series returns that
// element, an empty series returns 0.
func CalculateEMA(values []float64, period int) float64 {
	if len(values) == 0 {
		return 0
	}
	k := 2.0 / (float64(period) + 1.0)
	ema := values[0]
	for _, v := range values[1:] {
		ema = v*k + ema*(1.0-k)
	}
	return ema
}

// CalculateMACD returns EMA12 - EMA26 over the full series.
func CalculateMACD(values []float64) float64 {
	return CalculateEMA(values, 12) - CalculateEMA(values, 26)
}
