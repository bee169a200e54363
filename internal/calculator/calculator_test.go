package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSMA(t *testing.T) {
	got := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)
	require.True(t, got.IsSome())
	assert.InDelta(t, 4.0, got.Unwrap(), 1e-12)

	got = CalculateSMA([]float64{1, 2, 3, 4, 5}, 5)
	require.True(t, got.IsSome())
	assert.InDelta(t, 3.0, got.Unwrap(), 1e-12)

	assert.True(t, CalculateSMA([]float64{1, 2, 3, 4, 5}, 6).IsNone())
	assert.True(t, CalculateSMA(nil, 3).IsNone())
	assert.True(t, CalculateSMA([]float64{1, 2, 3}, 0).IsNone())
}

func TestCalculateRSI_MonotonicIncrease(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i + 1)
	}
	got := CalculateRSI(values, 14)
	require.True(t, got.IsSome())
	rsi := got.Unwrap()
	// Losses are floored to 1e-9, so the result approaches but never
	// reaches 100.
	assert.Greater(t, rsi, 99.99)
	assert.Less(t, rsi, 100.0)
}

func TestCalculateRSI_FlatSeries(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = 1.2345
	}
	got := CalculateRSI(values, 14)
	require.True(t, got.IsSome())
	assert.Equal(t, 50.0, got.Unwrap())
}

func TestCalculateRSI_InsufficientHistory(t *testing.T) {
	// Needs period+1 values: exactly period is still too short.
	values := make([]float64, 14)
	for i := range values {
		values[i] = float64(i)
	}
	assert.True(t, CalculateRSI(values, 14).IsNone())

	values = append(values, 14)
	assert.True(t, CalculateRSI(values, 14).IsSome())
}

func TestCalculateBollinger(t *testing.T) {
	// Population std of [2,4,4,4,5,5,7,9] is exactly 2, mean 5.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	got := CalculateBollinger(values, 8)
	require.True(t, got.IsSome())
	bb := got.Unwrap()
	assert.InDelta(t, 5.0, bb.SMA, 1e-12)
	assert.InDelta(t, 9.0, bb.Upper, 1e-12)
	assert.InDelta(t, 1.0, bb.Lower, 1e-12)

	// Bands are symmetric around the SMA by exactly 2*std.
	assert.InDelta(t, bb.Upper-bb.SMA, bb.SMA-bb.Lower, 1e-12)

	assert.True(t, CalculateBollinger(values, 9).IsNone())
}

func TestCalculateStochastic(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	got := CalculateStochastic(values, 14)
	require.True(t, got.IsSome())
	assert.InDelta(t, 100.0, got.Unwrap(), 1e-12)

	// Latest value at the window low.
	desc := []float64{14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	got = CalculateStochastic(desc, 14)
	require.True(t, got.IsSome())
	assert.InDelta(t, 0.0, got.Unwrap(), 1e-12)

	assert.True(t, CalculateStochastic(values, 15).IsNone())
}

func TestCalculateStochastic_FlatWindowIsNaN(t *testing.T) {
	flat := make([]float64, 14)
	for i := range flat {
		flat[i] = 7.5
	}
	got := CalculateStochastic(flat, 14)
	require.True(t, got.IsSome())
	assert.True(t, math.IsNaN(got.Unwrap()))
}

func TestCalculateEMA(t *testing.T) {
	// Single element: seeded with the first value, no updates.
	assert.Equal(t, 3.5, CalculateEMA([]float64{3.5}, 12))
	// Empty series degenerates to 0 rather than failing.
	assert.Equal(t, 0.0, CalculateEMA(nil, 12))

	// Rising series: EMA trails below the latest value but above the mean.
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ema := CalculateEMA(values, 5)
	assert.Greater(t, ema, 5.5)
	assert.Less(t, ema, 10.0)
}

func TestCalculateMACD(t *testing.T) {
	// Single element: both EMAs equal the element.
	assert.Equal(t, 0.0, CalculateMACD([]float64{42}))

	// Constant series: both EMAs converge on the constant.
	flat := make([]float64, 40)
	for i := range flat {
		flat[i] = 2.0
	}
	assert.InDelta(t, 0.0, CalculateMACD(flat), 1e-9)

	// Rising series: fast EMA above slow EMA.
	rising := make([]float64, 40)
	for i := range rising {
		rising[i] = float64(i)
	}
	assert.Greater(t, CalculateMACD(rising), 0.0)

	// Falling series: fast EMA below slow EMA.
	falling := make([]float64, 40)
	for i := range falling {
		falling[i] = float64(40 - i)
	}
	assert.Less(t, CalculateMACD(falling), 0.0)
}

func TestIdempotence(t *testing.T) {
	values := []float64{1.1, 1.2, 1.15, 1.18, 1.22, 1.19, 1.25, 1.3, 1.28, 1.27,
		1.26, 1.31, 1.33, 1.29, 1.35, 1.34, 1.36, 1.4, 1.38, 1.42}

	assert.Equal(t, CalculateSMA(values, 20), CalculateSMA(values, 20))
	assert.Equal(t, CalculateRSI(values, 14), CalculateRSI(values, 14))
	assert.Equal(t, CalculateMACD(values), CalculateMACD(values))
	assert.Equal(t, CalculateBollinger(values, 20), CalculateBollinger(values, 20))
	assert.Equal(t, CalculateStochastic(values, 14), CalculateStochastic(values, 14))
}
