package model

import "github.com/moznion/go-optional"

// Bollinger holds the Bollinger band values around a period SMA.
type Bollinger struct {
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
	SMA   float64 `json:"sma"`
}

// IndicatorSet holds all indicators computed from one PriceSeries snapshot.
// Indicators that need more history than the series provides are None.
// MACD has no minimum-length guard and is always present once a series
// exists. All fields are derived and scoped to a single request.
type IndicatorSet struct {
	LastPrice  float64
	SMA        optional.Option[float64]
	RSI        optional.Option[float64]
	MACD       float64
	Bollinger  optional.Option[Bollinger]
	Stochastic optional.Option[float64]
}
