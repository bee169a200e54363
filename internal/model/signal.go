package model

import "github.com/moznion/go-optional"

// Action is the discrete trading action emitted by the decision rule.
type Action string

const (
	ActionBuy  Action = "Buy"
	ActionSell Action = "Sell"
	ActionHold Action = "Hold"
)

// Signal is the final output of the decision rule: a discrete action plus
// a confidence score in [0,1]. Derived purely from an IndicatorSet.
type Signal struct {
	Action     Action  `json:"signal"`
	Confidence float64 `json:"confidence"`
}

// Analysis is the combined per-request record returned to callers.
// Absent indicators serialize as JSON null.
type Analysis struct {
	Pair       string                     `json:"pair"`
	Timeframe  string                     `json:"timeframe"`
	LastPrice  float64                    `json:"lastPrice"`
	SMA        optional.Option[float64]   `json:"sma"`
	RSI        optional.Option[float64]   `json:"rsi"`
	MACD       float64                    `json:"macd"`
	Bollinger  optional.Option[Bollinger] `json:"boll"`
	Stochastic optional.Option[float64]   `json:"stochastic"`
	Signal     Signal                     `json:"signal"`
}
