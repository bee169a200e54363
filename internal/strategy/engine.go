package strategy

import (
	"github.com/moznion/go-optional"

	"FxPulse/internal/model"
)

// Evaluate reduces the three driving indicators to a trading signal.
// Rules are checked in fixed priority order and the first match wins:
//
//  1. rsi < 35, macd > 0, stochastic < 20  → Buy  0.85
//  2. rsi > 65, macd < 0, stochastic > 80  → Sell 0.85
//  3. macd > 0                             → Buy  0.60
//  4. macd < 0                             → Sell 0.60
//  5. otherwise                            → Hold 0.50
//
// An absent indicator never satisfies a condition, so sparse inputs
// degrade toward Hold. NaN values (flat stochastic window) compare false
// and behave like a non-match.
func Evaluate(rsi, macd, stochastic optional.Option[float64]) model.Signal {
	if rsi.IsSome() && macd.IsSome() && stochastic.IsSome() {
		r := rsi.Unwrap()
		m := macd.Unwrap()
		st := stochastic.Unwrap()
		switch {
		case r < 35 && m > 0 && st < 20:
			return model.Signal{Action: model.ActionBuy, Confidence: 0.85}
		case r > 65 && m < 0 && st > 80:
			return model.Signal{Action: model.ActionSell, Confidence: 0.85}
		}
	}
	if macd.IsSome() {
		switch m := macd.Unwrap(); {
		case m > 0:
			return model.Signal{Action: model.ActionBuy, Confidence: 0.6}
		case m < 0:
			return model.Signal{Action: model.ActionSell, Confidence: 0.6}
		}
	}
	return model.Signal{Action: model.ActionHold, Confidence: 0.5}
}
