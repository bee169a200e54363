package strategy

import (
	"math"
	"testing"

	"github.com/moznion/go-optional"

	"FxPulse/internal/model"
)

func some(v float64) optional.Option[float64] { return optional.Some(v) }
func none() optional.Option[float64]          { return optional.None[float64]() }

func TestEvaluate_RulePriority(t *testing.T) {
	tests := []struct {
		name       string
		rsi        optional.Option[float64]
		macd       optional.Option[float64]
		stochastic optional.Option[float64]
		action     model.Action
		confidence float64
	}{
		{"strong buy", some(30), some(1), some(10), model.ActionBuy, 0.85},
		{"strong sell", some(70), some(-1), some(90), model.ActionSell, 0.85},
		{"macd only positive", none(), some(0.5), none(), model.ActionBuy, 0.6},
		{"macd only negative", none(), some(-0.5), none(), model.ActionSell, 0.6},
		{"all absent", none(), none(), none(), model.ActionHold, 0.5},
		{"macd zero", some(50), some(0), some(50), model.ActionHold, 0.5},
		{"band miss falls to macd", some(30), some(1), some(25), model.ActionBuy, 0.6},
		{"oversold rsi but negative macd", some(30), some(-1), some(10), model.ActionSell, 0.6},
		{"overbought rsi but positive macd", some(70), some(1), some(90), model.ActionBuy, 0.6},
		{"boundary rsi 35 not a strong buy", some(35), some(1), some(10), model.ActionBuy, 0.6},
		{"boundary stochastic 80 not a strong sell", some(70), some(-1), some(80), model.ActionSell, 0.6},
	}
	for _, tt := range tests {
		sig := Evaluate(tt.rsi, tt.macd, tt.stochastic)
		if sig.Action != tt.action || sig.Confidence != tt.confidence {
			t.Errorf("%s: expected %s/%.2f, got %s/%.2f",
				tt.name, tt.action, tt.confidence, sig.Action, sig.Confidence)
		}
	}
}

func TestEvaluate_NaNStochasticIsNonMatch(t *testing.T) {
	sig := Evaluate(some(30), some(1), some(math.NaN()))
	if sig.Action != model.ActionBuy || sig.Confidence != 0.6 {
		t.Errorf("expected Buy/0.60 when stochastic is NaN, got %s/%.2f", sig.Action, sig.Confidence)
	}
}

func TestEvaluate_Pure(t *testing.T) {
	a := Evaluate(some(30), some(1), some(10))
	b := Evaluate(some(30), some(1), some(10))
	if a != b {
		t.Errorf("identical inputs must yield identical signals: %v vs %v", a, b)
	}
}
