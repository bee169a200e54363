package notifier

import (
	"fmt"
	"strings"

	"github.com/moznion/go-optional"

	"FxPulse/internal/model"
)

// FormatAnalysis formats one analysis into a Telegram message.
func FormatAnalysis(a *model.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>%s</b> (%s)\n\n", signalEmoji(a.Signal.Action), a.Pair, a.Timeframe))
	b.WriteString(fmt.Sprintf("Signal: <b>%s</b> (confidence %.0f%%)\n", a.Signal.Action, a.Signal.Confidence*100))
	b.WriteString(fmt.Sprintf("Last price: %.5f\n\n", a.LastPrice))

	b.WriteString("Indicators:\n")
	b.WriteString(fmt.Sprintf("  SMA(20): %s\n", formatOptional(a.SMA)))
	b.WriteString(fmt.Sprintf("  RSI(14): %s\n", formatOptional(a.RSI)))
	b.WriteString(fmt.Sprintf("  MACD: %+.6f\n", a.MACD))
	if a.Bollinger.IsSome() {
		bb := a.Bollinger.Unwrap()
		b.WriteString(fmt.Sprintf("  Bollinger: %.5f / %.5f / %.5f\n", bb.Upper, bb.SMA, bb.Lower))
	} else {
		b.WriteString("  Bollinger: n/a\n")
	}
	b.WriteString(fmt.Sprintf("  Stochastic(14): %s\n", formatOptional(a.Stochastic)))

	return b.String()
}

func formatOptional(v optional.Option[float64]) string {
	if v.IsNone() {
		return "n/a"
	}
	return fmt.Sprintf("%.5f", v.Unwrap())
}

func signalEmoji(a model.Action) string {
	switch a {
	case model.ActionBuy:
		return "📈"
	case model.ActionSell:
		return "📉"
	default:
		return "⏸"
	}
}
