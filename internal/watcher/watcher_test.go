package watcher

import (
	"context"
	"strings"
	"testing"

	"FxPulse/internal/collector"
	"FxPulse/internal/engine"
)

func newTestWatcher(fetcher collector.Fetcher) *Watcher {
	eng := engine.New(fetcher)
	return New(context.Background(), eng, nil, []string{"eur.usd", "gbp.usd"}, "1m", 0.85)
}

func TestHandleCommand_Signal(t *testing.T) {
	w := newTestWatcher(&collector.MockFetcher{Closes: []float64{1.1, 1.2, 1.3}})

	reply := w.HandleCommand("/signal gbp.usd 5m")
	if !strings.Contains(reply, "gbp.usd") || !strings.Contains(reply, "5m") {
		t.Errorf("reply should name the analyzed pair and timeframe, got: %s", reply)
	}
	if !strings.Contains(reply, "Buy") {
		t.Errorf("rising series should report a Buy signal, got: %s", reply)
	}
}

func TestHandleCommand_SignalDefaults(t *testing.T) {
	w := newTestWatcher(&collector.MockFetcher{Closes: []float64{1.1, 1.2, 1.3}})

	reply := w.HandleCommand("/signal")
	if !strings.Contains(reply, "eur.usd") {
		t.Errorf("bare /signal should use the first watched pair, got: %s", reply)
	}
}

func TestHandleCommand_SignalFetchFailure(t *testing.T) {
	w := newTestWatcher(&collector.MockFetcher{Err: collector.ErrDataUnavailable})

	reply := w.HandleCommand("/signal eur.usd")
	if !strings.Contains(reply, "failed") {
		t.Errorf("expected failure reply, got: %s", reply)
	}
}

func TestHandleCommand_Pairs(t *testing.T) {
	w := newTestWatcher(&collector.MockFetcher{})

	reply := w.HandleCommand("/pairs")
	if !strings.Contains(reply, "eur.usd") || !strings.Contains(reply, "gbp.usd") {
		t.Errorf("expected both pairs listed, got: %s", reply)
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	w := newTestWatcher(&collector.MockFetcher{})

	reply := w.HandleCommand("/bogus")
	if !strings.Contains(reply, "Available commands") {
		t.Errorf("expected help text, got: %s", reply)
	}
}

func TestScan_SkipsLowConfidence(t *testing.T) {
	// Rising three-point series yields Buy/0.6, below the 0.85 threshold,
	// so a scan with a nil notifier must not panic and sends nothing.
	w := newTestWatcher(&collector.MockFetcher{Closes: []float64{1.1, 1.2, 1.3}})
	w.Scan()
}
