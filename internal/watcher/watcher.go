package watcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"FxPulse/internal/engine"
	"FxPulse/internal/model"
	"FxPulse/internal/notifier"
)

// Watcher periodically analyzes the configured pairs and pushes alerts for
// actionable signals. Each scan is an independent run of the same pipeline
// the HTTP API uses; nothing is shared or persisted between scans.
type Watcher struct {
	cron          *cron.Cron
	engine        *engine.Engine
	notifier      *notifier.TelegramNotifier // nil means log-only
	pairs         []string
	timeframe     string
	minConfidence float64
	ctx           context.Context
}

// New creates a Watcher. A nil notifier downgrades alerts to log lines.
func New(ctx context.Context, eng *engine.Engine, tn *notifier.TelegramNotifier, pairs []string, timeframe string, minConfidence float64) *Watcher {
	return &Watcher{
		cron:          cron.New(cron.WithSeconds()),
		engine:        eng,
		notifier:      tn,
		pairs:         pairs,
		timeframe:     timeframe,
		minConfidence: minConfidence,
		ctx:           ctx,
	}
}

// Register schedules the periodic scan.
func (w *Watcher) Register(cronSpec string) error {
	if _, err := w.cron.AddFunc(cronSpec, w.Scan); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.cron.Start()
	log.Println("[INFO] watcher started")
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.cron.Stop()
	log.Println("[INFO] watcher stopped")
}

// Scan analyzes every configured pair once and alerts on non-Hold signals
// at or above the confidence threshold.
func (w *Watcher) Scan() {
	log.Println("[INFO] running watch scan")
	for _, pair := range w.pairs {
		analysis, err := w.engine.Analyze(w.ctx, pair, w.timeframe)
		if err != nil {
			log.Printf("[ERROR] watch scan %s: %v", pair, err)
			continue
		}
		if analysis.Signal.Action == model.ActionHold || analysis.Signal.Confidence < w.minConfidence {
			continue
		}
		w.alert(notifier.FormatAnalysis(analysis))
	}
}

// HandleCommand processes a Telegram command and returns a reply.
func (w *Watcher) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return w.help()
	}
	switch fields[0] {
	case "/signal":
		pair := w.pairs[0]
		timeframe := w.timeframe
		if len(fields) > 1 {
			pair = fields[1]
		}
		if len(fields) > 2 {
			timeframe = fields[2]
		}
		analysis, err := w.engine.Analyze(w.ctx, pair, timeframe)
		if err != nil {
			return fmt.Sprintf("❌ analyze %s %s failed: %v", pair, timeframe, err)
		}
		return notifier.FormatAnalysis(analysis)
	case "/pairs":
		return "Watched pairs:\n• " + strings.Join(w.pairs, "\n• ")
	default:
		return w.help()
	}
}

func (w *Watcher) help() string {
	return "Available commands:\n• /signal <pair> [timeframe]\n• /pairs"
}

func (w *Watcher) alert(text string) {
	if w.notifier == nil {
		log.Printf("[INFO] watch alert (telegram disabled):\n%s", text)
		return
	}
	if err := w.notifier.SendWithRetry(w.ctx, text, 3); err != nil {
		log.Printf("[ERROR] send alert: %v", err)
	}
}
