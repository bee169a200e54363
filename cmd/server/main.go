package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FxPulse/internal/collector"
	"FxPulse/internal/config"
	"FxPulse/internal/engine"
	"FxPulse/internal/notifier"
	"FxPulse/internal/server"
	"FxPulse/internal/watcher"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] FxPulse starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		hf, err := collector.NewHostedFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.FetchTimeout())
		if err != nil {
			log.Fatalf("[FATAL] init hosted fetcher: %v", err)
		}
		fetcher = hf
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy, cfg.FetchTimeout())
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init engine
	eng := engine.New(fetcher)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		log.Println("[INFO] telegram notifier enabled")
	}

	// Init watcher (optional)
	if cfg.Watch.Cron != "" {
		w := watcher.New(ctx, eng, tn, cfg.Pairs, cfg.DefaultTimeframe, cfg.Watch.MinConfidence)
		if err := w.Register(cfg.Watch.Cron); err != nil {
			log.Fatalf("[FATAL] register watch task: %v", err)
		}
		w.Start()
		defer w.Stop()

		if tn != nil {
			go tn.StartPolling(ctx, w.HandleCommand)
			log.Println("[INFO] Telegram polling started")
		}
	}

	// Init HTTP server
	srv := server.New(cfg.Server.Listen, eng, cfg.DefaultPair, cfg.DefaultTimeframe)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] FxPulse is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] FxPulse stopped")
}
