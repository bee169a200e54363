package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. It is loaded once at startup
// and passed explicitly into constructors; there is no global client state.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"data_source"`
	Pairs            []string `yaml:"pairs"`
	Timeframes       []string `yaml:"timeframes"`
	DefaultPair      string   `yaml:"default_pair"`
	DefaultTimeframe string   `yaml:"default_timeframe"`
	Telegram         struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Watch struct {
		Cron          string  `yaml:"cron"`
		MinConfidence float64 `yaml:"min_confidence"`
	} `yaml:"watch"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.DataSource.TimeoutSeconds == 0 {
		cfg.DataSource.TimeoutSeconds = 30
	}
	if len(cfg.Pairs) == 0 {
		cfg.Pairs = []string{"eur.usd", "gbp.usd", "usd.jpy", "usd.chf", "aud.usd", "usd.cad"}
	}
	if len(cfg.Timeframes) == 0 {
		cfg.Timeframes = []string{"1m", "3m", "5m"}
	}
	if cfg.DefaultPair == "" {
		cfg.DefaultPair = "eur.usd"
	}
	if cfg.DefaultTimeframe == "" {
		cfg.DefaultTimeframe = "1m"
	}
	if cfg.Watch.MinConfidence == 0 {
		cfg.Watch.MinConfidence = 0.85
	}

	return cfg, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	if c.DataSource.BaseURL != "" && c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required when data_source.base_url is set")
	}
	if c.Watch.Cron != "" && len(c.Pairs) == 0 {
		return fmt.Errorf("watch.cron is set but no pairs are configured")
	}
	if c.Watch.MinConfidence < 0 || c.Watch.MinConfidence > 1 {
		return fmt.Errorf("watch.min_confidence must be in [0,1]")
	}
	return nil
}

// FetchTimeout returns the upstream request timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.DataSource.TimeoutSeconds) * time.Second
}
