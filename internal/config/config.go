package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config хранит настройки публикатора, считанные из переменных окружения.
type Config struct {
	FeedURL      string
	WordPressURL string
	Username     string
	AppPassword  string
	TagPrefix    string
	LedgerDSN    string
	PostStatus   string
	PollInterval time.Duration
	MetricsAddr  string
	DryRun       bool
}

// Load читает конфигурацию из окружения.
// Обязательные переменные: RSS_FEED_URL, WORDPRESS_URL, WORDPRESS_USERNAME,
// WORDPRESS_APP_PASSWORD, PINBOARD_TAG_PREFIX, LEDGER_DSN.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("POST_STATUS", "publish")

	return &Config{
		FeedURL:      v.GetString("RSS_FEED_URL"),
		WordPressURL: v.GetString("WORDPRESS_URL"),
		Username:     v.GetString("WORDPRESS_USERNAME"),
		AppPassword:  v.GetString("WORDPRESS_APP_PASSWORD"),
		TagPrefix:    v.GetString("PINBOARD_TAG_PREFIX"),
		LedgerDSN:    v.GetString("LEDGER_DSN"),
		PostStatus:   v.GetString("POST_STATUS"),
		PollInterval: v.GetDuration("POLL_INTERVAL"),
		MetricsAddr:  v.GetString("METRICS_ADDR"),
		DryRun:       v.GetBool("DRY_RUN"),
	}
}

// Validate проверяет, что все обязательные значения заданы и URL корректны.
func (cfg *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"RSS_FEED_URL", cfg.FeedURL},
		{"WORDPRESS_URL", cfg.WordPressURL},
		{"WORDPRESS_USERNAME", cfg.Username},
		{"WORDPRESS_APP_PASSWORD", cfg.AppPassword},
		{"PINBOARD_TAG_PREFIX", cfg.TagPrefix},
		{"LEDGER_DSN", cfg.LedgerDSN},
	}
	for _, req := range required {
		if req.value == "" {
			return fmt.Errorf("missing required environment variable: %s", req.name)
		}
	}

	if _, err := url.ParseRequestURI(cfg.FeedURL); err != nil {
		return fmt.Errorf("invalid RSS URL: %s", cfg.FeedURL)
	}
	if _, err := url.ParseRequestURI(cfg.WordPressURL); err != nil {
		return fmt.Errorf("invalid WordPress URL: %s", cfg.WordPressURL)
	}

	if cfg.PostStatus != "draft" && cfg.PostStatus != "publish" {
		return errors.New("POST_STATUS must be either draft or publish")
	}

	if cfg.PollInterval < 0 {
		return errors.New("POLL_INTERVAL must not be negative")
	}
	return nil
}
