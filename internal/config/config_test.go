package config_test

import (
	"testing"
	"time"

	"rss_publisher/internal/config"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RSS_FEED_URL", "https://example.com/rss")
	t.Setenv("WORDPRESS_URL", "https://blog.example.com")
	t.Setenv("WORDPRESS_USERNAME", "editor")
	t.Setenv("WORDPRESS_APP_PASSWORD", "secret")
	t.Setenv("PINBOARD_TAG_PREFIX", "https://pinboard.example.com/u:editor")
	t.Setenv("LEDGER_DSN", "rss_state.db")
}

func TestLoad_Success(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POLL_INTERVAL", "15m")
	t.Setenv("DRY_RUN", "true")

	cfg := config.Load()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "https://example.com/rss", cfg.FeedURL)
	require.Equal(t, "https://blog.example.com", cfg.WordPressURL)
	require.Equal(t, "editor", cfg.Username)
	require.Equal(t, "secret", cfg.AppPassword)
	require.Equal(t, "rss_state.db", cfg.LedgerDSN)
	require.Equal(t, "publish", cfg.PostStatus)
	require.Equal(t, 15*time.Minute, cfg.PollInterval)
	require.True(t, cfg.DryRun)
}

func TestLoad_StatusOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POST_STATUS", "draft")

	cfg := config.Load()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "draft", cfg.PostStatus)
}

func TestValidate_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WORDPRESS_APP_PASSWORD", "")

	cfg := config.Load()
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "WORDPRESS_APP_PASSWORD")
}

func TestValidate_InvalidFeedURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RSS_FEED_URL", "not-a-url")

	cfg := config.Load()
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid RSS URL")
}

func TestValidate_InvalidStatus(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POST_STATUS", "pending")

	cfg := config.Load()
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "POST_STATUS")
}
