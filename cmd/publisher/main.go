package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rss_publisher/internal/config"
	"rss_publisher/internal/feed"
	"rss_publisher/internal/ledger"
	"rss_publisher/internal/logger"
	"rss_publisher/internal/models"
	"rss_publisher/internal/pipeline"
	"rss_publisher/internal/server"
	"rss_publisher/internal/wordpress"
)

func main() {
	logger.Init()
	defer logger.Log.Info("Publisher stopped")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка и проверка конфигурации
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalf("Config error: %v", err)
	}

	// Инициализация учёта публикаций
	led, err := ledger.Open(ctx, cfg.LedgerDSN, cfg.DryRun)
	if err != nil {
		logger.Log.Fatalf("Ledger init error: %v", err)
	}
	defer led.Close()

	// Проверка учётных данных до начала обработки
	client := wordpress.NewClient(cfg.WordPressURL, cfg.Username, cfg.AppPassword, cfg.DryRun)
	if err := client.VerifyAuth(ctx); err != nil {
		logger.Log.Fatalf("Authentication error: %v", err)
	}
	logger.Log.Info("Authentication successful")

	pipe := pipeline.New(feed.NewReader(), led, client, pipeline.Options{
		FeedURL:    cfg.FeedURL,
		TagPrefix:  cfg.TagPrefix,
		PostStatus: models.PostStatus(cfg.PostStatus),
	})

	// Разовый прогон: без интервала опроса процесс завершается сразу
	if cfg.PollInterval == 0 {
		if err := pipe.Run(ctx); err != nil {
			os.Exit(1)
		}
		return
	}

	// Режим демона: периодический опрос плюс служебный HTTP-сервер
	go pipe.Poll(ctx, cfg.PollInterval)

	var httpServer *http.Server
	if cfg.MetricsAddr != "" {
		srv := server.NewServer(led)
		httpServer = &http.Server{Addr: cfg.MetricsAddr, Handler: srv.Handler()}
		go func() {
			logger.Log.Infof("Starting HTTP server on %s", cfg.MetricsAddr)
			if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
				logger.Log.Fatalf("Server error: %v", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down...")
	cancel()

	if httpServer != nil {
		ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()

		if err := httpServer.Shutdown(ctxShutdown); err != nil {
			logger.Log.Fatalf("Forced shutdown: %v", err)
		}
	}
}
