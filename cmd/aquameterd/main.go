package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"aquameter/internal/app"
	"aquameter/internal/config"
	"aquameter/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var notifier logging.Notifier
	if cfg.Alert.WebhookURL != "" {
		notifier = logging.NewWebhookNotifier(cfg.Alert.WebhookURL, cfg.Alert.Prefix)
	}

	logger, err := logging.NewLogger(notifier, cfg.Alert.Window)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init meter backend", zap.Error(err))
	}
	defer application.Close()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("meter backend stopped with error", zap.Error(err))
	}
}
