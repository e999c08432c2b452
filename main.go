package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/voyage-finance/ask-server/bot"
	"github.com/voyage-finance/ask-server/config"
	"github.com/voyage-finance/ask-server/http_server"
	"github.com/voyage-finance/ask-server/service"
	"github.com/voyage-finance/ask-server/telemetry"
)

func main() {
	files, err := config.Init("config")
	if err != nil {
		log.Fatal("Error loading env files: ", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger, logFile, err := telemetry.InitLogger(cfg.Level(), cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	logger.Info("loaded configuration", "env", cfg.Env, "files", files, "model", cfg.Model, "upstreamTimeout", cfg.UpstreamTimeout.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cleanup, err := telemetry.InitTelemetry(ctx, cfg.TelemetryDir)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return
	}
	defer cleanup()

	s, err := service.New(service.NewOpenAI(cfg), logger)
	if err != nil {
		logger.Error("failed to create service", "error", err)
		return
	}

	if cfg.BotAPIKey != "" {
		b, err := bot.New(cfg.BotAPIKey, s)
		if err != nil {
			logger.Error("telegram bot disabled", "error", err)
		} else {
			go b.Start(ctx)
		}
	}

	if err := http_server.HandleRequests(ctx, cfg.Addr(), s, http_server.ShutdownTimeout(cfg.UpstreamTimeout)); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
