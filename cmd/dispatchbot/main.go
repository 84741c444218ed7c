package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sglre6355/dispatchbot/internal/bot"
	_ "github.com/sglre6355/dispatchbot/internal/modules/general"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/dispatchbot
var version = "dev"

func main() {
	// Configure JSON logging; the level is raised or lowered once config is loaded
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	slog.Info("starting dispatchbot", "version", version)

	// Load configuration, reading .env if present
	cfg, err := bot.LoadConfig(".env")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	level.Set(cfg.LogLevel)

	// Create and configure bot
	b := bot.NewBot(cfg)
	b.LoadModules()

	// Start bot
	if err := b.Start(); err != nil {
		slog.Error("failed to start bot", "error", err)
		os.Exit(1)
	}

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("received termination signal, shutting down")
	if err := b.Stop(); err != nil {
		slog.Error("failed to shutdown", "error", err)
	}

	slog.Info("completed bot shutdown")
	os.Exit(0)
}
