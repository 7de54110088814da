// Package main is the entry point for the catlayer treaty analysis
// service. It estimates the financial risk of a reinsurance treaty layer
// against simulated or uploaded annual catastrophe losses and serves the
// resulting metrics, EP curves and event loss tables over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hosierrisk/catlayer/internal/config"
	"github.com/hosierrisk/catlayer/internal/modules/analysis"
	"github.com/hosierrisk/catlayer/internal/server"
	"github.com/hosierrisk/catlayer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Int("port", cfg.Port).Msg("Starting catlayer")

	analysisService := analysis.NewService(log, cfg.DefaultYears)

	srv := server.New(server.Config{
		Log:             log,
		Cfg:             cfg,
		AnalysisService: analysisService,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}

	log.Info().Msg("Stopped")
}
