package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/halldorv/vedurvakt/internal/adapter/http"
	kafkaadapter "github.com/halldorv/vedurvakt/internal/adapter/kafka"
	"github.com/halldorv/vedurvakt/internal/adapter/vedurapi"
	"github.com/halldorv/vedurvakt/internal/config"
	"github.com/halldorv/vedurvakt/internal/observability"
	"github.com/halldorv/vedurvakt/internal/pipeline"
	"github.com/halldorv/vedurvakt/internal/scheduler"
	"github.com/halldorv/vedurvakt/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LoggerConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	metrics := observability.NewMetrics()

	client := vedurapi.NewClient(cfg.RequestTimeout, logger)
	refresher := pipeline.New(client, pipeline.Config{
		StationID:      cfg.StationID,
		StationName:    cfg.StationName,
		AlertLanguage:  cfg.AlertLanguage,
		ForecastURL:    cfg.ForecastURL,
		ObservationURL: cfg.ObservationURL,
		AlertFeedURL:   cfg.AlertFeedURL,
	}, logger, metrics)

	snapshots := store.NewMemoryStore()

	// Snapshot publishing is feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS.
	var publisher scheduler.Publisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		publisher = writer
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka publishing disabled")
	}

	sched := scheduler.New(refresher, snapshots, publisher, cfg.PollInterval, logger)
	srv := httpadapter.NewServer(cfg.HTTPAddr, snapshots, snapshots, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the refresh loop.
	if err := sched.Start(); err != nil {
		logger.Error("scheduler start error", "error", err)
		os.Exit(1)
	}
	logger.Info("refresh loop started",
		"station_id", cfg.StationID,
		"station_name", cfg.StationName,
		"poll_interval", cfg.PollInterval)

	<-ctx.Done()
	logger.Info("shutting down")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
