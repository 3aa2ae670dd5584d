// Command vedurprobe performs a single refresh against the live vedur.is
// feeds and prints the resulting snapshot as JSON. Useful for checking a
// station ID or debugging feed changes without running the service.
//
// Usage:
//
//	go run ./cmd/vedurprobe -station 1 -name Reykjavík -lang is
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/halldorv/vedurvakt/internal/adapter/vedurapi"
	"github.com/halldorv/vedurvakt/internal/config"
	"github.com/halldorv/vedurvakt/internal/observability"
	"github.com/halldorv/vedurvakt/internal/pipeline"
)

func main() {
	station := flag.String("station", "1", "vedur.is station ID")
	name := flag.String("name", "", "station display name (defaults to the ID)")
	lang := flag.String("lang", "is", "preferred CAP alert language")
	timeout := flag.Duration("timeout", 15*time.Second, "per-request timeout")
	verbose := flag.Bool("v", false, "log fetch progress to stderr")
	flag.Parse()

	if err := run(*station, *name, *lang, *timeout, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "vedurprobe:", err)
		os.Exit(1)
	}
}

func run(station, name, lang string, timeout time.Duration, verbose bool) error {
	if name == "" {
		name = "Station " + station
	}

	var logger *slog.Logger
	if verbose {
		logger = observability.NewLogger(observability.LoggerConfig{Level: "debug", Format: "text"})
	} else {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	client := vedurapi.NewClient(timeout, logger)
	refresher := pipeline.New(client, pipeline.Config{
		StationID:      station,
		StationName:    name,
		AlertLanguage:  lang,
		ForecastURL:    config.FeedURL(config.DefaultVedurBaseURL, "forec", station),
		ObservationURL: config.FeedURL(config.DefaultVedurBaseURL, "obs", station),
		AlertFeedURL:   config.DefaultAlertFeedURL,
	}, logger, observability.NewMetricsForTesting())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	snap, err := refresher.Refresh(ctx, nil)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
