// Package pipeline orchestrates one refresh cycle: concurrent retrieval of
// the forecast, observation, and alert feeds, merged into a single snapshot.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/halldorv/vedurvakt/internal/domain"
	"github.com/halldorv/vedurvakt/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

// Fixed phase deadlines. Phase 1 (forecast + observation) and phase 2
// (alerts) run under independent deadlines; each alert detail document gets
// its own deadline inside phase 2.
const (
	phase1Timeout = 20 * time.Second
	phase2Timeout = 20 * time.Second
	detailTimeout = 10 * time.Second

	// maxAlertFetches bounds detail documents fetched per cycle. Links past
	// the bound are ignored in feed order; this is a cap, not a ranking.
	maxAlertFetches = 10
)

var tracer = otel.Tracer("vedurvakt-refresh")

// Fetcher retrieves the text body at url or fails. Implementations classify
// errors so that errors.Is matches domain.ErrFetchFailed and
// domain.ErrTimeout.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Config identifies the monitored station and the three feed endpoints.
type Config struct {
	StationID      string
	StationName    string
	AlertLanguage  string
	ForecastURL    string
	ObservationURL string
	AlertFeedURL   string
}

// Refresher produces a fresh weather snapshot on demand. It holds no state
// across cycles; the previous cycle's alert list is an explicit input owned
// by the caller.
type Refresher struct {
	fetcher Fetcher
	cfg     Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Refresher with the given fetcher and observability.
func New(fetcher Fetcher, cfg Config, logger *slog.Logger, metrics *observability.Metrics) *Refresher {
	return &Refresher{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// Refresh runs both fetch phases and assembles a complete snapshot.
//
// Phase 1 fetches forecast and observation in parallel; a forecast failure
// fails the whole refresh, an observation failure degrades to forecast-only
// current conditions. Phase 2 fetches alerts and never fails the refresh:
// if the index cannot be fetched or yields no links, previousAlerts are
// echoed back unchanged.
func (r *Refresher) Refresh(ctx context.Context, previousAlerts []domain.Alert) (*domain.Snapshot, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "refresh")
	defer span.End()

	snap, err := r.fetchWeather(ctx)
	if err != nil {
		r.metrics.RefreshesTotal.WithLabelValues("failure").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	snap.Alerts = r.fetchAlerts(ctx, previousAlerts)

	r.metrics.RefreshesTotal.WithLabelValues("success").Inc()
	r.metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	r.metrics.ActiveAlerts.Set(float64(len(snap.Alerts)))
	r.metrics.HighestSeverityRank.Set(float64(domain.SeverityRank(domain.HighestSeverity(snap.Alerts))))
	r.metrics.LastSuccessTimestamp.Set(float64(snap.FetchedAt.Unix()))

	return snap, nil
}

// fetchWeather runs phase 1: forecast and observation bodies retrieved in
// parallel under one deadline, merged after both have settled.
func (r *Refresher) fetchWeather(ctx context.Context) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, phase1Timeout)
	defer cancel()
	ctx, span := tracer.Start(ctx, "fetch-weather")
	defer span.End()

	var (
		wg              sync.WaitGroup
		forecastBody    []byte
		observationBody []byte
		forecastErr     error
		observationErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		forecastBody, forecastErr = r.fetch(ctx, "forecast", r.cfg.ForecastURL)
	}()
	go func() {
		defer wg.Done()
		observationBody, observationErr = r.fetch(ctx, "observation", r.cfg.ObservationURL)
	}()
	wg.Wait()

	// Forecast is the only guaranteed field source.
	if forecastErr != nil {
		return nil, fmt.Errorf("forecast: %w", forecastErr)
	}

	snap, err := domain.ParseForecast(forecastBody, r.cfg.StationID, r.cfg.StationName)
	if err != nil {
		return nil, err
	}

	if observationErr != nil {
		r.logger.Debug("observation fetch failed, keeping forecast-only conditions", "error", observationErr)
		return snap, nil
	}
	obs, err := domain.ParseObservation(observationBody)
	if err != nil {
		r.logger.Debug("observation parse failed, keeping forecast-only conditions", "error", err)
		return snap, nil
	}
	snap.ApplyObservation(obs)

	return snap, nil
}

// fetchAlerts runs phase 2: resolve the alert index to detail links, then
// fetch up to maxAlertFetches CAP documents in parallel. Results keep feed
// order regardless of completion order; individual failures drop that one
// alert.
func (r *Refresher) fetchAlerts(ctx context.Context, previous []domain.Alert) []domain.Alert {
	ctx, cancel := context.WithTimeout(ctx, phase2Timeout)
	defer cancel()
	ctx, span := tracer.Start(ctx, "fetch-alerts")
	defer span.End()

	body, err := r.fetch(ctx, "alert_index", r.cfg.AlertFeedURL)
	if err != nil {
		r.logger.Warn("alert index fetch failed, keeping previous alerts", "error", err)
		return carryOver(previous)
	}

	links := domain.ExtractAlertLinks(body)
	if len(links) == 0 {
		return carryOver(previous)
	}
	if len(links) > maxAlertFetches {
		r.logger.Debug("alert index truncated", "links", len(links), "max", maxAlertFetches)
		links = links[:maxAlertFetches]
	}

	// Indexed results keep feed order; a nil slot is a dropped alert.
	results := make([]*domain.Alert, len(links))
	var wg sync.WaitGroup
	for i, link := range links {
		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()

			detailCtx, cancel := context.WithTimeout(ctx, detailTimeout)
			defer cancel()

			body, err := r.fetch(detailCtx, "alert_detail", link)
			if err != nil {
				r.logger.Debug("alert detail fetch failed", "url", link, "error", err)
				return
			}
			results[i] = domain.ParseCAPAlert(body, link, r.cfg.AlertLanguage)
		}(i, link)
	}
	wg.Wait()

	alerts := make([]domain.Alert, 0, len(links))
	for _, a := range results {
		if a != nil {
			alerts = append(alerts, *a)
		}
	}
	return alerts
}

// fetch wraps the fetcher with per-feed outcome metrics.
func (r *Refresher) fetch(ctx context.Context, feed, url string) ([]byte, error) {
	body, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		r.metrics.FeedFetches.WithLabelValues(feed, "error").Inc()
		return nil, err
	}
	r.metrics.FeedFetches.WithLabelValues(feed, "success").Inc()
	return body, nil
}

// carryOver echoes the caller's previous alerts, normalizing nil so the
// snapshot's alert list is always present.
func carryOver(previous []domain.Alert) []domain.Alert {
	if previous == nil {
		return []domain.Alert{}
	}
	return previous
}
