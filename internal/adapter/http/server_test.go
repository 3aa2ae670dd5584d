package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "github.com/halldorv/vedurvakt/internal/adapter/http"
	"github.com/halldorv/vedurvakt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type mockSnapshots struct {
	snap *domain.Snapshot
}

func (m *mockSnapshots) Latest() (*domain.Snapshot, error) {
	if m.snap == nil {
		return nil, fmt.Errorf("no snapshot available yet")
	}
	return m.snap, nil
}

func newTestServer(snap *domain.Snapshot, readyErr error) *httpadapter.Server {
	return httpadapter.NewServer(":0", &mockSnapshots{snap: snap}, &mockReadiness{err: readyErr}, slog.Default())
}

func TestWeatherReturnsLatestSnapshot(t *testing.T) {
	snap := &domain.Snapshot{
		StationID:   "1",
		StationName: "Reykjavík",
		Current: domain.Current{
			Temperature: domain.Float(2.5),
			Condition:   "snowy",
		},
		Hourly: []domain.HourlyEntry{{Time: time.Date(2026, 2, 1, 6, 0, 0, 0, time.UTC)}},
		Daily:  []domain.DailySummary{{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}},
		Alerts: []domain.Alert{
			{Event: "Gale warning", SeverityTier: "orange"},
			{Event: "Snow", SeverityTier: "yellow"},
		},
		FetchedAt: time.Date(2026, 2, 1, 6, 5, 0, 0, time.UTC),
	}

	srv := newTestServer(snap, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		StationID       string `json:"station_id"`
		HighestSeverity string `json:"highest_severity"`
		AlertCount      int    `json:"alert_count"`
		Current         struct {
			Temperature *float64 `json:"temperature"`
		} `json:"current"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1", body.StationID)
	assert.Equal(t, "orange", body.HighestSeverity)
	assert.Equal(t, 2, body.AlertCount)
	require.NotNil(t, body.Current.Temperature)
	assert.Equal(t, 2.5, *body.Current.Temperature)
}

func TestWeatherReturns503BeforeFirstRefresh(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "no snapshot")
}

func TestWeatherNoAlertsReportsNone(t *testing.T) {
	snap := &domain.Snapshot{StationID: "1", Alerts: []domain.Alert{}}
	srv := newTestServer(snap, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		HighestSeverity string `json:"highest_severity"`
		AlertCount      int    `json:"alert_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "none", body.HighestSeverity)
	assert.Zero(t, body.AlertCount)
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(nil, fmt.Errorf("no refresh has succeeded yet"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "no refresh has succeeded yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
