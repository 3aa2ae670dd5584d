package kafka

import (
	"testing"
	"time"

	"github.com/halldorv/vedurvakt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	fetchedAt := time.Date(2026, 2, 1, 6, 5, 0, 0, time.UTC)
	snap := &domain.Snapshot{
		StationID:   "3780",
		StationName: "Akureyri",
		Current: domain.Current{
			Temperature: domain.Float(-2.5),
			Condition:   "snowy",
		},
		Hourly:    []domain.HourlyEntry{},
		Daily:     []domain.DailySummary{},
		Alerts:    []domain.Alert{{Event: "Snow", SeverityTier: "yellow"}},
		FetchedAt: fetchedAt,
	}

	msg, err := serializeToMessage(snap)
	require.NoError(t, err)

	assert.Equal(t, []byte("3780"), msg.Key)
	assert.Contains(t, string(msg.Value), `"station_name":"Akureyri"`)
	assert.Contains(t, string(msg.Value), `"severity_tier":"yellow"`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "station_id", msg.Headers[0].Key)
	assert.Equal(t, []byte("3780"), msg.Headers[0].Value)
	assert.Equal(t, "fetched_at", msg.Headers[1].Key)
	assert.Equal(t, []byte("2026-02-01T06:05:00Z"), msg.Headers[1].Value)
}
