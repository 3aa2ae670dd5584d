package domain_test

import (
	"errors"
	"testing"

	"github.com/halldorv/vedurvakt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const observationXML = `<?xml version="1.0" encoding="UTF-8"?>
<observations>
  <station id="1" valid="1">
    <name>Reykjavík</name>
    <time>2026-02-01 05:00:00</time>
    <T>1.2</T>
    <F>7.5</F>
    <D>SSV</D>
    <W>Overcast</W>
    <RH>90</RH>
    <P>998.5</P>
  </station>
</observations>`

func TestParseObservation(t *testing.T) {
	obs, err := domain.ParseObservation([]byte(observationXML))
	require.NoError(t, err)

	require.NotNil(t, obs.Temperature)
	assert.Equal(t, 1.2, *obs.Temperature)
	require.NotNil(t, obs.WindSpeed)
	assert.Equal(t, 7.5, *obs.WindSpeed)
	assert.Equal(t, "SSV", obs.WindDirection)
	assert.Equal(t, "Overcast", obs.ConditionText)
	assert.Equal(t, "2026-02-01 05:00:00", obs.Time)

	// Fields the feed did not supply stay absent.
	assert.Nil(t, obs.WindGust)
	assert.Nil(t, obs.Precipitation)
	assert.Nil(t, obs.Visibility)
}

func TestParseObservation_Malformed(t *testing.T) {
	_, err := domain.ParseObservation([]byte("<observations"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParseFailed))
}

func TestParseObservation_NoStation(t *testing.T) {
	_, err := domain.ParseObservation([]byte("<observations></observations>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingData))
}

func TestApplyObservation_OverlaysOnlyReportedFields(t *testing.T) {
	snap, err := domain.ParseForecast([]byte(forecastXML), "1", "Reykjavík")
	require.NoError(t, err)

	forecastGust := *snap.Current.WindGust
	hourlyBefore := len(snap.Hourly)
	dailyBefore := len(snap.Daily)

	obs, err := domain.ParseObservation([]byte(observationXML))
	require.NoError(t, err)
	snap.ApplyObservation(obs)

	// Observed values win.
	require.NotNil(t, snap.Current.Temperature)
	assert.Equal(t, 1.2, *snap.Current.Temperature)
	require.NotNil(t, snap.Current.WindSpeed)
	assert.Equal(t, 7.5, *snap.Current.WindSpeed)
	assert.Equal(t, "SSV", snap.Current.WindDirection)
	require.NotNil(t, snap.Current.WindBearing)
	assert.Equal(t, 202.5, *snap.Current.WindBearing)
	assert.Equal(t, "Overcast", snap.Current.ConditionText)
	assert.Equal(t, "cloudy", snap.Current.Condition)
	assert.Equal(t, "2026-02-01 05:00:00", snap.Current.ObservationTime)

	// Fields the observation did not report keep their forecast values.
	require.NotNil(t, snap.Current.WindGust)
	assert.Equal(t, forecastGust, *snap.Current.WindGust)
	require.NotNil(t, snap.Current.Visibility)

	// Apparent temperature is recomputed from the overlaid values.
	expected := domain.ApparentTemperature(domain.Float(1.2), domain.Float(7.5))
	require.NotNil(t, snap.Current.ApparentTemperature)
	assert.Equal(t, *expected, *snap.Current.ApparentTemperature)

	// The overlay never touches the hourly and daily series.
	assert.Len(t, snap.Hourly, hourlyBefore)
	assert.Len(t, snap.Daily, dailyBefore)
}

func TestApplyObservation_NilIsNoOp(t *testing.T) {
	snap, err := domain.ParseForecast([]byte(forecastXML), "1", "Reykjavík")
	require.NoError(t, err)
	before := *snap.Current.Temperature

	snap.ApplyObservation(nil)
	assert.Equal(t, before, *snap.Current.Temperature)
}
