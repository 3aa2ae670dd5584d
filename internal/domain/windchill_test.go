package domain_test

import (
	"math"
	"testing"

	"github.com/halldorv/vedurvakt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApparentTemperature_AbsentInputs(t *testing.T) {
	assert.Nil(t, domain.ApparentTemperature(nil, nil))
	assert.Nil(t, domain.ApparentTemperature(domain.Float(5), nil))
	assert.Nil(t, domain.ApparentTemperature(nil, domain.Float(5)))
}

func TestApparentTemperature_OutsideValidityRange(t *testing.T) {
	// Warm air: formula does not apply, temperature passes through.
	got := domain.ApparentTemperature(domain.Float(12.3), domain.Float(10))
	require.NotNil(t, got)
	assert.Equal(t, 12.3, *got)

	// Calm wind: 1 m/s = 3.6 km/h, below the 4.8 km/h floor.
	got = domain.ApparentTemperature(domain.Float(5), domain.Float(1))
	require.NotNil(t, got)
	assert.Equal(t, 5.0, *got)

	// Boundary: exactly 10 °C still qualifies for wind chill.
	got = domain.ApparentTemperature(domain.Float(10), domain.Float(10))
	require.NotNil(t, got)
	assert.Less(t, *got, 10.0)
}

func TestApparentTemperature_JAGTIFormula(t *testing.T) {
	// 5 °C with 10 km/h wind, checked against the formula evaluated directly.
	windMps := 10.0 / 3.6
	got := domain.ApparentTemperature(domain.Float(5), &windMps)
	require.NotNil(t, got)

	expected := 13.12 + 0.6215*5 + (-11.37+0.3965*5)*math.Pow(10, 0.16)
	expected = math.Round(expected*10) / 10
	assert.Equal(t, expected, *got)
	assert.Equal(t, 2.7, *got)
}

func TestApparentTemperature_RoundsToOneDecimal(t *testing.T) {
	got := domain.ApparentTemperature(domain.Float(-5), domain.Float(8))
	require.NotNil(t, got)
	assert.Equal(t, math.Round(*got*10)/10, *got)
}
