package domain

import "math"

// Wind chill validity bounds for the JAG/TI formula.
const (
	windChillMaxTempC   = 10.0 // °C
	windChillMinWindKmh = 4.8  // km/h
)

// ApparentTemperature computes the JAG/TI wind-chill index from air
// temperature in °C and wind speed in m/s. It returns nil when either input
// is absent. Outside the formula's validity range (temperature above 10 °C
// or wind below 4.8 km/h) wind chill has no effect and the air temperature
// is returned unchanged; that is the defined domain boundary, not an error.
// Results are rounded to one decimal.
func ApparentTemperature(tempC, windMps *float64) *float64 {
	if tempC == nil || windMps == nil {
		return nil
	}

	windKmh := *windMps * 3.6
	if *tempC > windChillMaxTempC || windKmh < windChillMinWindKmh {
		v := *tempC
		return &v
	}

	pow := math.Pow(windKmh, 0.16)
	chill := 13.12 + 0.6215**tempC - 11.37*pow + 0.3965**tempC*pow
	return Float(round1(chill))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
