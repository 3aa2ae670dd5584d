package domain

import "strings"

// conditionRule maps an English description fragment to a condition code.
// Rules are checked in order and the first substring match wins, so more
// specific phrases must precede the generic ones they contain (for example
// "partly cloudy" before "cloudy"). This is a coarse heuristic by design;
// reordering the table changes observable behavior.
type conditionRule struct {
	substring string
	code      string
}

var conditionRules = []conditionRule{
	{"clear sky", "sunny"},
	{"partly cloudy", "partlycloudy"},
	{"cloudy", "cloudy"},
	{"overcast", "cloudy"},
	{"light rain", "rainy"},
	{"rain", "rainy"},
	{"rain showers", "rainy"},
	{"drizzle", "rainy"},
	{"light drizzle", "rainy"},
	{"snow", "snowy"},
	{"light snow", "snowy"},
	{"snow showers", "snowy"},
	{"sleet", "snowy-rainy"},
	{"light sleet", "snowy-rainy"},
	{"fog", "fog"},
	{"mist", "fog"},
	{"thunder", "lightning"},
	{"thunderstorm", "lightning-rainy"},
}

// MapCondition translates a weather description into a condition code.
// Empty or unrecognized text yields "cloudy".
func MapCondition(text string) string {
	if text == "" {
		return "cloudy"
	}
	lower := strings.ToLower(text)
	for _, rule := range conditionRules {
		if strings.Contains(lower, rule.substring) {
			return rule.code
		}
	}
	return "cloudy"
}

// windDirections maps 16-point compass labels to bearings in degrees,
// covering both Icelandic (A=east, V=west) and English abbreviations.
var windDirections = map[string]float64{
	"N": 0, "NNA": 22.5, "NA": 45, "ANA": 67.5,
	"A": 90, "ASA": 112.5, "SA": 135, "SSA": 157.5,
	"S": 180, "SSV": 202.5, "SV": 225, "VSV": 247.5,
	"V": 270, "VNV": 292.5, "NV": 315, "NNV": 337.5,

	"NNE": 22.5, "NE": 45, "ENE": 67.5, "E": 90,
	"ESE": 112.5, "SE": 135, "SSE": 157.5, "SSW": 202.5,
	"SW": 225, "WSW": 247.5, "W": 270, "WNW": 292.5, "NW": 315,
}

// WindBearing converts a wind direction label to degrees. Unknown or empty
// labels yield nil.
func WindBearing(label string) *float64 {
	if label == "" {
		return nil
	}
	bearing, ok := windDirections[strings.ToUpper(label)]
	if !ok {
		return nil
	}
	return &bearing
}
