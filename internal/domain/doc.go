// Package domain models weather data published by Veðurstofa Íslands
// (the Icelandic Meteorological Office).
//
// # Data Sources
//
// Three XML feeds are consumed:
//
//   - Forecast: https://xmlweather.vedur.is/?op_w=xml&type=forec&...&ids=<station>
//     One <station> record per requested id, each holding an ordered list of
//     <forecast> entries. The first entry is the nearest upcoming forecast
//     period and stands in for current conditions until observations arrive.
//   - Observation: same host with type=obs. One <station> record carrying the
//     latest measured values. Observations are actual measurements and
//     override forecast-derived current conditions wherever present.
//   - Alerts: https://api.vedur.is/cap/v1/capbroker/active/feed/met — an
//     Atom/RSS index of active CAP 1.2 alert documents.
//
// # Field Codes
//
// Forecast and observation records use short element names:
//
//	ftime  forecast valid time, "2006-01-02 15:04:05" (Iceland is UTC
//	       year-round, so feed times are treated as UTC)
//	T      air temperature °C          F    wind speed m/s
//	FG     wind gust m/s               D    wind direction label (16-point,
//	                                        Icelandic or English abbreviations)
//	W      weather description text    R    precipitation mm
//	N      cloud cover %               RH   relative humidity %
//	P      pressure hPa                TD   dew point °C
//	V      visibility km               time observation time (obs feed only)
//
// Any numeric field may be missing or unparsable; such fields are absent,
// not zero. Absence is modeled with nil pointers throughout.
//
// # Alerts
//
// CAP documents carry one <info> block per language. The block whose
// language code starts with the configured preference wins; otherwise the
// first block is used. CAP severity text maps to a display tier:
// extreme→red, severe→orange, moderate→yellow, minor→yellow, else unknown.
package domain
