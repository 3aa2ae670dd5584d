package domain

import "time"

// Snapshot is the complete, unit-normalized weather picture for one station,
// produced whole on every refresh cycle. Values are metric: °C, m/s, mm, hPa,
// km. A snapshot is never mutated after it is returned.
type Snapshot struct {
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`

	Current Current `json:"current"`

	// Hourly is chronological and never nil; gaps in the source feed are
	// simply absent entries.
	Hourly []HourlyEntry `json:"hourly"`

	// Daily holds one summary per calendar date present in Hourly, in
	// ascending date order.
	Daily []DailySummary `json:"daily"`

	// Alerts preserves feed order and never is nil. The upstream feed does
	// not guarantee deduplication.
	Alerts []Alert `json:"alerts"`

	FetchedAt time.Time `json:"fetched_at"`
}

// Current holds the station's present conditions: the first forecast entry,
// overlaid with observed values where the observation feed supplied them.
type Current struct {
	Temperature         *float64 `json:"temperature,omitempty"`
	ApparentTemperature *float64 `json:"apparent_temperature,omitempty"`
	WindSpeed           *float64 `json:"wind_speed,omitempty"`
	WindGust            *float64 `json:"wind_gust,omitempty"`
	WindDirection       string   `json:"wind_direction,omitempty"`
	WindBearing         *float64 `json:"wind_bearing,omitempty"`
	Precipitation       *float64 `json:"precipitation,omitempty"`
	CloudCover          *float64 `json:"cloud_cover,omitempty"`
	DewPoint            *float64 `json:"dew_point,omitempty"`
	Humidity            *float64 `json:"humidity,omitempty"`
	Pressure            *float64 `json:"pressure,omitempty"`
	Visibility          *float64 `json:"visibility,omitempty"`
	Condition           string   `json:"condition,omitempty"`
	ConditionText       string   `json:"condition_text,omitempty"`

	// Source timestamps, kept as feed text rather than reparsed.
	ForecastTime    string `json:"forecast_time,omitempty"`
	ObservationTime string `json:"observation_time,omitempty"`
}

// HourlyEntry is one forecast period. Optional fields are present only when
// the feed supplied them.
type HourlyEntry struct {
	Time                time.Time `json:"datetime"`
	Temperature         *float64  `json:"temperature,omitempty"`
	ApparentTemperature *float64  `json:"apparent_temperature,omitempty"`
	Condition           string    `json:"condition,omitempty"`
	WindSpeed           *float64  `json:"wind_speed,omitempty"`
	WindBearing         *float64  `json:"wind_bearing,omitempty"`
	WindGust            *float64  `json:"wind_gust,omitempty"`
	Precipitation       *float64  `json:"precipitation,omitempty"`
	CloudCoverage       *float64  `json:"cloud_coverage,omitempty"`
	Humidity            *float64  `json:"humidity,omitempty"`
}

// DailySummary reduces one calendar date's hourly entries. A field with zero
// numeric samples for its date is omitted, not zeroed.
type DailySummary struct {
	// Date is midnight UTC of the summarized calendar date.
	Date          time.Time `json:"datetime"`
	TempMax       *float64  `json:"temperature,omitempty"`
	TempLow       *float64  `json:"templow,omitempty"`
	Condition     string    `json:"condition,omitempty"`
	WindSpeed     *float64  `json:"wind_speed,omitempty"`
	WindGust      *float64  `json:"wind_gust,omitempty"`
	Precipitation *float64  `json:"precipitation,omitempty"`
}

// Alert is one language-resolved info block from one CAP document.
type Alert struct {
	Identifier   string `json:"identifier,omitempty"`
	Event        string `json:"event,omitempty"`
	Severity     string `json:"severity,omitempty"`
	SeverityTier string `json:"severity_tier"`
	Onset        string `json:"onset,omitempty"`
	Expires      string `json:"expires,omitempty"`
	Headline     string `json:"headline,omitempty"`
	Description  string `json:"description,omitempty"`
	Urgency      string `json:"urgency,omitempty"`
	Certainty    string `json:"certainty,omitempty"`
	AreaDesc     string `json:"area_desc,omitempty"`
	Link         string `json:"link,omitempty"`
}

// Float is a convenience for building optional numeric values in tests and
// callers.
func Float(v float64) *float64 { return &v }
