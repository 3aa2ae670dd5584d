package domain

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ftimeLayout is the forecast valid-time layout. The feed carries no zone;
// Iceland is UTC year-round.
const ftimeLayout = "2006-01-02 15:04:05"

type forecastDocument struct {
	XMLName  xml.Name
	Stations []forecastStation `xml:"station"`
}

type forecastStation struct {
	ID      string          `xml:"id,attr"`
	Name    string          `xml:"name"`
	Entries []forecastEntry `xml:"forecast"`
}

// forecastEntry carries the raw text of one forecast period. All values stay
// strings here; numeric conversion is tolerant and happens field by field.
type forecastEntry struct {
	FTime string `xml:"ftime"`
	T     string `xml:"T"`
	F     string `xml:"F"`
	FG    string `xml:"FG"`
	D     string `xml:"D"`
	W     string `xml:"W"`
	R     string `xml:"R"`
	N     string `xml:"N"`
	TD    string `xml:"TD"`
	RH    string `xml:"RH"`
	P     string `xml:"P"`
	V     string `xml:"V"`
}

// ParseForecast builds the snapshot skeleton from a forecast feed body. The
// station record is located by id when the feed labels it, falling back to
// the first record. The first forecast entry becomes the current conditions
// stand-in. Hourly and daily series are derived from all entries.
func ParseForecast(body []byte, stationID, stationName string) (*Snapshot, error) {
	var doc forecastDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("forecast feed: %w: %v", ErrParseFailed, err)
	}

	station := findStation(doc.Stations, stationID)
	if station == nil {
		return nil, fmt.Errorf("forecast feed: %w: no station record", ErrMissingData)
	}
	if len(station.Entries) == 0 {
		return nil, fmt.Errorf("forecast feed: %w: no forecast entries", ErrMissingData)
	}

	current := station.Entries[0]
	temp := optFloat(current.T)
	wind := optFloat(current.F)

	snap := &Snapshot{
		StationID:   stationID,
		StationName: stationName,
		Current: Current{
			Temperature:         temp,
			ApparentTemperature: ApparentTemperature(temp, wind),
			WindSpeed:           wind,
			WindGust:            optFloat(current.FG),
			WindDirection:       text(current.D),
			WindBearing:         WindBearing(text(current.D)),
			Precipitation:       optFloat(current.R),
			CloudCover:          optFloat(current.N),
			DewPoint:            optFloat(current.TD),
			Humidity:            optFloat(current.RH),
			Pressure:            optFloat(current.P),
			Visibility:          optFloat(current.V),
			Condition:           MapCondition(text(current.W)),
			ConditionText:       text(current.W),
			ForecastTime:        text(current.FTime),
		},
		Alerts:    []Alert{},
		FetchedAt: clock.Now().UTC(),
	}

	snap.Hourly = parseHourly(station.Entries)
	snap.Daily = AggregateDaily(snap.Hourly)

	return snap, nil
}

func findStation(stations []forecastStation, stationID string) *forecastStation {
	for i := range stations {
		if stations[i].ID == stationID {
			return &stations[i]
		}
	}
	if len(stations) > 0 {
		return &stations[0]
	}
	return nil
}

// parseHourly converts forecast entries into the hourly series. Entries
// without a parsable valid time are skipped.
func parseHourly(entries []forecastEntry) []HourlyEntry {
	hourly := make([]HourlyEntry, 0, len(entries))
	for _, fc := range entries {
		ftime := text(fc.FTime)
		if ftime == "" {
			continue
		}
		ts, err := time.Parse(ftimeLayout, ftime)
		if err != nil {
			continue
		}

		temp := optFloat(fc.T)
		wind := optFloat(fc.F)

		hourly = append(hourly, HourlyEntry{
			Time:                ts.UTC(),
			Temperature:         temp,
			ApparentTemperature: ApparentTemperature(temp, wind),
			Condition:           MapCondition(text(fc.W)),
			WindSpeed:           wind,
			WindBearing:         WindBearing(text(fc.D)),
			WindGust:            optFloat(fc.FG),
			Precipitation:       optFloat(fc.R),
			CloudCoverage:       optFloat(fc.N),
			Humidity:            optFloat(fc.RH),
		})
	}
	return hourly
}

// text trims feed whitespace; an all-whitespace value is absent.
func text(s string) string {
	return strings.TrimSpace(s)
}

// optFloat parses a numeric feed value tolerantly. Missing or unparsable
// text yields nil, never an error.
func optFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
