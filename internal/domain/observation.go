package domain

import (
	"encoding/xml"
	"fmt"
)

type observationDocument struct {
	XMLName  xml.Name
	Stations []observationStation `xml:"station"`
}

// observationStation carries the measured values straight under the station
// element, using the same field codes as the forecast feed plus an
// observation time.
type observationStation struct {
	ID   string `xml:"id,attr"`
	Time string `xml:"time"`
	T    string `xml:"T"`
	F    string `xml:"F"`
	FG   string `xml:"FG"`
	D    string `xml:"D"`
	W    string `xml:"W"`
	R    string `xml:"R"`
	N    string `xml:"N"`
	TD   string `xml:"TD"`
	RH   string `xml:"RH"`
	P    string `xml:"P"`
	V    string `xml:"V"`
}

// Observation is the partial field set a station observation can supply.
// Nil and empty fields were not reported and must not overwrite forecast
// values.
type Observation struct {
	Temperature   *float64
	WindSpeed     *float64
	WindGust      *float64
	Humidity      *float64
	Pressure      *float64
	DewPoint      *float64
	Precipitation *float64
	CloudCover    *float64
	Visibility    *float64
	WindDirection string
	ConditionText string
	Time          string
}

// ParseObservation extracts the observed field set from an observation feed
// body. The whole feed is optional upstream, so callers treat any error here
// as "no overlay" rather than a refresh failure.
func ParseObservation(body []byte) (*Observation, error) {
	var doc observationDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("observation feed: %w: %v", ErrParseFailed, err)
	}
	if len(doc.Stations) == 0 {
		return nil, fmt.Errorf("observation feed: %w: no station record", ErrMissingData)
	}

	st := doc.Stations[0]
	return &Observation{
		Temperature:   optFloat(st.T),
		WindSpeed:     optFloat(st.F),
		WindGust:      optFloat(st.FG),
		Humidity:      optFloat(st.RH),
		Pressure:      optFloat(st.P),
		DewPoint:      optFloat(st.TD),
		Precipitation: optFloat(st.R),
		CloudCover:    optFloat(st.N),
		Visibility:    optFloat(st.V),
		WindDirection: text(st.D),
		ConditionText: text(st.W),
		Time:          text(st.Time),
	}, nil
}

// ApplyObservation overlays observed values onto the snapshot's current
// conditions. Only reported fields overwrite; hourly and daily series are
// never touched. Apparent temperature is recomputed exactly once, after all
// fields are applied.
func (s *Snapshot) ApplyObservation(obs *Observation) {
	if obs == nil {
		return
	}

	overlay := []struct {
		dst **float64
		src *float64
	}{
		{&s.Current.Temperature, obs.Temperature},
		{&s.Current.WindSpeed, obs.WindSpeed},
		{&s.Current.WindGust, obs.WindGust},
		{&s.Current.Humidity, obs.Humidity},
		{&s.Current.Pressure, obs.Pressure},
		{&s.Current.DewPoint, obs.DewPoint},
		{&s.Current.Precipitation, obs.Precipitation},
		{&s.Current.CloudCover, obs.CloudCover},
		{&s.Current.Visibility, obs.Visibility},
	}
	for _, f := range overlay {
		if f.src != nil {
			v := *f.src
			*f.dst = &v
		}
	}

	if obs.WindDirection != "" {
		s.Current.WindDirection = obs.WindDirection
		if bearing := WindBearing(obs.WindDirection); bearing != nil {
			s.Current.WindBearing = bearing
		}
	}

	if obs.ConditionText != "" {
		s.Current.ConditionText = obs.ConditionText
		s.Current.Condition = MapCondition(obs.ConditionText)
	}

	s.Current.ApparentTemperature = ApparentTemperature(s.Current.Temperature, s.Current.WindSpeed)

	if obs.Time != "" {
		s.Current.ObservationTime = obs.Time
	}
}
