package domain

import (
	"sort"
	"time"
)

// AggregateDaily reduces the hourly series into one summary per calendar
// date, in ascending date order. Grouping uses the UTC date component of
// each entry's time; the feed is already UTC-equivalent for Iceland. Fields
// with no samples on a date are omitted rather than zeroed.
func AggregateDaily(hourly []HourlyEntry) []DailySummary {
	if len(hourly) == 0 {
		return []DailySummary{}
	}

	byDate := map[time.Time][]HourlyEntry{}
	for _, entry := range hourly {
		y, m, d := entry.Time.UTC().Date()
		date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		byDate[date] = append(byDate[date], entry)
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	daily := make([]DailySummary, 0, len(dates))
	for _, date := range dates {
		entries := byDate[date]

		var temps, winds, gusts, precips []float64
		var conditions []string
		for _, e := range entries {
			if e.Temperature != nil {
				temps = append(temps, *e.Temperature)
			}
			if e.WindSpeed != nil {
				winds = append(winds, *e.WindSpeed)
			}
			if e.WindGust != nil {
				gusts = append(gusts, *e.WindGust)
			}
			if e.Precipitation != nil {
				precips = append(precips, *e.Precipitation)
			}
			if e.Condition != "" {
				conditions = append(conditions, e.Condition)
			}
		}

		summary := DailySummary{
			Date:      date,
			Condition: modalCondition(conditions),
		}
		if len(temps) > 0 {
			summary.TempMax = Float(maxOf(temps))
			summary.TempLow = Float(minOf(temps))
		}
		if len(winds) > 0 {
			summary.WindSpeed = Float(round1(meanOf(winds)))
		}
		if len(gusts) > 0 {
			summary.WindGust = Float(maxOf(gusts))
		}
		if len(precips) > 0 {
			summary.Precipitation = Float(round1(sumOf(precips)))
		}

		daily = append(daily, summary)
	}
	return daily
}

// modalCondition picks the most frequent condition code. Ties keep the code
// that was encountered first, making the result deterministic for a given
// input order.
func modalCondition(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}

	counts := map[string]int{}
	var order []string
	for _, c := range conditions {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

func maxOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func meanOf(vs []float64) float64 {
	return sumOf(vs) / float64(len(vs))
}

func sumOf(vs []float64) float64 {
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum
}
