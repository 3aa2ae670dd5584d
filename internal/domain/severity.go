package domain

import "strings"

// Severity tiers, highest first: red, orange, yellow, unknown.
var severityTiers = map[string]string{
	"extreme":  "red",
	"severe":   "orange",
	"moderate": "yellow",
	"minor":    "yellow",
	"unknown":  "unknown",
}

var severityRank = map[string]int{
	"red":     3,
	"orange":  2,
	"yellow":  1,
	"unknown": 0,
}

// SeverityTier maps CAP severity text to a display tier. Unrecognized text
// maps to "unknown".
func SeverityTier(severity string) string {
	if tier, ok := severityTiers[strings.ToLower(severity)]; ok {
		return tier
	}
	return "unknown"
}

// SeverityRank orders tiers for comparison and metrics: red 3, orange 2,
// yellow 1, unknown 0, none -1.
func SeverityRank(tier string) int {
	if tier == "none" {
		return -1
	}
	return severityRank[tier]
}

// HighestSeverity returns the highest severity tier present in the alert
// list, or "none" when the list is empty.
func HighestSeverity(alerts []Alert) string {
	best := "none"
	bestRank := -1
	for _, a := range alerts {
		tier := a.SeverityTier
		if tier == "" {
			tier = "unknown"
		}
		if rank := severityRank[tier]; rank > bestRank {
			bestRank = rank
			best = tier
		}
	}
	return best
}
