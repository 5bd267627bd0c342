package models

import "time"

// RegionBucket is the number of records that fell into one region, with Intensity
// normalized to 0-100 against the busiest region of the same result.
type RegionBucket struct {
	Region    string  `json:"region"`
	Count     int     `json:"count"`
	Intensity float64 `json:"intensity"`
}

type HeatmapResult struct {
	Country string         `json:"country"`
	Buckets []RegionBucket `json:"buckets"`
	Total   int            `json:"total"`
	Skipped int            `json:"skipped"`
}

// ActivitySummary backs the dashboard overview cards.
type ActivitySummary struct {
	Total        int            `json:"total"`
	Skipped      int            `json:"skipped"`
	Unresolved   int            `json:"unresolved"`
	ByCountry    map[string]int `json:"by_country"`
	ByUser       map[string]int `json:"by_user,omitempty"`
	FirstCapture *time.Time     `json:"first_capture,omitempty"`
	LastCapture  *time.Time     `json:"last_capture,omitempty"`
}
