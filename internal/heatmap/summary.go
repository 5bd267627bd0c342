package heatmap

import (
	"vaketracker-api/internal/models"
	"vaketracker-api/internal/region"
)

// Summarize counts records per effective country and, when byUser is set, per user.
// Invalid coordinates are counted in Skipped; records outside every known country in Unresolved.
func Summarize(records []models.LocatedRecord, byUser bool) models.ActivitySummary {
	summary := models.ActivitySummary{
		ByCountry: make(map[string]int),
	}
	if byUser {
		summary.ByUser = make(map[string]int)
	}

	for _, rec := range records {
		if !region.ValidCoordinate(rec.Latitude, rec.Longitude) {
			summary.Skipped++
			continue
		}
		summary.Total++

		country, _ := region.Classify(rec.Latitude, rec.Longitude, rec.Country, rec.Region)
		if country == "" {
			summary.Unresolved++
		} else {
			summary.ByCountry[country]++
		}

		if byUser && rec.UserID != "" {
			summary.ByUser[rec.UserID]++
		}

		if rec.CapturedAt.IsZero() {
			continue
		}
		at := rec.CapturedAt
		if summary.FirstCapture == nil || at.Before(*summary.FirstCapture) {
			summary.FirstCapture = &at
		}
		if summary.LastCapture == nil || at.After(*summary.LastCapture) {
			summary.LastCapture = &at
		}
	}

	return summary
}
