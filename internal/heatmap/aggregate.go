// Package heatmap turns captured locations into per-region counts for one country.
package heatmap

import (
	"sort"
	"strings"

	"vaketracker-api/internal/models"
	"vaketracker-api/internal/region"

	"github.com/rs/zerolog/log"
)

// Aggregate groups the records that belong to selectedCountry by region and
// normalizes each count against the busiest region. Records with invalid
// coordinates are skipped and reported in Skipped; they never fail the call.
//
// Buckets are sorted by count descending; equal counts keep the order in which
// their region was first seen.
func Aggregate(records []models.LocatedRecord, selectedCountry string) models.HeatmapResult {
	selectedCountry = strings.TrimSpace(selectedCountry)
	result := models.HeatmapResult{
		Country: selectedCountry,
		Buckets: []models.RegionBucket{},
	}

	counts := make(map[string]int)
	var order []string

	for _, rec := range records {
		if !region.ValidCoordinate(rec.Latitude, rec.Longitude) {
			result.Skipped++
			log.Debug().
				Str("record_id", rec.ID).
				Float64("latitude", rec.Latitude).
				Float64("longitude", rec.Longitude).
				Msg("heatmap: skipping record with invalid coordinate")
			continue
		}

		if selectedCountry == "" {
			continue
		}

		country, reg := region.Classify(rec.Latitude, rec.Longitude, rec.Country, rec.Region)
		if country != selectedCountry {
			continue
		}

		if _, seen := counts[reg]; !seen {
			order = append(order, reg)
		}
		counts[reg]++
		result.Total++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	for _, reg := range order {
		bucket := models.RegionBucket{Region: reg, Count: counts[reg]}
		if maxCount > 0 {
			bucket.Intensity = float64(bucket.Count) / float64(maxCount) * 100
		}
		result.Buckets = append(result.Buckets, bucket)
	}

	sort.SliceStable(result.Buckets, func(i, j int) bool {
		return result.Buckets[i].Count > result.Buckets[j].Count
	})

	return result
}

// Band maps an intensity to one of five display bands, 0 (coolest) to 4 (hottest),
// at 20-point steps.
func Band(intensity float64) int {
	switch {
	case intensity >= 80:
		return 4
	case intensity >= 60:
		return 3
	case intensity >= 40:
		return 2
	case intensity >= 20:
		return 1
	default:
		return 0
	}
}
