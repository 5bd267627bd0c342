package heatmap

import (
	"testing"
	"time"

	"vaketracker-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	first := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	last := time.Date(2024, 3, 9, 17, 30, 0, 0, time.UTC)

	records := []models.LocatedRecord{
		{UserID: "u1", Latitude: 14.6, Longitude: -90.5, CapturedAt: last},
		{UserID: "u1", Latitude: 15.6, Longitude: -91.0, CapturedAt: first},
		{UserID: "u2", Latitude: 13.69, Longitude: -89.19},
		{UserID: "u2", Latitude: 40.4, Longitude: -3.7, CapturedAt: first.Add(time.Hour)},
		{UserID: "u3", Latitude: 91, Longitude: 0, CapturedAt: first.Add(-time.Hour)},
		{Latitude: 0, Longitude: 0, Country: "Guatemala"},
	}

	t.Run("with users", func(t *testing.T) {
		summary := Summarize(records, true)

		assert.Equal(t, 5, summary.Total)
		assert.Equal(t, 1, summary.Skipped)
		assert.Equal(t, 1, summary.Unresolved)
		assert.Equal(t, map[string]int{"Guatemala": 3, "El Salvador": 1}, summary.ByCountry)
		assert.Equal(t, map[string]int{"u1": 2, "u2": 2}, summary.ByUser)
		require.NotNil(t, summary.FirstCapture)
		require.NotNil(t, summary.LastCapture)
		assert.Equal(t, first, *summary.FirstCapture)
		assert.Equal(t, last, *summary.LastCapture)
	})

	t.Run("without users", func(t *testing.T) {
		summary := Summarize(records, false)
		assert.Nil(t, summary.ByUser)
	})

	t.Run("empty", func(t *testing.T) {
		summary := Summarize(nil, true)
		assert.Equal(t, 0, summary.Total)
		assert.Empty(t, summary.ByCountry)
		assert.Nil(t, summary.FirstCapture)
		assert.Nil(t, summary.LastCapture)
	})
}
