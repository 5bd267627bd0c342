package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"vaketracker-api/internal/models"
	"vaketracker-api/internal/region"

	"github.com/google/uuid"
)

var (
	locationColumns = []string{"user_id", "latitude", "longitude", "country", "region", "notes", "captured_at"}
	placeColumns    = []string{"name", "locality", "region", "country", "latitude", "longitude"}
)

// parseResult holds the rows that can be imported and how many were rejected
type parseResult struct {
	Locations []models.LocatedRecord
	Places    []models.Place
	Skipped   int
}

// readRows checks the header against columns and returns the data rows keyed by column name
func readRows(r io.Reader, columns []string) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q in header", col)
		}
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row := make(map[string]string, len(columns))
		for _, col := range columns {
			if i := index[col]; i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseLocations reads captured locations. Rows with unusable coordinates are
// counted and dropped; blank country and region are classified from the coordinate.
func parseLocations(r io.Reader, now time.Time) (parseResult, error) {
	rows, err := readRows(r, locationColumns)
	if err != nil {
		return parseResult{}, err
	}

	var result parseResult
	for _, row := range rows {
		lat, lon, ok := parseCoordinate(row["latitude"], row["longitude"])
		if !ok {
			result.Skipped++
			continue
		}

		capturedAt := now
		if s := row["captured_at"]; s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				result.Skipped++
				continue
			}
			capturedAt = t
		}

		country, reg := region.Classify(lat, lon, row["country"], row["region"])
		result.Locations = append(result.Locations, models.LocatedRecord{
			ID:         uuid.NewString(),
			UserID:     row["user_id"],
			Latitude:   lat,
			Longitude:  lon,
			Country:    country,
			Region:     reg,
			Notes:      row["notes"],
			CapturedAt: capturedAt.UTC(),
		})
	}

	return result, nil
}

// parsePlaces reads gazetteer entries used for reverse geocoding
func parsePlaces(r io.Reader) (parseResult, error) {
	rows, err := readRows(r, placeColumns)
	if err != nil {
		return parseResult{}, err
	}

	var result parseResult
	for _, row := range rows {
		lat, lon, ok := parseCoordinate(row["latitude"], row["longitude"])
		if !ok || row["name"] == "" {
			result.Skipped++
			continue
		}

		country := row["country"]
		if country == "" {
			country = region.ClassifyCountry(lat, lon)
		}

		result.Places = append(result.Places, models.Place{
			Name:      row["name"],
			Locality:  row["locality"],
			Region:    row["region"],
			Country:   country,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return result, nil
}

func parseCoordinate(latStr, lonStr string) (lat, lon float64, ok bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, region.ValidCoordinate(lat, lon)
}
