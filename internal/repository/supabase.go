package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"vaketracker-api/internal/models"

	"github.com/supabase-community/supabase-go"
)

const locationsTable = "locations"

// SupabaseRepository stores captured locations in a hosted Supabase project
type SupabaseRepository struct {
	client *supabase.Client
}

// NewSupabaseClient creates a Supabase client for the given project URL and API key
func NewSupabaseClient(url, key string) (*supabase.Client, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("repository: supabase url and key are required")
	}

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to initialize supabase client: %w", err)
	}
	return client, nil
}

// NewSupabaseRepository creates a new Supabase-backed location store
func NewSupabaseRepository(client *supabase.Client) *SupabaseRepository {
	return &SupabaseRepository{client: client}
}

// supabaseRow mirrors a row of the locations table. Coordinates are decoded
// leniently because rows written by older clients may hold strings or nulls.
type supabaseRow struct {
	ID         string          `json:"id"`
	UserID     *string         `json:"user_id"`
	Latitude   json.RawMessage `json:"latitude"`
	Longitude  json.RawMessage `json:"longitude"`
	Country    *string         `json:"country"`
	Region     *string         `json:"region"`
	Address    *string         `json:"address"`
	Notes      *string         `json:"notes"`
	CapturedAt *time.Time      `json:"captured_at"`
}

type supabaseInsert struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Country    *string   `json:"country"`
	Region     *string   `json:"region"`
	Address    *string   `json:"address"`
	Notes      *string   `json:"notes"`
	CapturedAt time.Time `json:"captured_at"`
}

// ListLocations returns every captured location
func (r *SupabaseRepository) ListLocations(ctx context.Context) ([]models.LocatedRecord, error) {
	data, _, err := r.client.From(locationsTable).Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to fetch locations from supabase: %w", err)
	}

	return decodeSupabaseRows(data)
}

// CreateLocation stores a captured location
func (r *SupabaseRepository) CreateLocation(ctx context.Context, loc *models.LocatedRecord) error {
	row := supabaseInsert{
		ID:         loc.ID,
		UserID:     loc.UserID,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		Country:    nullable(loc.Country),
		Region:     nullable(loc.Region),
		Address:    nullable(loc.Address),
		Notes:      nullable(loc.Notes),
		CapturedAt: loc.CapturedAt,
	}

	_, _, err := r.client.From(locationsTable).Insert(row, false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("repository: failed to insert location into supabase: %w", err)
	}
	return nil
}

func decodeSupabaseRows(data []byte) ([]models.LocatedRecord, error) {
	var rows []supabaseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("repository: failed to decode supabase rows: %w", err)
	}

	locations := make([]models.LocatedRecord, 0, len(rows))
	for _, row := range rows {
		loc := models.LocatedRecord{
			ID:        row.ID,
			UserID:    deref(row.UserID),
			Latitude:  parseCoordinate(row.Latitude),
			Longitude: parseCoordinate(row.Longitude),
			Country:   deref(row.Country),
			Region:    deref(row.Region),
			Address:   deref(row.Address),
			Notes:     deref(row.Notes),
		}
		if row.CapturedAt != nil {
			loc.CapturedAt = *row.CapturedAt
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// parseCoordinate accepts JSON numbers and numeric strings. Anything else,
// including null, becomes NaN so that the record fails coordinate validation.
func parseCoordinate(raw json.RawMessage) float64 {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return math.NaN()
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
