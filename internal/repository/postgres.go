package repository

import (
	"context"
	"errors"
	"fmt"

	"vaketracker-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the location store and place lookup for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the tables if they do not exist yet
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ListLocations returns every captured location, oldest first
func (r *Repository) ListLocations(ctx context.Context) ([]models.LocatedRecord, error) {
	sql := `
		SELECT
			id::text,
			user_id,
			latitude,
			longitude,
			COALESCE(country, ''),
			COALESCE(region, ''),
			COALESCE(address, ''),
			COALESCE(notes, ''),
			captured_at
		FROM locations
		ORDER BY captured_at, id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	locations := []models.LocatedRecord{}
	for rows.Next() {
		var loc models.LocatedRecord
		err := rows.Scan(
			&loc.ID,
			&loc.UserID,
			&loc.Latitude,
			&loc.Longitude,
			&loc.Country,
			&loc.Region,
			&loc.Address,
			&loc.Notes,
			&loc.CapturedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// CreateLocation stores a captured location
func (r *Repository) CreateLocation(ctx context.Context, loc *models.LocatedRecord) error {
	sql := `
		INSERT INTO locations (id, user_id, latitude, longitude, country, region, address, notes, captured_at)
		VALUES ($1::text::uuid, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9)
	`

	_, err := r.db.Exec(ctx, sql,
		loc.ID,
		loc.UserID,
		loc.Latitude,
		loc.Longitude,
		loc.Country,
		loc.Region,
		loc.Address,
		loc.Notes,
		loc.CapturedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert location: %w", err)
	}

	return nil
}

// FindNearestPlace performs a spatial query to find the nearest gazetteer place to the given coordinates.
// It returns nil when nothing lies within 10km.
func (r *Repository) FindNearestPlace(ctx context.Context, lat, lon float64) (*models.Place, error) {
	sql := `
		SELECT
			id,
			name,
			locality,
			region,
			country,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM places
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, 10000) -- Within 10km
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var place models.Place
	err := r.db.QueryRow(ctx, sql, lat, lon).Scan(
		&place.ID,
		&place.Name,
		&place.Locality,
		&place.Region,
		&place.Country,
		&place.Latitude,
		&place.Longitude,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &place, nil
}
