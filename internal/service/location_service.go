package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vaketracker-api/internal/heatmap"
	"vaketracker-api/internal/metrics"
	"vaketracker-api/internal/models"
	"vaketracker-api/internal/region"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LocationService contains the business logic for captured locations and the dashboards built on them
type LocationService struct {
	store    LocationStore
	geocoder Geocoder
	metrics  *metrics.Collector
	now      func() time.Time
}

// LocationStore interface for dependency injection
type LocationStore interface {
	ListLocations(ctx context.Context) ([]models.LocatedRecord, error)
	CreateLocation(ctx context.Context, loc *models.LocatedRecord) error
}

// Geocoder turns coordinates into a display address
type Geocoder interface {
	Address(ctx context.Context, lat, lon float64) (string, error)
}

// NewLocationService creates a new location service. geocoder and collector may be nil.
func NewLocationService(store LocationStore, geocoder Geocoder, collector *metrics.Collector) *LocationService {
	return &LocationService{
		store:    store,
		geocoder: geocoder,
		metrics:  collector,
		now:      time.Now,
	}
}

// Capture validates, classifies and stores a new location for the authenticated user
func (s *LocationService) Capture(ctx context.Context, claims *models.Claims, req models.CaptureRequest) (*models.LocatedRecord, error) {
	if claims == nil {
		return nil, ErrUnauthenticated
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, fmt.Errorf("service: %w: latitude and longitude are required", ErrInvalidCoordinate)
	}

	lat, lon := *req.Latitude, *req.Longitude
	if !region.ValidCoordinate(lat, lon) {
		return nil, fmt.Errorf("service: %w: (%f, %f)", ErrInvalidCoordinate, lat, lon)
	}

	country, reg := region.Classify(lat, lon, req.Country, req.Region)

	loc := &models.LocatedRecord{
		ID:        uuid.NewString(),
		UserID:    claims.UserID,
		Latitude:  lat,
		Longitude: lon,
		Country:   country,
		Region:    reg,
		Notes:     strings.TrimSpace(req.Notes),
	}
	if req.CapturedAt != nil && !req.CapturedAt.IsZero() {
		loc.CapturedAt = req.CapturedAt.UTC()
	} else {
		loc.CapturedAt = s.now().UTC()
	}

	if s.geocoder != nil {
		address, err := s.geocoder.Address(ctx, lat, lon)
		if err != nil {
			log.Warn().Err(err).Float64("latitude", lat).Float64("longitude", lon).Msg("reverse geocoding failed, storing without address")
			if s.metrics != nil {
				s.metrics.GeocodeFailures.Inc()
			}
		}
		loc.Address = address
	}

	if err := s.store.CreateLocation(ctx, loc); err != nil {
		return nil, fmt.Errorf("service: failed to store location: %w", err)
	}

	if s.metrics != nil {
		s.metrics.LocationsCaptured.WithLabelValues(countryLabel(country)).Inc()
	}

	log.Info().
		Str("location_id", loc.ID).
		Str("user_id", loc.UserID).
		Str("country", country).
		Str("region", reg).
		Msg("location captured")

	return loc, nil
}

// List returns the locations visible to the authenticated user
func (s *LocationService) List(ctx context.Context, claims *models.Claims) ([]models.LocatedRecord, error) {
	return s.visible(ctx, claims)
}

// Heatmap aggregates the visible locations of one country by region
func (s *LocationService) Heatmap(ctx context.Context, claims *models.Claims, country string) (*models.HeatmapResult, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, ErrCountryRequired
	}

	records, err := s.visible(ctx, claims)
	if err != nil {
		return nil, err
	}

	result := heatmap.Aggregate(records, country)

	if result.Skipped > 0 {
		log.Warn().
			Str("country", country).
			Int("skipped", result.Skipped).
			Msg("heatmap: records with invalid coordinates were skipped")
	}
	if s.metrics != nil {
		s.metrics.HeatmapRequests.WithLabelValues(countryLabel(country)).Inc()
		s.metrics.RecordsSkipped.Add(float64(result.Skipped))
	}

	return &result, nil
}

// Summary returns activity counts over the visible locations
func (s *LocationService) Summary(ctx context.Context, claims *models.Claims) (*models.ActivitySummary, error) {
	records, err := s.visible(ctx, claims)
	if err != nil {
		return nil, err
	}

	summary := heatmap.Summarize(records, claims.Role.CanSeeAll())
	return &summary, nil
}

// Classify returns the country and region of a coordinate without storing anything
func (s *LocationService) Classify(lat, lon float64) (country, reg string, err error) {
	if !region.ValidCoordinate(lat, lon) {
		return "", "", fmt.Errorf("service: %w: (%f, %f)", ErrInvalidCoordinate, lat, lon)
	}
	country, reg = region.Classify(lat, lon, "", "")
	return country, reg, nil
}

func (s *LocationService) visible(ctx context.Context, claims *models.Claims) ([]models.LocatedRecord, error) {
	if claims == nil {
		return nil, ErrUnauthenticated
	}

	records, err := s.store.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}

	if claims.Role.CanSeeAll() {
		return records, nil
	}

	visible := []models.LocatedRecord{}
	for _, rec := range records {
		if claims.CanView(rec) {
			visible = append(visible, rec)
		}
	}
	return visible, nil
}

// countryLabel keeps metric label cardinality bounded to the supported countries.
func countryLabel(country string) string {
	switch {
	case country == "":
		return "unresolved"
	case region.IsSupported(country):
		return country
	default:
		return "other"
	}
}
