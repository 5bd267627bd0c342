package service

import (
	"context"
	"fmt"
	"strings"

	"vaketracker-api/internal/models"
	"vaketracker-api/internal/region"
)

// ReverseGeoCodeService resolves coordinates to the nearest known place
type ReverseGeoCodeService struct {
	repo PlaceRepository
}

// PlaceRepository interface for dependency injection
type PlaceRepository interface {
	FindNearestPlace(ctx context.Context, lat, lon float64) (*models.Place, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(repo PlaceRepository) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{repo: repo}
}

// ReverseGeocode finds the nearest place to the given coordinates using spatial query
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Place, error) {
	if !region.ValidCoordinate(lat, lon) {
		return nil, fmt.Errorf("service: %w: (%f, %f)", ErrInvalidCoordinate, lat, lon)
	}

	place, err := s.repo.FindNearestPlace(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest place: %w", err)
	}

	return place, nil
}

// Address returns a display address for the coordinates, or "" when no place is near.
func (s *ReverseGeoCodeService) Address(ctx context.Context, lat, lon float64) (string, error) {
	place, err := s.ReverseGeocode(ctx, lat, lon)
	if err != nil || place == nil {
		return "", err
	}
	return FormatAddress(place), nil
}

// FormatAddress joins the non-empty name, locality and region of a place.
func FormatAddress(p *models.Place) string {
	var parts []string
	for _, s := range []string{p.Name, p.Locality, p.Region} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
