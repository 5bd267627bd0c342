package handler

import (
	"context"
	"errors"
	"net/http"

	"vaketracker-api/internal/heatmap"
	"vaketracker-api/internal/middleware"
	"vaketracker-api/internal/models"
	"vaketracker-api/internal/region"
	"vaketracker-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LocationHandler handles capture, listing and dashboard requests
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	Capture(ctx context.Context, claims *models.Claims, req models.CaptureRequest) (*models.LocatedRecord, error)
	List(ctx context.Context, claims *models.Claims) ([]models.LocatedRecord, error)
	Heatmap(ctx context.Context, claims *models.Claims, country string) (*models.HeatmapResult, error)
	Summary(ctx context.Context, claims *models.Claims) (*models.ActivitySummary, error)
	Classify(lat, lon float64) (country, region string, err error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// heatmapBucket is a region bucket with its display band
type heatmapBucket struct {
	models.RegionBucket
	Band int `json:"band"`
}

type heatmapResponse struct {
	Country string          `json:"country"`
	Buckets []heatmapBucket `json:"buckets"`
	Total   int             `json:"total"`
	Skipped int             `json:"skipped"`
}

type classifyResponse struct {
	Country string `json:"country"`
	Region  string `json:"region"`
}

// Capture godoc
// @Summary      Capture a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        request body models.CaptureRequest true "Coordinate and optional labels"
// @Success      201 {object} models.LocatedRecord
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/v1/locations [post]
func (h *LocationHandler) Capture(c *gin.Context) {
	var req models.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	claims, _ := middleware.ClaimsFromContext(c)
	loc, err := h.service.Capture(c.Request.Context(), claims, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, loc)
}

// List godoc
// @Summary      List visible locations
// @Tags         locations
// @Produce      json
// @Success      200 {array} models.LocatedRecord
// @Failure      401 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/v1/locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	claims, _ := middleware.ClaimsFromContext(c)
	locations, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Heatmap godoc
// @Summary      Per-region heat map of one country
// @Tags         dashboard
// @Produce      json
// @Param        country query string true "Country label, e.g. Guatemala"
// @Success      200 {object} heatmapResponse
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/v1/heatmap [get]
func (h *LocationHandler) Heatmap(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'country'"})
		return
	}

	claims, _ := middleware.ClaimsFromContext(c)
	result, err := h.service.Heatmap(c.Request.Context(), claims, country)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := heatmapResponse{
		Country: result.Country,
		Buckets: make([]heatmapBucket, 0, len(result.Buckets)),
		Total:   result.Total,
		Skipped: result.Skipped,
	}
	for _, b := range result.Buckets {
		resp.Buckets = append(resp.Buckets, heatmapBucket{RegionBucket: b, Band: heatmap.Band(b.Intensity)})
	}

	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary      Activity summary over visible locations
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} models.ActivitySummary
// @Security     BearerAuth
// @Router       /api/v1/summary [get]
func (h *LocationHandler) Summary(c *gin.Context) {
	claims, _ := middleware.ClaimsFromContext(c)
	summary, err := h.service.Summary(c.Request.Context(), claims)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Classify godoc
// @Summary      Classify a coordinate into country and region
// @Tags         regions
// @Produce      json
// @Param        lat query number true "Latitude"
// @Param        lon query number true "Longitude"
// @Success      200 {object} classifyResponse
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/v1/classify [get]
func (h *LocationHandler) Classify(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}

	country, reg, err := h.service.Classify(lat, lon)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, classifyResponse{Country: country, Region: reg})
}

// Countries godoc
// @Summary      Supported countries
// @Tags         regions
// @Produce      json
// @Success      200 {array} string
// @Security     BearerAuth
// @Router       /api/v1/countries [get]
func (h *LocationHandler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, region.SupportedCountries())
}

func (h *LocationHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrInvalidCoordinate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinate"})
	case errors.Is(err, service.ErrCountryRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'country'"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
