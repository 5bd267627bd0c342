package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaketracker-api/internal/middleware"
	"vaketracker-api/internal/models"
	"vaketracker-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationService is a mock implementation of the LocationService interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Capture(ctx context.Context, claims *models.Claims, req models.CaptureRequest) (*models.LocatedRecord, error) {
	args := m.Called(ctx, claims, req)
	return args.Get(0).(*models.LocatedRecord), args.Error(1)
}

func (m *MockLocationService) List(ctx context.Context, claims *models.Claims) ([]models.LocatedRecord, error) {
	args := m.Called(ctx, claims)
	return args.Get(0).([]models.LocatedRecord), args.Error(1)
}

func (m *MockLocationService) Heatmap(ctx context.Context, claims *models.Claims, country string) (*models.HeatmapResult, error) {
	args := m.Called(ctx, claims, country)
	return args.Get(0).(*models.HeatmapResult), args.Error(1)
}

func (m *MockLocationService) Summary(ctx context.Context, claims *models.Claims) (*models.ActivitySummary, error) {
	args := m.Called(ctx, claims)
	return args.Get(0).(*models.ActivitySummary), args.Error(1)
}

func (m *MockLocationService) Classify(lat, lon float64) (string, string, error) {
	args := m.Called(lat, lon)
	return args.String(0), args.String(1), args.Error(2)
}

var testClaims = &models.Claims{UserID: "u1", Username: "ana", Role: models.RoleFieldAgent}

func newTestContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.SetClaims(c, testClaims)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	var body interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLocationHandler_Heatmap(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		country        string
		mockResult     *models.HeatmapResult
		mockError      error
		expectCall     bool
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing country",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'country'"},
		},
		{
			name:    "buckets with bands",
			query:   "?country=Guatemala",
			country: "Guatemala",
			mockResult: &models.HeatmapResult{
				Country: "Guatemala",
				Buckets: []models.RegionBucket{
					{Region: "Guatemala (Capital)", Count: 2, Intensity: 100},
					{Region: "Alta Verapaz", Count: 1, Intensity: 50},
				},
				Total:   3,
				Skipped: 1,
			},
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"country": "Guatemala",
				"buckets": []interface{}{
					map[string]interface{}{"region": "Guatemala (Capital)", "count": float64(2), "intensity": float64(100), "band": float64(4)},
					map[string]interface{}{"region": "Alta Verapaz", "count": float64(1), "intensity": float64(50), "band": float64(2)},
				},
				"total":   float64(3),
				"skipped": float64(1),
			},
		},
		{
			name:    "unknown country is empty",
			query:   "?country=Atlantis",
			country: "Atlantis",
			mockResult: &models.HeatmapResult{
				Country: "Atlantis",
				Buckets: []models.RegionBucket{},
			},
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"country": "Atlantis",
				"buckets": []interface{}{},
				"total":   float64(0),
				"skipped": float64(0),
			},
		},
		{
			name:           "blank country from service",
			query:          "?country=%20",
			country:        " ",
			mockResult:     nil,
			mockError:      service.ErrCountryRequired,
			expectCall:     true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'country'"},
		},
		{
			name:           "store failure",
			query:          "?country=Guatemala",
			country:        "Guatemala",
			mockResult:     nil,
			mockError:      fmt.Errorf("service: failed to list locations: %w", assert.AnError),
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)

			if tt.expectCall {
				mockSvc.On("Heatmap", mock.Anything, testClaims, tt.country).Return(tt.mockResult, tt.mockError)
			}

			c, w := newTestContext(http.MethodGet, "/api/v1/heatmap"+tt.query, nil)
			handler.Heatmap(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationHandler_Capture(t *testing.T) {
	gin.SetMode(gin.TestMode)

	capturedAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		mockRecord     *models.LocatedRecord
		mockError      error
		expectCall     bool
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "malformed body",
			body:           `{"latitude": "x"`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "latitude and longitude are required"},
		},
		{
			name:           "missing longitude",
			body:           `{"latitude": 14.6}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "latitude and longitude are required"},
		},
		{
			name:           "out of range",
			body:           `{"latitude": 95, "longitude": -90.5}`,
			mockRecord:     nil,
			mockError:      fmt.Errorf("service: %w", service.ErrInvalidCoordinate),
			expectCall:     true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid coordinate"},
		},
		{
			name: "created",
			body: `{"latitude": 14.6, "longitude": -90.5, "notes": "visit"}`,
			mockRecord: &models.LocatedRecord{
				ID:         "loc-1",
				UserID:     "u1",
				Latitude:   14.6,
				Longitude:  -90.5,
				Country:    "Guatemala",
				Region:     "Guatemala (Capital)",
				Notes:      "visit",
				CapturedAt: capturedAt,
			},
			expectCall:     true,
			expectedStatus: http.StatusCreated,
			expectedBody: map[string]interface{}{
				"id":          "loc-1",
				"user_id":     "u1",
				"latitude":    14.6,
				"longitude":   -90.5,
				"country":     "Guatemala",
				"region":      "Guatemala (Capital)",
				"notes":       "visit",
				"captured_at": "2024-06-01T10:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			handler := NewLocationHandler(mockSvc)

			if tt.expectCall {
				mockSvc.On("Capture", mock.Anything, testClaims, mock.AnythingOfType("models.CaptureRequest")).Return(tt.mockRecord, tt.mockError)
			}

			c, w := newTestContext(http.MethodPost, "/api/v1/locations", []byte(tt.body))
			handler.Capture(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockLocationService)
	mockSvc.On("List", mock.Anything, testClaims).Return([]models.LocatedRecord{
		{ID: "a", UserID: "u1", Latitude: 13.69, Longitude: -89.19, CapturedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/locations", nil)
	NewLocationHandler(mockSvc).List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w).([]interface{})
	require.Len(t, body, 1)
	assert.Equal(t, "a", body[0].(map[string]interface{})["id"])
	mockSvc.AssertExpectations(t)
}

func TestLocationHandler_List_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockLocationService)
	mockSvc.On("List", mock.Anything, (*models.Claims)(nil)).Return([]models.LocatedRecord(nil), service.ErrUnauthenticated)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil)

	NewLocationHandler(mockSvc).List(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, map[string]interface{}{"error": "authentication required"}, decodeBody(t, w))
	mockSvc.AssertExpectations(t)
}

func TestLocationHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockLocationService)
	mockSvc.On("Summary", mock.Anything, testClaims).Return(&models.ActivitySummary{
		Total:     3,
		Skipped:   1,
		ByCountry: map[string]int{"Guatemala": 3},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/summary", nil)
	NewLocationHandler(mockSvc).Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{
		"total":      float64(3),
		"skipped":    float64(1),
		"unresolved": float64(0),
		"by_country": map[string]interface{}{"Guatemala": float64(3)},
	}, decodeBody(t, w))
	mockSvc.AssertExpectations(t)
}

func TestLocationHandler_Classify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		lat            float64
		lon            float64
		mockCountry    string
		mockRegion     string
		mockError      error
		expectCall     bool
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing lon",
			query:          "?lat=14.6",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "classified",
			query:          "?lat=15.6&lon=-91.0",
			lat:            15.6,
			lon:            -91.0,
			mockCountry:    "Guatemala",
			mockRegion:     "Alta Verapaz",
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"country": "Guatemala", "region": "Alta Verapaz"},
		},
		{
			name:           "unresolved",
			query:          "?lat=40.4&lon=-3.7",
			lat:            40.4,
			lon:            -3.7,
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"country": "", "region": ""},
		},
		{
			name:           "invalid",
			query:          "?lat=NaN&lon=1",
			expectCall:     false,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid coordinate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			if tt.expectCall {
				mockSvc.On("Classify", tt.lat, tt.lon).Return(tt.mockCountry, tt.mockRegion, tt.mockError)
			} else {
				mockSvc.On("Classify", mock.Anything, mock.Anything).Return("", "", fmt.Errorf("service: %w", service.ErrInvalidCoordinate))
			}

			c, w := newTestContext(http.MethodGet, "/api/v1/classify"+tt.query, nil)
			NewLocationHandler(mockSvc).Classify(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
		})
	}
}

func TestLocationHandler_Countries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, w := newTestContext(http.MethodGet, "/api/v1/countries", nil)
	NewLocationHandler(new(MockLocationService)).Countries(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w).([]interface{})
	assert.Contains(t, body, "Guatemala")
	assert.Contains(t, body, "El Salvador")
	assert.Len(t, body, 10)
}
