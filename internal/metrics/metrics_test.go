package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	collector := NewCollector(prometheus.NewRegistry())

	r := gin.New()
	r.Use(collector.Middleware())
	r.GET("/api/v1/heatmap", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/heatmap", nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/heatmap", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestNewCollector_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCollector(prometheus.NewRegistry())
		NewCollector(prometheus.NewRegistry())
	})
}
