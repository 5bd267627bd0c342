package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the application metrics
type Collector struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	LocationsCaptured *prometheus.CounterVec
	HeatmapRequests   *prometheus.CounterVec
	RecordsSkipped    prometheus.Counter
	GeocodeFailures   prometheus.Counter
}

// NewCollector registers all metrics on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vaketracker_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vaketracker_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		LocationsCaptured: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vaketracker_locations_captured_total",
				Help: "Captured locations by classified country",
			},
			[]string{"country"},
		),
		HeatmapRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vaketracker_heatmap_requests_total",
				Help: "Heat map aggregations by selected country",
			},
			[]string{"country"},
		),
		RecordsSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "vaketracker_records_skipped_total",
				Help: "Records skipped during aggregation because of invalid coordinates",
			},
		),
		GeocodeFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "vaketracker_geocode_failures_total",
				Help: "Reverse geocoding lookups that failed during capture",
			},
		),
	}
}

// Middleware records request counts and latencies per route
func (m *Collector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
