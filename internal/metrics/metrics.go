package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bioskop_http_requests_total",
			Help: "HTTP requests processed, partitioned by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bioskop_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	seatsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bioskop_seats_booked_total",
			Help: "Seats successfully booked.",
		},
	)

	seatsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bioskop_seats_skipped_total",
			Help: "Seat booking attempts absorbed as no-ops because the seat was taken.",
		},
	)

	seatsReset = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bioskop_seats_reset_total",
			Help: "Seats moved to history by admin resets.",
		},
	)
)

// ObserveBooking records the outcome of a booking call.
func ObserveBooking(booked, skipped int) {
	seatsBooked.Add(float64(booked))
	seatsSkipped.Add(float64(skipped))
}

// ObserveReset records how many seats an admin reset cleared.
func ObserveReset(count int64) {
	seatsReset.Add(float64(count))
}

// Middleware instruments every request with a counter and a latency histogram.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
