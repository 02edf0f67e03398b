package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travel",
		Name:      "bookings_created_total",
		Help:      "Bookings successfully stored, by destination.",
	}, []string{"destination_id"})

	BookingRevenue = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "travel",
		Name:      "booking_revenue_total",
		Help:      "Sum of booking totals, in catalog currency.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "travel",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "travel",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	HTTPPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "travel",
		Name:      "http_panics_total",
		Help:      "Handler panics turned into 500 responses.",
	})
)
