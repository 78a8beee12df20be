package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Geocode lookup results
const (
	GeocodeHit     = "hit"
	GeocodeMiss    = "miss"
	GeocodeTimeout = "timeout"
	GeocodeError   = "error"
)

// Prediction outcomes
const (
	PredictionSuccess = "success"
	PredictionInvalid = "invalid"
	PredictionError   = "error"
)

var (
	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_price_geocode_lookups_total",
			Help: "Reverse geocode lookups by result",
		},
		[]string{"result"},
	)

	GeocodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "house_price_geocode_duration_seconds",
			Help:    "Duration of reverse geocode calls that reached the provider",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	Predictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_price_predictions_total",
			Help: "Price predictions by outcome",
		},
		[]string{"outcome"},
	)

	PredictionsByTier = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_price_predictions_by_tier_total",
			Help: "Successful price predictions by city tier",
		},
		[]string{"tier"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "house_price_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "house_price_http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "route"},
	)
)
