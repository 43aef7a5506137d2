package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrstyle_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qrstyle_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Render metrics
	renderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrstyle_render_requests_total",
			Help: "Total number of render requests",
		},
		[]string{"format", "status"}, // status: ok, invalid, error
	)

	renderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qrstyle_render_duration_seconds",
			Help:    "Scene assembly and encoding duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"format"},
	)

	artifactSizeBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qrstyle_artifact_size_bytes",
			Help:    "Size of encoded artifacts in bytes",
			Buckets: []float64{1024, 10 * 1024, 100 * 1024, 512 * 1024, 1024 * 1024, 5 * 1024 * 1024},
		},
		[]string{"format"},
	)

	sceneGroupCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qrstyle_scene_groups",
			Help:    "Number of shape groups in assembled scenes",
			Buckets: []float64{100, 250, 500, 1000, 2000, 4000, 8000},
		},
	)

	// WebSocket metrics
	websocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "qrstyle_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	websocketMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qrstyle_websocket_messages_total",
			Help: "Total number of WebSocket messages",
		},
		[]string{"direction"}, // direction: sent, received
	)
)
