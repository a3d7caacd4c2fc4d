package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the dedicated registry served on /api/metrics
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Custom histogram buckets optimized for API response times ranging from
	// milliseconds (catalog reads) to tens of seconds (Gemini calls)
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Business Metrics
	MatchRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shag_match_requests_total",
			Help: "Total AI match recommendation requests",
		},
		[]string{"status"}, // success, no_match, failed, empty_query, superseded
	)

	MatchDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shag_match_duration_seconds",
			Help:    "AI match call duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"status"},
	)

	BookingCompletions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shag_booking_completions_total",
			Help: "Total completed booking requests",
		},
		[]string{"format"},
	)

	BookingCancellations = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "shag_booking_cancellations_total",
			Help: "Total cancelled booking sessions",
		},
	)

	RegistrationSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shag_registration_submissions_total",
			Help: "Total registration submissions",
		},
		[]string{"role"},
	)

	SheetDeliveries = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shag_sheet_deliveries_total",
			Help: "Total sheet webhook deliveries by outcome",
		},
		[]string{"form", "status"}, // status: submitted, unconfirmed
	)

	ActiveSessions = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shag_active_sessions",
			Help: "Number of live workflow sessions",
		},
		[]string{"kind"}, // booking, registration
	)

	CatalogSearches = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shag_catalog_searches_total",
			Help: "Total catalog filter queries",
		},
		[]string{"result"}, // hit, empty
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
