// Package metrics defines the Prometheus collectors for the chat service.
// Collectors are registered via promauto at package init and exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Success labels for metrics
const (
	SuccessTrue  = "true"
	SuccessFalse = "false"
)

var (
	// HTTP request metrics
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "legalia_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint", "status_code"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalia_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "endpoint", "status_code"})

	// Chat pipeline metrics
	ChatRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalia_chat_requests_total",
		Help: "Total number of chat requests by outcome",
	}, []string{"outcome"})

	ContextFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "legalia_context_fetch_duration_seconds",
		Help:    "Duration of document-context fetches in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
	}, []string{"success"})

	CompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "legalia_completion_duration_seconds",
		Help:    "Duration of completion calls in seconds",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"provider", "success"})

	CompletionTokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legalia_completion_tokens_total",
		Help: "Total tokens consumed by completion calls",
	}, []string{"kind"}) // kind: prompt | completion

	CitationsResolved = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "legalia_citations_resolved",
		Help:    "Number of citation markers resolved per reply",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
	})
)

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	code := strconv.Itoa(statusCode)
	HTTPRequestDuration.WithLabelValues(method, endpoint, code).Observe(duration.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, endpoint, code).Inc()
}

// RecordContextFetch records one document-context fetch attempt.
func RecordContextFetch(success bool, duration time.Duration) {
	ContextFetchDuration.WithLabelValues(successLabel(success)).Observe(duration.Seconds())
}

// RecordCompletion records one completion call.
func RecordCompletion(provider string, success bool, duration time.Duration) {
	CompletionDuration.WithLabelValues(provider, successLabel(success)).Observe(duration.Seconds())
}

// RecordTokenUsage accumulates provider-reported token accounting.
func RecordTokenUsage(promptTokens, completionTokens int) {
	CompletionTokensTotal.WithLabelValues("prompt").Add(float64(promptTokens))
	CompletionTokensTotal.WithLabelValues("completion").Add(float64(completionTokens))
}

func successLabel(success bool) string {
	if success {
		return SuccessTrue
	}
	return SuccessFalse
}
