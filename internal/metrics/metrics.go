// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, content storage, the authoring
// workflow and image uploads.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "pyarch"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Storage metrics - every load and save of a JSON document
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Total number of content document operations by document, operation, and result",
		},
		[]string{"document", "operation", "result"},
	)

	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "operation_duration_seconds",
			Help:      "Content document load/save duration in seconds",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"document", "operation"},
	)

	// Workflow metrics - post mutations and admin logins
	PostMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "posts",
			Name:      "mutations_total",
			Help:      "Total number of post mutations by action",
		},
		[]string{"action"},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Total number of admin login attempts by result",
		},
		[]string{"result"},
	)

	// Upload metrics
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uploads",
			Name:      "total",
			Help:      "Total number of image uploads by result",
		},
		[]string{"result"},
	)

	UploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "uploads",
			Name:      "bytes_total",
			Help:      "Total number of bytes written for accepted uploads",
		},
	)
)

// ObserveStorage records one load or save of a content document.
func ObserveStorage(document, operation string, err error, durationSeconds float64) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	StorageOperationsTotal.WithLabelValues(document, operation, result).Inc()
	StorageOperationDuration.WithLabelValues(document, operation).Observe(durationSeconds)
}

// ObservePostMutation counts a create, update or delete.
func ObservePostMutation(action string) {
	PostMutationsTotal.WithLabelValues(action).Inc()
}

// ObserveLogin counts a login attempt.
func ObserveLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

// ObserveUpload counts an upload outcome; bytes is only added for accepted files.
func ObserveUpload(result string, bytes int64) {
	UploadsTotal.WithLabelValues(result).Inc()
	if result == "accepted" && bytes > 0 {
		UploadBytes.Add(float64(bytes))
	}
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time since the timer was created.
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Seconds())
}

// ContentStats is a snapshot of the stored collections.
type ContentStats struct {
	PublishedPosts   int
	UnpublishedPosts int
	Projects         int
}

// ContentStatsProvider is an interface for providing content stats.
// This allows for easier testing by mocking the provider.
type ContentStatsProvider interface {
	ContentStats(ctx context.Context) (ContentStats, error)
}

var (
	postsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "content", "posts"),
		"Number of stored posts by visibility",
		[]string{"visibility"}, nil,
	)
	projectsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "content", "projects"),
		"Number of stored projects",
		nil, nil,
	)
)

// ContentCollector reads collection sizes when Prometheus scrapes.
// It does not run in the background.
type ContentCollector struct {
	provider ContentStatsProvider
	timeout  time.Duration
}

// NewContentCollector creates a collector backed by provider.
func NewContentCollector(provider ContentStatsProvider) *ContentCollector {
	return &ContentCollector{provider: provider, timeout: 5 * time.Second}
}

// Describe implements prometheus.Collector.
func (c *ContentCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- postsDesc
	ch <- projectsDesc
}

// Collect implements prometheus.Collector.
func (c *ContentCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stats, err := c.provider.ContentStats(ctx)
	if err != nil {
		slog.Warn("Content stats unavailable", slog.String("error", err.Error()))
		ch <- prometheus.NewInvalidMetric(postsDesc, err)
		return
	}

	ch <- prometheus.MustNewConstMetric(postsDesc, prometheus.GaugeValue, float64(stats.PublishedPosts), "published")
	ch <- prometheus.MustNewConstMetric(postsDesc, prometheus.GaugeValue, float64(stats.UnpublishedPosts), "unpublished")
	ch <- prometheus.MustNewConstMetric(projectsDesc, prometheus.GaugeValue, float64(stats.Projects))
}
