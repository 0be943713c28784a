package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AuditEntriesTotal counts appended audit entries.
	AuditEntriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_entries_total",
			Help: "Total number of audit log entries appended",
		},
		[]string{"entity_type", "action"},
	)

	// DeletionsBlockedTotal counts deletes refused because of dependent records.
	DeletionsBlockedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deletions_blocked_total",
			Help: "Total number of deletions blocked by dependent records",
		},
		[]string{"entity_type"},
	)
)

var (
	uuidPathSegment = regexp.MustCompile(`/[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}(/|$)`)
	initOnce        sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, AuditEntriesTotal, DeletionsBlockedTotal)
	})
}

// NormalizePath reduces cardinality by replacing UUID path segments with {id}.
// E.g. /companies/<uuid>/users/<uuid> -> /companies/{id}/users/{id}.
func NormalizePath(path string) string {
	// ReplaceAll does not revisit the shared "/" between adjacent matches.
	for uuidPathSegment.MatchString(path) {
		path = uuidPathSegment.ReplaceAllString(path, "/{id}$1")
	}
	return path
}

// RecordRequest records duration and count for an HTTP request.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

func IncAuditEntries(entityType, action string) {
	AuditEntriesTotal.WithLabelValues(entityType, action).Inc()
}

func IncDeletionsBlocked(entityType string) {
	DeletionsBlockedTotal.WithLabelValues(entityType).Inc()
}
