package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersRegistered   prometheus.Counter
	DocumentsCreated  prometheus.Counter
	DocumentsRendered *prometheus.CounterVec
	ComplianceChecks  *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lawmate_users_registered_total",
			Help: "Total number of users registered in the system",
		}),
		DocumentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lawmate_documents_created_total",
			Help: "Total number of documents persisted by users",
		}),
		DocumentsRendered: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lawmate_documents_rendered_total",
			Help: "Total number of template renders, by template id",
		}, []string{"template"}),
		ComplianceChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lawmate_compliance_checks_total",
			Help: "Total number of compliance checks, by document type",
		}, []string{"document_type"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lawmate_http_request_duration_seconds",
			Help:    "Latency of HTTP requests by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
