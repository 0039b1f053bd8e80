package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

const (
	SourceRule     = "rule"
	SourceFallback = "fallback"
)

type Metrics struct {
	SizeEstimates      *prometheus.CounterVec
	EstimateLogErrors  prometheus.Counter
	HTTPRequests       *prometheus.CounterVec
	HTTPRequestSeconds *prometheus.HistogramVec
	AdminLogins        *prometheus.CounterVec
}

// New registers the service metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		SizeEstimates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "unshakn_size_estimates_total",
			Help: "Size estimates served, by outcome",
		}, []string{"size", "body_type", "source"}),

		EstimateLogErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "unshakn_size_estimate_log_errors_total",
			Help: "Estimates that could not be written to the estimate log",
		}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "unshakn_http_requests_total",
			Help: "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		HTTPRequestSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unshakn_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),

		AdminLogins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "unshakn_admin_logins_total",
			Help: "Admin login attempts by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveEstimate(rec domain.SizeRecommendation) {
	source := SourceFallback
	if rec.Matched {
		source = SourceRule
	}
	m.SizeEstimates.WithLabelValues(string(rec.Size), string(rec.BodyType), source).Inc()
}
