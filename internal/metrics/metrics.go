package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	RequestSeconds *prometheus.HistogramVec
	StoreErrors    prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "aquameter_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"path", "method", "status"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aquameter_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		StoreErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "aquameter_store_errors_total",
			Help: "Total number of document-store operations that failed.",
		}),
	}
}
