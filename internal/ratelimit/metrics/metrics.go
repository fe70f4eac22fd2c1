package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Rejections  *prometheus.CounterVec
	StoreErrors prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clubledger_ratelimit_rejections_total",
			Help: "Requests refused by the rate limiter",
		}, []string{"class"}),
		StoreErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_ratelimit_store_errors_total",
			Help: "Rate limit checks that failed open because the bucket store errored",
		}),
	}
}

func (m *Metrics) IncrementRejections(class string) {
	if m == nil {
		return
	}
	m.Rejections.WithLabelValues(class).Inc()
}

func (m *Metrics) IncrementStoreErrors() {
	if m == nil {
		return
	}
	m.StoreErrors.Inc()
}
