package balances

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts ledger activity.
type Metrics struct {
	Transfers        prometheus.Counter
	TransferFailures *prometheus.CounterVec
}

// NewMetrics registers the ledger metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Transfers: f.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_balance_transfers_total",
			Help: "Total number of successful balance transfers",
		}),
		TransferFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "clubledger_balance_transfer_failures_total",
			Help: "Total number of rejected balance transfers by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) observe(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.TransferFailures.WithLabelValues(reason(err)).Inc()
		return
	}
	m.Transfers.Inc()
}
