package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the club module.
// Tracks club and membership activity, fee flows and operation durations.
type Metrics struct {
	ClubsCreated        prometheus.Counter
	MembersAdded        *prometheus.CounterVec
	MembershipsExtended prometheus.Counter
	FeesCollected       prometheus.Counter
	FeesWithdrawn       prometheus.Counter
	OperationDuration   *prometheus.HistogramVec
	OutboxEventsRelayed prometheus.Counter
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ClubsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_clubs_created_total",
			Help: "Total number of clubs created",
		}),
		MembersAdded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "clubledger_members_added_total",
			Help: "Total number of admissions by resulting membership status",
		}, []string{"status"}),
		MembershipsExtended: f.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_memberships_extended_total",
			Help: "Total number of membership renewals",
		}),
		FeesCollected: f.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_fees_collected_total",
			Help: "Sum of deposits and membership fees paid into the treasury",
		}),
		FeesWithdrawn: f.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_fees_withdrawn_total",
			Help: "Sum of amounts withdrawn from the treasury",
		}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clubledger_operation_duration_seconds",
			Help:    "Duration of club operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		OutboxEventsRelayed: f.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_outbox_events_relayed_total",
			Help: "Total number of audit events relayed from the outbox",
		}),
	}
}

func (m *Metrics) IncrementClubsCreated() {
	m.ClubsCreated.Inc()
}

func (m *Metrics) IncrementMembersAdded(status string) {
	m.MembersAdded.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementMembershipsExtended() {
	m.MembershipsExtended.Inc()
}

func (m *Metrics) AddFeesCollected(amount uint64) {
	m.FeesCollected.Add(float64(amount))
}

func (m *Metrics) AddFeesWithdrawn(amount uint64) {
	m.FeesWithdrawn.Add(float64(amount))
}

// ObserveOperation records the duration of an operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveRelayed is suitable as an outbox relay hook.
func (m *Metrics) ObserveRelayed(n int) {
	m.OutboxEventsRelayed.Add(float64(n))
}
