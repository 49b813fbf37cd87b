package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks workflow transitions and HTTP latency.
// All methods are safe on a nil receiver so services can run without metrics.
type Metrics struct {
	FundRequestsCreated  prometheus.Counter
	FundRequestDecisions *prometheus.CounterVec
	VillagerTransitions  *prometheus.CounterVec
	IssueTransitions     *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
}

// New registers every collector with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FundRequestsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "vital_fund_requests_created_total",
			Help: "Total number of fund requests created",
		}),
		FundRequestDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vital_fund_request_decisions_total",
			Help: "Fund request decisions by outcome",
		}, []string{"outcome"}),
		VillagerTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vital_villager_status_changes_total",
			Help: "Villager status changes by resulting status",
		}, []string{"status"}),
		IssueTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vital_issue_transitions_total",
			Help: "Issue lifecycle events (reported, verified, assigned)",
		}, []string{"event"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vital_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementFundRequestCreated() {
	if m == nil {
		return
	}
	m.FundRequestsCreated.Inc()
}

func (m *Metrics) IncrementDecision(outcome string) {
	if m == nil {
		return
	}
	m.FundRequestDecisions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementVillagerTransition(status string) {
	if m == nil {
		return
	}
	m.VillagerTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementIssueEvent(event string) {
	if m == nil {
		return
	}
	m.IssueTransitions.WithLabelValues(event).Inc()
}

// ObserveRequest records a request that started at start.
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
}
