package mockapi

import "github.com/prometheus/client_golang/prometheus"

// Name check results recorded in the name_checks_total metric.
const (
	resultValid   = "valid"
	resultTaken   = "taken"
	resultError   = "error"
	resultLimited = "limited"
)

// Metrics are the mock API's Prometheus collectors.
type Metrics struct {
	LocationRequests prometheus.Counter
	NameChecks       *prometheus.CounterVec
	CheckLatency     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LocationRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "userform",
			Subsystem: "mockapi",
			Name:      "location_requests_total",
			Help:      "Number of location list requests served.",
		}),
		NameChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "userform",
			Subsystem: "mockapi",
			Name:      "name_checks_total",
			Help:      "Number of name checks by result.",
		}, []string{"result"}),
		CheckLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "userform",
			Subsystem: "mockapi",
			Name:      "name_check_duration_seconds",
			Help:      "Time spent answering a name check, simulated latency included.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.LocationRequests, m.NameChecks, m.CheckLatency)
	}
	return m
}
