// Package metrics holds the prometheus collectors of the escrow service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "carryaptos"

type Metrics struct {
	submissions *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	custody     *prometheus.GaugeVec
	relayed     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submission",
			Name:      "total",
			Help:      "Submitted escrow operations by operation and outcome kind.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "submission",
			Name:      "duration_seconds",
			Help:      "Latency of submitted escrow operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		custody: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "custody",
			Name:      "value",
			Help:      "Ledger totals from the last custody audit.",
		}, []string{"bucket"}),
		relayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "messages_total",
			Help:      "Outbox messages handled by the relay by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{m.submissions, m.latency, m.custody, m.relayed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ObserveSubmission(operation, outcome string, elapsed time.Duration) {
	m.submissions.WithLabelValues(operation, outcome).Inc()
	m.latency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// SetCustody publishes the ledger totals. Values are floats for display only.
func (m *Metrics) SetCustody(locked, released, escrowed, deposited float64) {
	m.custody.WithLabelValues("locked").Set(locked)
	m.custody.WithLabelValues("released").Set(released)
	m.custody.WithLabelValues("escrowed").Set(escrowed)
	m.custody.WithLabelValues("deposited").Set(deposited)
}

func (m *Metrics) ObserveRelay(published, failed int) {
	m.relayed.WithLabelValues("published").Add(float64(published))
	m.relayed.WithLabelValues("failed").Add(float64(failed))
}

// Handler serves the collectors gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
