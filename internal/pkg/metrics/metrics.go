// Package metrics owns the Prometheus registry of the lifecycle service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lifecycle"

type Metrics struct {
	registry        *prometheus.Registry
	transitions     *prometheus.CounterVec
	paymentSignals  *prometheus.CounterVec
	monitorActions  *prometheus.CounterVec
	outboxPublished *prometheus.CounterVec
	sweepSeconds    prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Committed booking status transitions.",
		}, []string{"from", "to"}),
		paymentSignals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_signals_total",
			Help:      "Payment signals by outcome.",
		}, []string{"outcome"}),
		monitorActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "monitor_actions_total",
			Help:      "Deadline monitor actions by kind and result.",
		}, []string{"kind", "result"}),
		outboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox relay publish attempts by result.",
		}, []string{"result"}),
		sweepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "monitor_sweep_seconds",
			Help:      "Duration of one deadline monitor sweep.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transitions,
		m.paymentSignals,
		m.monitorActions,
		m.outboxPublished,
		m.sweepSeconds,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Transition(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) PaymentSignal(outcome string) {
	m.paymentSignals.WithLabelValues(outcome).Inc()
}

func (m *Metrics) MonitorAction(kind, result string) {
	m.monitorActions.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) OutboxPublished(result string) {
	m.outboxPublished.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSweep(d time.Duration) {
	m.sweepSeconds.Observe(d.Seconds())
}
