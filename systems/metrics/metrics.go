// Package metrics implements prometheus collector of lock commands and refreshes.
package metrics

import (
	"net/http"
	"time"

	"github.com/go-home-io/gluehome/providers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "gluehome"
	// KindOK is reported for successful commands.
	KindOK = "ok"
)

// Metrics has all registered collectors.
type Metrics struct {
	registry        *prometheus.Registry
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	refreshTotal    *prometheus.CounterVec
	locksServed     prometheus.Gauge
}

// NewMetrics constructs a new metrics provider with its own registry.
func NewMetrics() providers.IMetricsProvider {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Lock commands by target state and result kind.",
		}, []string{"target", "kind"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Lock command duration including status polling.",
			Buckets:   []float64{.1, .5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"target"}),
		refreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_total",
			Help:      "Lock snapshot refreshes by result.",
		}, []string{"result"}),
		locksServed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "locks_served",
			Help:      "Number of served lock accessories.",
		}),
	}

	m.registry.MustRegister(
		m.commandsTotal,
		m.commandDuration,
		m.refreshTotal,
		m.locksServed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// CommandExecuted records finished command.
func (m *Metrics) CommandExecuted(target string, kind string, duration time.Duration) {
	if "" == kind {
		kind = KindOK
	}

	m.commandsTotal.WithLabelValues(target, kind).Inc()
	m.commandDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// LockRefreshed records reconciliation result.
func (m *Metrics) LockRefreshed(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}

	m.refreshTotal.WithLabelValues(result).Inc()
}

// LocksServed sets number of accessories.
func (m *Metrics) LocksServed(count int) {
	m.locksServed.Set(float64(count))
}

// Handler returns prometheus scrape handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
