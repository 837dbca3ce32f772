package intercept

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by the interceptors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Proxies     *prometheus.CounterVec
	Wrapped     *prometheus.CounterVec
	Calls       *prometheus.CounterVec
	Validation  *prometheus.HistogramVec
	Diagnostics *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Proxies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "friendly_proxies_total",
				Help: "Behavior objects replaced by a proxy, by kind (class or chain)",
			},
			[]string{"kind"},
		),
		Wrapped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "friendly_methods_wrapped_total",
				Help: "Documented methods wrapped on first read",
			},
			[]string{"class"},
		),
		Calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "friendly_calls_total",
				Help: "Calls through wrapped methods, by outcome (ok, invalid, error)",
			},
			[]string{"class", "method", "outcome"},
		),
		Validation: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "friendly_validation_duration_seconds",
				Help: "Duration of argument validation",
			},
			[]string{"class"},
		),
		Diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "friendly_diagnostics_total",
				Help: "Non-fatal diagnostics emitted while proxying",
			},
			[]string{"kind"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Proxies, m.Wrapped, m.Calls, m.Validation, m.Diagnostics)
	}
	return m
}

func (m *Metrics) proxy(kind string) {
	if m == nil {
		return
	}
	m.Proxies.WithLabelValues(kind).Inc()
}

func (m *Metrics) wrapped(class string) {
	if m == nil {
		return
	}
	m.Wrapped.WithLabelValues(class).Inc()
}

func (m *Metrics) call(class, method, outcome string) {
	if m == nil {
		return
	}
	m.Calls.WithLabelValues(class, method, outcome).Inc()
}

func (m *Metrics) validated(class string, start time.Time) {
	if m == nil {
		return
	}
	m.Validation.WithLabelValues(class).Observe(time.Since(start).Seconds())
}

// Diagnostic counts a non-fatal diagnostic of the given kind.
func (m *Metrics) Diagnostic(kind string) {
	if m == nil {
		return
	}
	m.Diagnostics.WithLabelValues(kind).Inc()
}
