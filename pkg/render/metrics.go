package render

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/xssguard/pkg/defuse"
)

// Render outcomes as reported in the outcome label.
const (
	OutcomeClean     = "clean"
	OutcomeRewritten = "rewritten"
	OutcomeSkipped   = "skipped"
)

// Metrics counts what the Protector does. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	rewrites *prometheus.CounterVec
	renders  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rewrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "xssguard",
				Name:      "rewrites_total",
				Help:      "Substitutions made in rendered output, by surface and rule.",
			},
			[]string{"surface", "rule"},
		),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "xssguard",
				Name:      "renders_total",
				Help:      "Rendered bodies seen by the protector, by surface and outcome.",
			},
			[]string{"surface", "outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.rewrites, m.renders)
	}
	return m
}

// Collectors returns the underlying collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.rewrites, m.renders}
}

func (m *Metrics) observe(surface Surface, report defuse.Report) {
	if m == nil {
		return
	}
	s := surface.String()
	for _, c := range report {
		if c.Count > 0 {
			m.rewrites.WithLabelValues(s, c.Rule).Add(float64(c.Count))
		}
	}
	outcome := OutcomeClean
	if report.Changed() {
		outcome = OutcomeRewritten
	}
	m.renders.WithLabelValues(s, outcome).Inc()
}

func (m *Metrics) observeSkip(surface Surface) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(surface.String(), OutcomeSkipped).Inc()
}
