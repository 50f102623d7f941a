package suggester

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"rental-ops/internal/model"
)

// Metrics holds the suggestion collectors. A nil *Metrics records nothing.
type Metrics struct {
	suggestions *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
}

// NewMetrics registers the suggestion collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		suggestions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rental_ops",
			Subsystem: "scheduling",
			Name:      "suggestions_total",
			Help:      "Suggestion requests by urgency, strategy and outcome.",
		}, []string{"urgency", "strategy", "outcome"}),
		fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rental_ops",
			Subsystem: "scheduling",
			Name:      "llm_fallbacks_total",
			Help:      "LLM answers replaced by the rule table, by urgency.",
		}, []string{"urgency"}),
	}
}

func (m *Metrics) observe(u model.Urgency, strategy string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
		u = "invalid"
	}
	m.suggestions.WithLabelValues(string(u), strategy, outcome).Inc()
}

func (m *Metrics) fallback(u model.Urgency) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(string(u)).Inc()
}

type instrumented struct {
	next    Suggester
	metrics *Metrics
}

// Instrument counts every call to s.
func Instrument(s Suggester, m *Metrics) Suggester {
	return &instrumented{next: s, metrics: m}
}

func (s *instrumented) Name() string {
	return s.next.Name()
}

func (s *instrumented) Suggest(ctx context.Context, in Input) ([]time.Time, error) {
	out, err := s.next.Suggest(ctx, in)
	s.metrics.observe(in.Urgency, s.next.Name(), err)
	return out, err
}
