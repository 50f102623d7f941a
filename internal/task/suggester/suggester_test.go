package suggester

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"rental-ops/internal/model"
	"rental-ops/internal/scheduling"
	"rental-ops/pkg/llmprovider"
	"rental-ops/pkg/log"
)

type mockGenerator struct {
	text  string
	err   error
	calls int
	last  *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: "mock"}, nil
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatal(err)
	}
	return m.GetCounter().GetValue()
}

var now = time.Date(2025, 4, 10, 9, 30, 0, 0, time.UTC)

func TestRules_DelegatesToTable(t *testing.T) {
	got, err := NewRules().Suggest(context.Background(), Input{Urgency: model.UrgencyHigh, Now: now})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	want, _ := scheduling.SuggestSchedule(model.UrgencyHigh, nil, now)
	if len(got) != len(want) || !got[0].Equal(want[0]) || !got[1].Equal(want[1]) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLLM_UsesModelAnswer(t *testing.T) {
	gen := &mockGenerator{text: "```json\n[\"2025-04-11T14:00:00Z\", \"2025-04-12T10:00:00Z\"]\n```"}
	s := NewLLM(gen, NewRules(), nil, log.NewNop())

	got, err := s.Suggest(context.Background(), Input{
		Urgency:      model.UrgencyMedium,
		Reservations: []scheduling.Reservation{{Start: now, End: now.Add(24 * time.Hour)}},
		Now:          now,
	})
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(got) != 2 || !got[0].Equal(time.Date(2025, 4, 11, 14, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}
	if !gen.last.JSON {
		t.Error("expected a JSON-mode request")
	}
}

func TestLLM_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		gen  *mockGenerator
	}{
		{name: "provider error", gen: &mockGenerator{err: errors.New("quota")}},
		{name: "not json", gen: &mockGenerator{text: "Tomorrow at noon works."}},
		{name: "empty array", gen: &mockGenerator{text: "[]"}},
		{name: "bad instant", gen: &mockGenerator{text: `["noon"]`}},
		{name: "instant in the past", gen: &mockGenerator{text: `["2025-04-09T10:00:00Z"]`}},
		{name: "too many", gen: &mockGenerator{text: `["2025-04-11T10:00:00Z","2025-04-11T11:00:00Z","2025-04-11T12:00:00Z","2025-04-11T13:00:00Z","2025-04-11T14:00:00Z","2025-04-11T15:00:00Z"]`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			m := NewMetrics(reg)
			s := NewLLM(tt.gen, NewRules(), m, log.NewNop())

			got, err := s.Suggest(context.Background(), Input{Urgency: model.UrgencyUrgent, Now: now})
			if err != nil {
				t.Fatalf("Suggest() error = %v", err)
			}
			if len(got) != 1 || !got[0].Equal(now) {
				t.Errorf("expected rule answer [now], got %v", got)
			}
			if v := counterValue(t, m.fallbacks.WithLabelValues("urgent")); v != 1 {
				t.Errorf("fallback counter = %v, want 1", v)
			}
		})
	}
}

func TestLLM_InvalidUrgencySkipsModel(t *testing.T) {
	gen := &mockGenerator{text: `["2025-04-11T14:00:00Z"]`}
	s := NewLLM(gen, NewRules(), nil, log.NewNop())

	_, err := s.Suggest(context.Background(), Input{Urgency: "critical", Now: now})
	if !errors.Is(err, model.ErrInvalidUrgency) {
		t.Fatalf("err = %v, want ErrInvalidUrgency", err)
	}
	if gen.calls != 0 {
		t.Errorf("model called %d times", gen.calls)
	}
}

func TestNew(t *testing.T) {
	if s, err := New("", nil, nil, log.NewNop()); err != nil || s.Name() != StrategyRules {
		t.Errorf("default strategy: %v, %v", s, err)
	}
	if _, err := New(StrategyLLM, nil, nil, log.NewNop()); !errors.Is(err, ErrLLMNotConfigured) {
		t.Errorf("llm without generator: err = %v", err)
	}
	if _, err := New("magic", nil, nil, log.NewNop()); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("unknown strategy: err = %v", err)
	}
	if s, err := New(StrategyLLM, &mockGenerator{}, nil, log.NewNop()); err != nil || s.Name() != StrategyLLM {
		t.Errorf("llm strategy: %v, %v", s, err)
	}
}

func TestInstrument_CountsByUrgencyAndStrategy(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	s := Instrument(NewRules(), m)

	for i := 0; i < 2; i++ {
		_, _ = s.Suggest(context.Background(), Input{Urgency: model.UrgencyLow, Now: now})
	}
	_, _ = s.Suggest(context.Background(), Input{Urgency: "nope", Now: now})

	if v := counterValue(t, m.suggestions.WithLabelValues("low", StrategyRules, "ok")); v != 2 {
		t.Errorf("ok counter = %v, want 2", v)
	}
	if v := counterValue(t, m.suggestions.WithLabelValues("invalid", StrategyRules, "error")); v != 1 {
		t.Errorf("error counter = %v, want 1", v)
	}
}
