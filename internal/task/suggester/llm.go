package suggester

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rental-ops/internal/model"
	"rental-ops/pkg/llmprovider"
	"rental-ops/pkg/log"
)

const maxLLMSuggestions = 5

var (
	errEmptyAnswer  = errors.New("model returned no instants")
	errPastInstant  = errors.New("model returned an instant before now")
	errTooManyTimes = errors.New("model returned too many instants")
)

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLM asks a language model for instants and falls back to another strategy
// when the answer is unusable.
type LLM struct {
	gen      Generator
	fallback Suggester
	metrics  *Metrics
	l        log.Logger
}

func NewLLM(gen Generator, fallback Suggester, metrics *Metrics, l log.Logger) *LLM {
	return &LLM{gen: gen, fallback: fallback, metrics: metrics, l: l}
}

func (s *LLM) Name() string {
	return StrategyLLM
}

func (s *LLM) Suggest(ctx context.Context, in Input) ([]time.Time, error) {
	if !in.Urgency.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidUrgency, in.Urgency)
	}

	out, err := s.ask(ctx, in)
	if err == nil {
		return out, nil
	}

	s.l.Warnf(ctx, "task.suggester.LLM.Suggest: falling back to %s: %v", s.fallback.Name(), err)
	s.metrics.fallback(in.Urgency)
	return s.fallback.Suggest(ctx, in)
}

func (s *LLM) ask(ctx context.Context, in Input) ([]time.Time, error) {
	resp, err := s.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction,
		Prompt:            buildPrompt(in),
		Temperature:       0.1,
		MaxTokens:         256,
		JSON:              true,
	})
	if err != nil {
		return nil, err
	}
	return parseAnswer(resp.Text, in.Now)
}

const systemInstruction = `You schedule maintenance visits for short-term rental units.
Answer with a JSON array of RFC 3339 timestamps only, best option first, at most 5 entries.
Never propose a time before the current time. Prefer times when the unit is vacant.`

func buildPrompt(in Input) string {
	loc := in.Now.Location()

	var b strings.Builder
	fmt.Fprintf(&b, "Current time: %s (%s)\n", in.Now.Format(time.RFC3339), loc)
	fmt.Fprintf(&b, "Urgency: %s\n", in.Urgency)
	if len(in.Reservations) == 0 {
		b.WriteString("Reservations: none\n")
		return b.String()
	}
	b.WriteString("Reservations (check-in, check-out):\n")
	for _, r := range in.Reservations {
		fmt.Fprintf(&b, "- %s, %s\n", r.Start.In(loc).Format(time.RFC3339), r.End.In(loc).Format(time.RFC3339))
	}
	return b.String()
}

// parseAnswer accepts a bare JSON array of RFC 3339 strings, optionally wrapped
// in a markdown code fence.
func parseAnswer(text string, now time.Time) ([]time.Time, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var raw []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("decode answer: %w", err)
	}
	if len(raw) == 0 {
		return nil, errEmptyAnswer
	}
	if len(raw) > maxLLMSuggestions {
		return nil, errTooManyTimes
	}

	out := make([]time.Time, len(raw))
	for i, v := range raw {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("instant %d: %w", i, err)
		}
		if t.Before(now.Truncate(time.Minute)) {
			return nil, errPastInstant
		}
		out[i] = t.In(now.Location())
	}
	return out, nil
}
