// Package suggester produces candidate service instants for a task.
//
// Rules is the deterministic tier table; LLM asks a language model and falls
// back to Rules whenever the model's answer cannot be used.
package suggester

import (
	"context"
	"errors"
	"time"

	"rental-ops/internal/model"
	"rental-ops/internal/scheduling"
)

const (
	StrategyRules = "rules"
	StrategyLLM   = "llm"
)

var (
	ErrUnknownStrategy  = errors.New("unknown suggestion strategy")
	ErrLLMNotConfigured = errors.New("llm strategy requires at least one provider")
)

// Input is one suggestion request. Now carries the zone every day boundary is
// computed in.
type Input struct {
	Urgency      model.Urgency
	Reservations []scheduling.Reservation
	Now          time.Time
}

// Suggester returns a non-empty, ordered list of instants.
type Suggester interface {
	Suggest(ctx context.Context, in Input) ([]time.Time, error)
	Name() string
}
