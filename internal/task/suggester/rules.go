package suggester

import (
	"context"
	"time"

	"rental-ops/internal/scheduling"
)

// Rules applies the fixed per-tier table.
type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

func (Rules) Suggest(ctx context.Context, in Input) ([]time.Time, error) {
	return scheduling.SuggestSchedule(in.Urgency, in.Reservations, in.Now)
}

func (Rules) Name() string {
	return StrategyRules
}
