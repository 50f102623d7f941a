package suggester

import (
	"fmt"

	"rental-ops/pkg/log"
)

// New builds the instrumented Suggester for strategy. gen is only needed for
// the llm strategy and may be nil otherwise.
func New(strategy string, gen Generator, metrics *Metrics, l log.Logger) (Suggester, error) {
	switch strategy {
	case "", StrategyRules:
		return Instrument(NewRules(), metrics), nil
	case StrategyLLM:
		if gen == nil {
			return nil, ErrLLMNotConfigured
		}
		return Instrument(NewLLM(gen, NewRules(), metrics, l), metrics), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
