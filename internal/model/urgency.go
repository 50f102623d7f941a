package model

import (
	"errors"
	"fmt"
)

// Urgency is the priority tier of a maintenance task. It is the single
// enumeration shared by task creation, inbox classification and scheduling.
type Urgency string

const (
	UrgencyUrgent Urgency = "urgent"
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// DefaultUrgency is applied by callers when a task arrives without a tier.
const DefaultUrgency = UrgencyMedium

// ErrInvalidUrgency is returned for any value outside the four tiers.
var ErrInvalidUrgency = errors.New("invalid urgency")

// Urgencies lists every tier, highest priority first.
func Urgencies() []Urgency {
	return []Urgency{UrgencyUrgent, UrgencyHigh, UrgencyMedium, UrgencyLow}
}

// ParseUrgency converts a wire value into an Urgency. Matching is case-sensitive.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUrgency, s)
	}
	return u, nil
}

// Valid reports whether u is one of the four tiers.
func (u Urgency) Valid() bool {
	return u.Rank() > 0
}

// Rank orders tiers by priority: urgent=4 ... low=1, 0 for invalid values.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyUrgent:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}
	return 0
}

// HigherThan reports whether u outranks other.
func (u Urgency) HigherThan(other Urgency) bool {
	return u.Rank() > other.Rank()
}

func (u Urgency) String() string {
	return string(u)
}
