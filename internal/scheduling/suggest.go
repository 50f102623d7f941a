package scheduling

import (
	"fmt"
	"sort"
	"time"

	"rental-ops/internal/model"
	"rental-ops/pkg/datemath"
)

// SuggestSchedule proposes candidate instants for a task of the given urgency
// on a unit whose calendar is reservations. Calendar days and the fixed clock
// times are taken in now's location.
//
// The result is never empty for a valid urgency. High urgency before 17:00
// yields two candidates (now, then tomorrow 10:00); every other case yields one.
func SuggestSchedule(urgency model.Urgency, reservations []Reservation, now time.Time) ([]time.Time, error) {
	switch urgency {
	case model.UrgencyUrgent:
		return suggestUrgent(now), nil
	case model.UrgencyHigh:
		return suggestHigh(now), nil
	case model.UrgencyMedium:
		return suggestMedium(sortByStart(reservations), now), nil
	case model.UrgencyLow:
		return suggestLow(sortByStart(reservations), now), nil
	}
	return nil, fmt.Errorf("%w: %q", model.ErrInvalidUrgency, string(urgency))
}

// suggestUrgent: right now, unless the 22:00 cutoff has passed.
func suggestUrgent(now time.Time) []time.Time {
	if now.Before(datemath.At(now, urgentCutoffHour, 0)) {
		return []time.Time{now}
	}
	return []time.Time{datemath.AddDaysAt(now, 1, urgentFallbackHour, 0)}
}

// suggestHigh: today if still before 17:00, always followed by tomorrow 10:00.
func suggestHigh(now time.Time) []time.Time {
	out := make([]time.Time, 0, 2)
	if now.Hour() < highCutoffHour {
		out = append(out, now)
	}
	return append(out, datemath.AddDaysAt(now, 1, highFallbackHour, 0))
}

// suggestMedium targets the earliest checkout that has not yet passed.
func suggestMedium(reservations []Reservation, now time.Time) []time.Time {
	var (
		checkout time.Time
		found    bool
	)
	for _, r := range reservations {
		if !r.End.After(now) {
			continue
		}
		if !found || r.End.Before(checkout) {
			checkout = r.End
			found = true
		}
	}

	if !found {
		return []time.Time{datemath.AddDaysAt(now, 1, mediumFallbackHour, 0)}
	}
	return []time.Time{datemath.At(checkout.In(now.Location()), mediumCheckoutHour, 0)}
}

// suggestLow picks the first fully vacant day after today within the
// lookahead horizon. A reservation occupies every day from its start day
// through its end day inclusive, so checkout days are never vacant here.
// An empty calendar goes straight to the fallback.
func suggestLow(reservations []Reservation, now time.Time) []time.Time {
	loc := now.Location()
	for i := 1; len(reservations) > 0 && i <= LookaheadDays; i++ {
		day := now.AddDate(0, 0, i)
		if isVacant(day, reservations, loc) {
			return []time.Time{datemath.At(day, lowSlotHour, 0)}
		}
	}
	return []time.Time{datemath.AddDaysAt(now, lowFallbackDays, lowSlotHour, 0)}
}

func isVacant(day time.Time, reservations []Reservation, loc *time.Location) bool {
	for _, r := range reservations {
		if datemath.DayWithin(day, r.Start, r.End, loc) {
			return false
		}
	}
	return true
}

// sortByStart returns a start-ordered copy; the caller's slice is left untouched.
func sortByStart(reservations []Reservation) []Reservation {
	if len(reservations) == 0 {
		return nil
	}
	sorted := make([]Reservation, len(reservations))
	copy(sorted, reservations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}
