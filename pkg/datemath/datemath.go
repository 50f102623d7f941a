package datemath

import "time"

// StartOfDay returns midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// At pins t's calendar day to the given wall-clock time, keeping t's location.
func At(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// AddDaysAt moves t by n calendar days and pins the result to hour:minute.
// Calendar days are used rather than 24h durations so DST shifts keep the clock.
func AddDaysAt(t time.Time, n, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, hour, minute, 0, 0, t.Location())
}

// CompareDay compares the calendar days of a and b as seen in loc.
// It returns -1, 0 or +1.
func CompareDay(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return CompareDay(a, b, loc) == 0
}

// DayWithin reports whether day's calendar date lies in [from, to], bounds
// inclusive, all dates taken in loc.
func DayWithin(day, from, to time.Time, loc *time.Location) bool {
	return CompareDay(day, from, loc) >= 0 && CompareDay(day, to, loc) <= 0
}

// EndOfDay returns 23:59:59 at the end of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
