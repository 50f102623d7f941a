package datemath_test

import (
	"testing"
	"time"

	"rental-ops/pkg/datemath"
)

func TestStartOfDayAndAt(t *testing.T) {
	base := time.Date(2024, 5, 1, 15, 30, 45, 99, time.UTC)

	if got, want := datemath.StartOfDay(base), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("StartOfDay() got = %v, want %v", got, want)
	}
	if got, want := datemath.At(base, 14, 0), time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("At() got = %v, want %v", got, want)
	}
	if got, want := datemath.EndOfDay(base), time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC); !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestAddDaysAt(t *testing.T) {
	tests := []struct {
		name string
		base time.Time
		n    int
		want time.Time
	}{
		{
			name: "next day",
			base: time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "month rollover",
			base: time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "leap year",
			base: time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.AddDaysAt(tt.base, tt.n, 8, 0)
			if !got.Equal(tt.want) {
				t.Errorf("AddDaysAt() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddDaysAtAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// DST starts 2024-03-10 in New York.
	base := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
	got := datemath.AddDaysAt(base, 1, 10, 0)
	if got.Hour() != 10 || got.Day() != 10 {
		t.Errorf("expected 2024-03-10 10:00 local, got %v", got)
	}
}

func TestCompareDay(t *testing.T) {
	a := time.Date(2025, 4, 27, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, 4, 27, 1, 0, 0, 0, time.UTC)
	c := time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC)

	if datemath.CompareDay(a, b, time.UTC) != 0 {
		t.Error("same calendar day should compare equal")
	}
	if datemath.CompareDay(a, c, time.UTC) != -1 {
		t.Error("earlier day should compare -1")
	}
	if datemath.CompareDay(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), c, time.UTC) != 1 {
		t.Error("later year should compare 1")
	}

	// 23:00 UTC is already the next day in Tokyo.
	tokyo := time.FixedZone("JST", 9*3600)
	if datemath.SameDay(a, b, tokyo) {
		t.Error("days should differ when viewed in JST")
	}
}

func TestDayWithin(t *testing.T) {
	from := time.Date(2025, 4, 25, 15, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 27, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		day  time.Time
		want bool
	}{
		{day: time.Date(2025, 4, 24, 23, 0, 0, 0, time.UTC), want: false},
		{day: time.Date(2025, 4, 25, 1, 0, 0, 0, time.UTC), want: true},
		{day: time.Date(2025, 4, 27, 20, 0, 0, 0, time.UTC), want: true},
		{day: time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		if got := datemath.DayWithin(tt.day, from, to, time.UTC); got != tt.want {
			t.Errorf("DayWithin(%v) = %v, want %v", tt.day, got, tt.want)
		}
	}
}
