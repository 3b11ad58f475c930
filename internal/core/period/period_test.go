package period

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, time.March, 15, 17, 42, 9, 123, time.Local)
	got := StartOfDay(in)
	want := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestEndOfDayExclusive(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"mid-month",
			time.Date(2025, time.March, 15, 17, 0, 0, 0, time.Local),
			time.Date(2025, time.March, 16, 0, 0, 0, 0, time.Local),
		},
		{
			"month rollover",
			time.Date(2025, time.March, 31, 5, 0, 0, 0, time.Local),
			time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local),
		},
		{
			"year rollover",
			time.Date(2025, time.December, 31, 23, 0, 0, 0, time.Local),
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EndOfDayExclusive(tt.in); !got.Equal(tt.want) {
				t.Errorf("EndOfDayExclusive = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayWindowBoundaries(t *testing.T) {
	in := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local)
	start, end := StartOfDay(in), EndOfDayExclusive(in)

	// Midnight is inside the window; the next midnight is not.
	if start.Before(StartOfDay(in)) || !start.Before(end) {
		t.Error("window must be non-empty and start at midnight")
	}
	lastInstant := end.Add(-time.Nanosecond)
	if lastInstant.Before(start) || !lastInstant.Before(end) {
		t.Error("instant just before next midnight must fall inside the window")
	}
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2025, time.February, 28, 23, 59, 59, 0, time.Local)
	want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local)
	if got := StartOfMonth(in); !got.Equal(want) {
		t.Errorf("StartOfMonth = %v, want %v", got, want)
	}
}

func TestEndOfMonthInclusive(t *testing.T) {
	tests := []struct {
		name    string
		in      time.Time
		lastDay int
		month   time.Month
		year    int
	}{
		{"31-day month", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local), 31, time.March, 2025},
		{"30-day month", time.Date(2025, time.April, 10, 0, 0, 0, 0, time.Local), 30, time.April, 2025},
		{"february non-leap", time.Date(2025, time.February, 10, 0, 0, 0, 0, time.Local), 28, time.February, 2025},
		{"february leap", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local), 29, time.February, 2024},
		{"december", time.Date(2025, time.December, 10, 0, 0, 0, 0, time.Local), 31, time.December, 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndOfMonthInclusive(tt.in)
			if got.Year() != tt.year || got.Month() != tt.month || got.Day() != tt.lastDay {
				t.Fatalf("EndOfMonthInclusive = %v, want last day %d of %v %d", got, tt.lastDay, tt.month, tt.year)
			}

			// The bound is inclusive: 23:59:59 on the last day is not after
			// it, but the first instant of the next month is.
			lastSecond := time.Date(tt.year, tt.month, tt.lastDay, 23, 59, 59, 0, time.Local)
			if lastSecond.After(got) {
				t.Error("23:59:59 on the last day must be inside the window")
			}
			nextMonth := StartOfMonth(tt.in).AddDate(0, 1, 0)
			if !nextMonth.After(got) {
				t.Error("first instant of the next month must be outside the window")
			}
		})
	}
}

func TestWindowsAreExhaustiveAndDisjoint(t *testing.T) {
	// Consecutive day windows tile the timeline with no gap or overlap.
	day := time.Date(2025, time.June, 14, 9, 30, 0, 0, time.Local)
	if !EndOfDayExclusive(day).Equal(StartOfDay(day.AddDate(0, 0, 1))) {
		t.Error("end of one day must equal the start of the next")
	}

	// A month window ends just before the next month begins.
	gap := StartOfMonth(day.AddDate(0, 1, 0)).Sub(EndOfMonthInclusive(day))
	if gap != time.Nanosecond {
		t.Errorf("gap between month end and next month start = %v, want 1ns", gap)
	}
}
