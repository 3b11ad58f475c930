// Package period computes the calendar windows used for task quotas and
// score aggregation. All boundaries are derived from the location of the
// input time, which is the server-local zone for the lifetime of the
// process; no caller computes its own window math.
package period

import "time"

// StartOfDay returns midnight of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDayExclusive returns midnight of the following calendar day. The
// daily quota window is [StartOfDay(t), EndOfDayExclusive(t)).
func EndOfDayExclusive(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// StartOfMonth returns midnight on the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonthInclusive returns the last representable instant of the month
// containing t. The monthly aggregation window is
// [StartOfMonth(t), EndOfMonthInclusive(t)], inclusive of both bounds, so a
// task created at 23:59:59 on the last day of the month still counts.
func EndOfMonthInclusive(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
