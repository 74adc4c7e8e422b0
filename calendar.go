package recurrence

import "time"

// Calendar primitives: pure date arithmetic built directly on top of
// time.Time rather than reimplemented by hand, the way every repo that
// needs day-of-month/weekday math in this ecosystem does it.

// daysInMonth returns the number of days in the given proleptic-Gregorian
// month (1-12).
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// yearLength returns 365 or 366.
func yearLength(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

// weekdayOf returns the MO-first weekday of the given date.
func weekdayOf(year, month, day int) Weekday {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Weekday is SU=0..SA=6; rotate to MO=0..SU=6.
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// dayOfYear returns the 1-based ordinal day of (year, month, day) within its year.
func dayOfYear(year, month, day int) int {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(start).Hours()/24) + 1
}

// dateFromYearDay converts a 1-based ordinal day within year back to (month, day).
// Returns ok=false if yday is out of [1, yearLength(year)].
func dateFromYearDay(year, yday int) (month, day int, ok bool) {
	if yday < 1 || yday > yearLength(year) {
		return 0, 0, false
	}
	t := time.Date(year, 1, yday, 0, 0, 0, 0, time.UTC)
	if t.Year() != year {
		return 0, 0, false
	}
	return int(t.Month()), t.Day(), true
}

// addDays returns the (year, month, day) reached by stepping n days from the
// given date.
func addDays(year, month, day, n int) (int, int, int) {
	t := time.Date(year, time.Month(month), day+n, 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month()), t.Day()
}

var epochForWeekMath = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)

// daysSinceEpoch returns a day count that increases by exactly one per
// calendar day. Only differences between two calls are meaningful.
func daysSinceEpoch(year, month, day int) int {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Unix seconds rather than t.Sub: a time.Duration saturates at about 292
	// years, far short of the distance from year 1.
	return int((t.Unix() - epochForWeekMath.Unix()) / 86400)
}

// compareDate returns -1, 0 or 1 comparing two (y,m,d) tuples.
func compareDate(y1, m1, d1, y2, m2, d2 int) int {
	switch {
	case y1 != y2:
		return sign(y1 - y2)
	case m1 != m2:
		return sign(m1 - m2)
	default:
		return sign(d1 - d2)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
