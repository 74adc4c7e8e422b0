package recurrence

import (
	"time"

	"github.com/rickar/cal/v2"
)

// ObservanceFilter restricts occurrences to business days against an
// optional holiday calendar. It composes into the same AND-filter chain
// every other BY-part uses, so an excluded day is simply dropped rather
// than shifted to the next valid one. A rule only gets observance-aware
// iteration when its Observance field is set.
type ObservanceFilter struct {
	calendar        *cal.BusinessCalendar
	excludeWeekends bool
	excludeHolidays bool
}

// NewObservanceFilter builds a filter that drops weekends and/or holidays
// (actual or observed) found on cal. A nil cal disables holiday checking;
// excludeWeekends still applies on its own.
func NewObservanceFilter(calendar *cal.BusinessCalendar, excludeWeekends, excludeHolidays bool) *ObservanceFilter {
	return &ObservanceFilter{calendar: calendar, excludeWeekends: excludeWeekends, excludeHolidays: excludeHolidays}
}

func (f *ObservanceFilter) matches(wd WorkingDate) bool {
	t := time.Date(wd.Year, time.Month(wd.Month), wd.Day, 0, 0, 0, 0, time.UTC)

	if f.excludeWeekends {
		switch t.Weekday() {
		case time.Saturday, time.Sunday:
			return false
		}
	}

	if f.excludeHolidays && f.calendar != nil {
		actual, observed, _ := f.calendar.IsHoliday(t)
		if actual || observed {
			return false
		}
	}

	return true
}

