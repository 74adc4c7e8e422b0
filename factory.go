package recurrence

import "time"

// buildRRuleIterator is the factory dispatch: given a validated rule and the
// series start (already split into wall-clock date/time components in the
// rule's own time zone), choose the year/month/day generator chain and
// filter set, install the terminating condition, and wrap the result in an
// RRuleIterator.
func buildRRuleIterator(r RRule, dtStart WorkingDate, startHour, startMinute, startSecond int, loc *time.Location, valueType ValueType) *RRuleIterator {
	year, month, day, filt := buildChain(r, dtStart)
	if r.Observance != nil {
		filt = filterAll(filt, r.Observance)
	}
	inst := newSerialInstanceGenerator(year, month, day, filt, dtStart)

	var ig instanceGenerator = inst
	if len(r.BySetPos) > 0 {
		ig = newBySetPosInstanceGenerator(inst, r.BySetPos, r.Freq, r.Wkst)
	}

	cond := buildCondition(r)
	canShortcut := r.Count == 0

	it := newRRuleIterator(ig, cond, loc, valueType, canShortcut)
	it.withBaseTimeOfDay(startHour, startMinute, startSecond)
	applyForcedTimeOfDay(it, r, startHour, startMinute, startSecond)
	return it
}

func buildCondition(r RRule) condition {
	switch {
	case r.Count > 0:
		return newCountCondition(r.Count)
	case !r.Until.IsZero():
		return newUntilCondition(r.Until.UTC())
	default:
		return alwaysTrue{}
	}
}

// applyForcedTimeOfDay pins each BYHOUR/BYMINUTE/BYSECOND field that carries
// a singleton value on every emission; several of them may be pinned at once,
// and the rest keep dtStart's own value. Multiple values on any
// of these are rejected during RRule.Validate, so by the time this runs
// each list has length 0 or 1.
func applyForcedTimeOfDay(it *RRuleIterator, r RRule, baseHour, baseMinute, baseSecond int) {
	if len(r.ByHour) == 1 {
		it.forceHourTo(r.ByHour[0])
	}
	if len(r.ByMinute) == 1 {
		it.forceMinuteTo(r.ByMinute[0])
	}
	if len(r.BySecond) == 1 {
		it.forceSecondTo(r.BySecond[0])
	}
}

// buildChain returns the year/month/day generator triple (month may be nil
// when the day generator spans the whole year itself) and the composed
// filter, per the frequency dispatch table.
func buildChain(r RRule, dtStart WorkingDate) (year, month, day generator, filt filter) {
	year = newSerialYearGenerator(yearInterval(r))

	switch r.Freq {
	case Daily:
		day, filt = dailyDayGenerator(r)
		month = defaultMonthGenerator(r, Daily)
	case Weekly:
		day, filt = weeklyDayGenerator(r, dtStart)
		month = defaultMonthGenerator(r, Weekly)
	case Monthly:
		month = defaultMonthGenerator(r, Monthly)
		day, filt = monthlyDayGenerator(r, dtStart, false)
	case Yearly:
		month, day, filt = yearlyChain(r, dtStart)
	}
	return
}

func yearInterval(r RRule) int {
	if r.Freq == Yearly {
		return r.interval()
	}
	return 1
}

// defaultMonthGenerator implements the general month-generator rule for the
// DAILY, WEEKLY and MONTHLY rows: an explicit BYMONTH list always wins;
// otherwise a serial stepper, stepping by Interval for MONTHLY and by 1 for
// everything else so DAILY/WEEKLY strides carry cleanly across month ends.
func defaultMonthGenerator(r RRule, freq Frequency) generator {
	if len(r.ByMonth) > 0 {
		return newByMonthGenerator(r.ByMonth)
	}
	if freq == Monthly {
		return newSerialMonthGenerator(r.interval())
	}
	return newSerialMonthGenerator(1)
}

// dailyDayGenerator: BYMONTHDAY if present, else a serial stepper at
// Interval days. BYDAY, when present, is never a primary driver at DAILY
// frequency; it only constrains the result (weeksInYear=true, since DAILY
// has no enclosing month of its own).
func dailyDayGenerator(r RRule) (generator, filter) {
	var day generator
	if len(r.ByMonthDay) > 0 {
		day = newByMonthDayGenerator(r.ByMonthDay)
	} else {
		day = newSerialDayGenerator(r.interval())
	}
	var filt filter
	if len(r.ByDay) > 0 {
		filt = newByDayFilter(r.ByDay, true)
	}
	return day, filt
}

// weeklyDayGenerator: BYDAY drives the day field within the enclosing month
// when present (the weekIntervalFilter then enforces the "every Nth week"
// stride that the per-month BYDAY expansion alone cannot express); otherwise
// a serial 7*Interval-day stepper walks the weeks directly.
func weeklyDayGenerator(r RRule, dtStart WorkingDate) (generator, filter) {
	var day generator
	if len(r.ByDay) > 0 {
		day = newByDayGenerator(r.ByDay, false)
	} else {
		day = newSerialDayGenerator(r.interval() * 7)
	}

	var filters []filter
	if r.interval() > 1 && len(r.ByDay) > 0 {
		filters = append(filters, newWeekIntervalFilter(r.interval(), r.Wkst, dtStart))
	}
	if len(r.ByMonthDay) > 0 {
		filters = append(filters, newByMonthDayFilter(r.ByMonthDay))
	}
	return day, filterAll(filters...)
}

// monthlyDayGenerator picks the day generator for a month-scoped enclosing
// period: BYMONTHDAY first, then BYDAY, then a singleton at dtStart's own
// day-of-month. BYWEEKNO is never considered here: yearlyChain routes a rule
// with a BYWEEKNO list to byWeekNoGenerator before this function is reached.
func monthlyDayGenerator(r RRule, dtStart WorkingDate, weeksInYear bool) (generator, filter) {
	if len(r.ByMonthDay) > 0 {
		var filt filter
		if len(r.ByDay) > 0 {
			filt = newByDayFilter(r.ByDay, weeksInYear)
		}
		return newByMonthDayGenerator(r.ByMonthDay), filt
	}
	if len(r.ByDay) > 0 {
		return newByDayGenerator(r.ByDay, weeksInYear), nil
	}
	return newSingletonDayGenerator(dtStart.Day), nil
}

// yearlyChain resolves the YEARLY row: BYYEARDAY, then BYWEEKNO, then a
// year-spanning BYDAY each drive the day field directly across the whole
// year (month is nil; the instance generator already tolerates that).
// BYWEEKNO takes priority over a simultaneous BYMONTH list (its candidate
// set doesn't decompose cleanly by month boundary); BYMONTH is instead
// applied as an extra filter on top of the week-no generator in that case.
// Anything else falls through to the month-scoped MONTHLY branch, with
// BYMONTH (or a singleton at dtStart's own month) as the enclosing month
// generator.
func yearlyChain(r RRule, dtStart WorkingDate) (month, day generator, filt filter) {
	if len(r.ByYearDay) > 0 {
		day = newByYearDayGenerator(r.ByYearDay)
		var filters []filter
		if len(r.ByMonth) > 0 {
			filters = append(filters, newByMonthFilter(r.ByMonth))
		}
		if len(r.ByDay) > 0 {
			filters = append(filters, newByDayFilter(r.ByDay, true))
		}
		return nil, day, filterAll(filters...)
	}

	if len(r.ByWeekNo) > 0 {
		day = newByWeekNoGenerator(r.ByWeekNo, r.ByDay, r.Wkst)
		if len(r.ByMonth) > 0 {
			return nil, day, newByMonthFilter(r.ByMonth)
		}
		return nil, day, nil
	}

	if len(r.ByMonth) == 0 && len(r.ByDay) > 0 {
		day = newByDayGenerator(r.ByDay, true)
		return nil, day, nil
	}

	if len(r.ByMonth) > 0 {
		month = newByMonthGenerator(r.ByMonth)
	} else {
		month = newSingletonMonthGenerator(dtStart.Month)
	}
	day, filt = monthlyDayGenerator(r, dtStart, false)
	return month, day, filt
}
