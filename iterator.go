package recurrence

import "time"

// ValueType distinguishes an all-day DateValue from a timed DateTimeValue.
// A date-only value and a date-time value sharing the same Y-M-D are never
// equal for merge or exclusion purposes.
type ValueType int

const (
	DateOnly ValueType = iota
	DateTimeValue
)

// Occurrence is a single emitted instant, always normalized to UTC.
type Occurrence struct {
	Value time.Time
	Type  ValueType
}

func (o Occurrence) equal(other Occurrence) bool {
	return o.Type == other.Type && o.Value.Equal(other.Value)
}

// OccurrenceIterator is the pull-based, single-threaded cursor every
// occurrence source in this package implements: RRuleIterator,
// DateListIterator, and CompoundIterator.
type OccurrenceIterator interface {
	HasNext() bool
	Peek() (Occurrence, bool)
	Next() Occurrence
	AdvanceTo(t time.Time)
}

// RRuleIterator is the front of a single RRULE: an instance generator
// wrapped with a terminating condition, an optional forced time-of-day, and
// UTC normalization.
type RRuleIterator struct {
	inst instanceGenerator
	cond condition

	loc                              *time.Location
	valueType                        ValueType
	baseHour, baseMinute, baseSecond int

	hasForceHour, hasForceMinute, hasForceSecond bool
	forceHour, forceMinute, forceSecond          int

	// canShortcutAdvance is true whenever termination does not depend on a
	// running emitted-count (i.e. no COUNT condition is installed). It is
	// recorded but not read: AdvanceTo always walks every intermediate
	// candidate, so the emitted count inside countCondition stays truthful
	// regardless; see DESIGN.md for the rationale.
	canShortcutAdvance bool

	next *Occurrence
	done bool
}

func newRRuleIterator(inst instanceGenerator, cond condition, loc *time.Location, valueType ValueType, canShortcut bool) *RRuleIterator {
	return &RRuleIterator{inst: inst, cond: cond, loc: loc, valueType: valueType, canShortcutAdvance: canShortcut}
}

// withBaseTimeOfDay sets the dtStart-derived HH:MM:SS used for any field
// that is not itself forced.
func (it *RRuleIterator) withBaseTimeOfDay(hour, minute, second int) *RRuleIterator {
	it.baseHour, it.baseMinute, it.baseSecond = hour, minute, second
	return it
}

// forceHourTo, forceMinuteTo and forceSecondTo each pin one field of every
// emission to a fixed value, independently of the other two: each of
// BYHOUR/BYMINUTE/BYSECOND that is a length-1 list forces its own field, and
// any field not forced keeps falling back to the dtStart base.
func (it *RRuleIterator) forceHourTo(hour int) *RRuleIterator {
	it.hasForceHour, it.forceHour = true, hour
	return it
}

func (it *RRuleIterator) forceMinuteTo(minute int) *RRuleIterator {
	it.hasForceMinute, it.forceMinute = true, minute
	return it
}

func (it *RRuleIterator) forceSecondTo(second int) *RRuleIterator {
	it.hasForceSecond, it.forceSecond = true, second
	return it
}

func (it *RRuleIterator) HasNext() bool {
	if it.done {
		return false
	}
	if it.next != nil {
		return true
	}
	it.computeNext()
	return it.next != nil
}

func (it *RRuleIterator) Peek() (Occurrence, bool) {
	if !it.HasNext() {
		return Occurrence{}, false
	}
	return *it.next, true
}

func (it *RRuleIterator) Next() Occurrence {
	occ, ok := it.Peek()
	if !ok {
		return Occurrence{}
	}
	it.next = nil
	it.cond.advance()
	return occ
}

func (it *RRuleIterator) AdvanceTo(t time.Time) {
	for it.HasNext() {
		occ, _ := it.Peek()
		if !occ.Value.Before(t) {
			return
		}
		it.Next()
	}
}

func (it *RRuleIterator) computeNext() {
	for {
		wd, exhausted := it.inst.next()
		if exhausted {
			it.done = true
			it.next = nil
			return
		}
		t := it.toUTC(wd)
		if !it.cond.permit(t) {
			it.done = true
			it.next = nil
			return
		}
		it.next = &Occurrence{Value: t, Type: it.valueType}
		return
	}
}

func (it *RRuleIterator) toUTC(wd WorkingDate) time.Time {
	hour, minute, second := it.baseHour, it.baseMinute, it.baseSecond
	if it.hasForceHour {
		hour = it.forceHour
	}
	if it.hasForceMinute {
		minute = it.forceMinute
	}
	if it.hasForceSecond {
		second = it.forceSecond
	}
	loc := it.loc
	if loc == nil {
		loc = time.UTC
	}
	local := time.Date(wd.Year, time.Month(wd.Month), wd.Day, hour, minute, second, 0, loc)
	return local.UTC()
}
