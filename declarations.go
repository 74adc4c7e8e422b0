package recurrence

import "time"

// Declarations aggregates one parsed recurrence block: inclusion rules,
// inclusion date lists, exclusion rules, exclusion date lists. Textual
// line-folding and parsing into one of these is handled upstream; this is
// the structured contract the factory consumes.
type Declarations struct {
	IncludeRules []RRule
	IncludeDates []Occurrence
	ExcludeRules []RRule
	ExcludeDates []Occurrence
}

// BuildIterator wires a Declarations block into a single OccurrenceIterator:
// dtStart is always included as the first emission regardless of whether it
// satisfies any rule body, and the result is the set difference of every
// inclusion source over every exclusion source.
//
// In strict mode, the first RuleError encountered aborts construction. In
// lenient mode each invalid rule is logged and dropped (logLeniencyDrop);
// construction always succeeds, and dtStart alone still iterates if every
// inclusion rule is dropped this way.
func BuildIterator(d Declarations, dtStart Occurrence, loc *time.Location, strict bool) (OccurrenceIterator, error) {
	if loc == nil {
		loc = time.UTC
	}

	included := []OccurrenceIterator{
		NewDateListIterator(append([]Occurrence{dtStart}, d.IncludeDates...)),
	}
	for _, r := range d.IncludeRules {
		it, err := buildValidatedIterator(r, dtStart, loc, strict)
		if err != nil {
			return nil, err
		}
		if it != nil {
			included = append(included, it)
		}
	}

	var excluded []OccurrenceIterator
	if len(d.ExcludeDates) > 0 {
		excluded = append(excluded, NewDateListIterator(d.ExcludeDates))
	}
	for _, r := range d.ExcludeRules {
		it, err := buildValidatedIterator(r, dtStart, loc, strict)
		if err != nil {
			return nil, err
		}
		if it != nil {
			excluded = append(excluded, it)
		}
	}

	return Except(included, excluded), nil
}

func buildValidatedIterator(r RRule, dtStart Occurrence, loc *time.Location, strict bool) (OccurrenceIterator, error) {
	if err := r.Validate(); err != nil {
		if strict {
			return nil, err
		}
		logLeniencyDrop("rrule", err)
		return nil, nil
	}
	coerceUntil(&r, dtStart.Type)
	wd, hour, minute, second := splitLocal(dtStart.Value, loc)
	return buildRRuleIterator(r, wd, hour, minute, second, loc, dtStart.Type), nil
}

func splitLocal(t time.Time, loc *time.Location) (WorkingDate, int, int, int) {
	lt := t.In(loc)
	return WorkingDate{Year: lt.Year(), Month: int(lt.Month()), Day: lt.Day()}, lt.Hour(), lt.Minute(), lt.Second()
}

// coerceUntil down-converts a date-time UNTIL to start-of-day when dtStart
// is itself date-only, logging the coercion as a TypeMismatch. The reverse
// direction (date UNTIL against a date-time dtStart) needs no coercion: the
// inclusive UTC comparison already treats a bare date's implicit midnight as
// the natural upper bound.
func coerceUntil(r *RRule, dtStartType ValueType) {
	if r.Until.IsZero() || dtStartType != DateOnly {
		return
	}
	u := r.Until.UTC()
	truncated := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	if !truncated.Equal(u) {
		logTypeCoercion("until", DateTimeValue, DateOnly)
	}
	r.Until = truncated
}
