package recurrence

// maxEmptyPeriods bounds how many consecutive year boundaries an instance
// generator will cross without producing a single candidate before it gives
// up. Without it, a rule like BYMONTH=2;BYMONTHDAY=30 would spin forever:
// every February is empty, and nothing ever terminates the search.
const maxEmptyPeriods = 100

// instanceGenerator is the composition of (year -> month? -> day) generators
// and a filter that yields the next surviving date in a strictly increasing
// stream, or reports exhaustion.
type instanceGenerator interface {
	next() (WorkingDate, bool)
}

// serialInstanceGenerator is the plain (non BYSETPOS) instance generator:
// try day.generate; on rollover try month.generate (if present); on
// rollover try year.generate; retry. dtStart is always the priming value of
// the working date, and any candidate strictly earlier than dtStart is
// silently skipped, which uniformly implements the "skip entries before
// dtStart in its own first period" rule that otherwise would need repeating
// in several of the by-list generators.
type serialInstanceGenerator struct {
	year  generator
	month generator // nil for generators that span the whole year themselves
	day   generator
	filt  filter

	dtStart      WorkingDate
	wd           WorkingDate
	started      bool
	emptyPeriods int
	exhausted    bool
}

func newSerialInstanceGenerator(year, month, day generator, filt filter, dtStart WorkingDate) *serialInstanceGenerator {
	return &serialInstanceGenerator{year: year, month: month, day: day, filt: filt, dtStart: dtStart}
}

func (ig *serialInstanceGenerator) next() (WorkingDate, bool) {
	if ig.exhausted {
		return WorkingDate{}, true
	}
	if !ig.started {
		ig.wd = ig.dtStart
		ig.started = true
		ig.year.generate(&ig.wd)
		if ig.month != nil {
			ig.month.generate(&ig.wd)
		}
	}
	for {
		status := ig.day.generate(&ig.wd)
		if status == genRolledOver {
			if !ig.advancePeriod() {
				ig.exhausted = true
				return WorkingDate{}, true
			}
			continue
		}
		if ig.wd.before(ig.dtStart) {
			continue
		}
		if ig.filt != nil && !ig.filt.matches(ig.wd) {
			continue
		}
		ig.emptyPeriods = 0
		return ig.wd, false
	}
}

// advancePeriod moves the month/year generators forward until the day
// generator has a new period to work with, or reports that the search has
// gone on long enough without a match to give up.
func (ig *serialInstanceGenerator) advancePeriod() bool {
	for {
		if ig.month != nil {
			if ig.month.generate(&ig.wd) == genAdvanced {
				return true
			}
			ig.year.generate(&ig.wd)
		} else {
			ig.year.generate(&ig.wd)
			ig.emptyPeriods++
			return ig.emptyPeriods <= maxEmptyPeriods
		}
		ig.emptyPeriods++
		if ig.emptyPeriods > maxEmptyPeriods {
			return false
		}
	}
}

// bySetPosInstanceGenerator buffers every filter-passing date produced by
// the underlying generator chain within one enclosing set period (year,
// month, or week), sorts and dedupes them, and emits only the entries at
// the requested ordinal positions.
type bySetPosInstanceGenerator struct {
	inner    *serialInstanceGenerator
	bySetPos []int
	periodOf func(WorkingDate) int

	queue           []WorkingDate
	queueIdx        int
	pending         WorkingDate
	hasPend         bool
	emptySelections int
	exhausted       bool
}

// maxEmptySelections bounds how many consecutive set periods can produce a
// non-empty candidate buffer that BYSETPOS nonetheless selects nothing from
// (e.g. BYMONTHDAY=1;BYSETPOS=5, where every month has exactly one candidate
// and position 5 is always out of range) before giving up. This is distinct
// from the inner generator's own maxEmptyPeriods guard, which only trips when
// a period has no candidates at all.
const maxEmptySelections = 100

func newBySetPosInstanceGenerator(inner *serialInstanceGenerator, bySetPos []int, freq Frequency, wkst Weekday) *bySetPosInstanceGenerator {
	var periodOf func(WorkingDate) int
	switch freq {
	case Yearly:
		periodOf = func(wd WorkingDate) int { return wd.Year }
	case Monthly:
		periodOf = func(wd WorkingDate) int { return wd.Year*12 + wd.Month }
	case Daily:
		// DAILY has no natural multi-candidate set period; treat each day as
		// its own period so BYSETPOS only ever sees a single-element buffer.
		periodOf = func(wd WorkingDate) int { return daysSinceEpoch(wd.Year, wd.Month, wd.Day) }
	default: // Weekly
		periodOf = func(wd WorkingDate) int { return absoluteWeekIndex(wd, wkst) }
	}
	return &bySetPosInstanceGenerator{inner: inner, bySetPos: bySetPos, periodOf: periodOf}
}

func (g *bySetPosInstanceGenerator) next() (WorkingDate, bool) {
	for {
		if g.queueIdx < len(g.queue) {
			wd := g.queue[g.queueIdx]
			g.queueIdx++
			return wd, false
		}
		if g.exhausted {
			return WorkingDate{}, true
		}
		if !g.fillNextPeriod() {
			g.exhausted = true
			return WorkingDate{}, true
		}
		if len(g.queue) == 0 {
			g.emptySelections++
			if g.emptySelections > maxEmptySelections {
				g.exhausted = true
				return WorkingDate{}, true
			}
			continue
		}
		g.emptySelections = 0
	}
}

func (g *bySetPosInstanceGenerator) fillNextPeriod() bool {
	var first WorkingDate
	if g.hasPend {
		first = g.pending
		g.hasPend = false
	} else {
		wd, exhausted := g.inner.next()
		if exhausted {
			return false
		}
		first = wd
	}

	key := g.periodOf(first)
	period := []WorkingDate{first}
	for {
		wd, exhausted := g.inner.next()
		if exhausted {
			break
		}
		if g.periodOf(wd) != key {
			g.pending, g.hasPend = wd, true
			break
		}
		period = append(period, wd)
	}

	period = sortUniqueWorkingDates(period)
	g.queue = selectBySetPos(period, g.bySetPos)
	g.queueIdx = 0
	return true
}

// selectBySetPos returns the entries of sorted whose 1-based position (or,
// for negative values, position counting from the end) appears in
// bySetPos. Out-of-range positions are dropped; the result stays ascending.
func selectBySetPos(sorted []WorkingDate, bySetPos []int) []WorkingDate {
	n := len(sorted)
	keep := make([]bool, n)
	for _, pos := range bySetPos {
		idx := pos
		if idx < 0 {
			idx = n + idx + 1
		}
		if idx >= 1 && idx <= n {
			keep[idx-1] = true
		}
	}
	out := make([]WorkingDate, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, sorted[i])
		}
	}
	return out
}
