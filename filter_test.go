package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByDayFilterMonthGranularity(t *testing.T) {
	f := newByDayFilter([]WeekdayNum{FR.Nth(-1)}, false)
	assert.True(t, f.matches(WorkingDate{1997, 9, 26}))
	assert.False(t, f.matches(WorkingDate{1997, 9, 19}))
}

func TestByDayFilterYearGranularity(t *testing.T) {
	f := newByDayFilter([]WeekdayNum{MO.Every()}, true)
	assert.True(t, f.matches(WorkingDate{1997, 5, 12}))
	assert.False(t, f.matches(WorkingDate{1997, 5, 13}))
}

func TestByMonthFilter(t *testing.T) {
	f := newByMonthFilter([]int{3, 6})
	assert.True(t, f.matches(WorkingDate{2000, 6, 1}))
	assert.False(t, f.matches(WorkingDate{2000, 7, 1}))
}

func TestByMonthDayFilterNegativeIndex(t *testing.T) {
	f := newByMonthDayFilter([]int{-1})
	assert.True(t, f.matches(WorkingDate{2001, 2, 28}))
	assert.False(t, f.matches(WorkingDate{2001, 2, 27}))
}

func TestWeekIntervalFilter(t *testing.T) {
	dtStart := WorkingDate{1997, 9, 2} // a Tuesday
	f := newWeekIntervalFilter(2, MO, dtStart)

	assert.True(t, f.matches(WorkingDate{1997, 9, 2}), "dtStart's own week always matches")
	assert.False(t, f.matches(WorkingDate{1997, 9, 9}), "the very next week is skipped at interval 2")
	assert.True(t, f.matches(WorkingDate{1997, 9, 16}), "two weeks later matches again")
}

func TestFilterAllIsConjunction(t *testing.T) {
	always := filterFunc(func(WorkingDate) bool { return true })
	never := filterFunc(func(WorkingDate) bool { return false })

	assert.True(t, filterAll(always, always).matches(WorkingDate{}))
	assert.False(t, filterAll(always, never).matches(WorkingDate{}))
}

func TestFilterAllEmptyMatchesEverything(t *testing.T) {
	assert.True(t, filterAll().matches(WorkingDate{}))
	assert.True(t, filterAll(nil, nil).matches(WorkingDate{}))
}
