package recurrence

import (
	"strconv"

	"github.com/spf13/cast"
)

// intFromAny coerces a single loosely-typed value (as decoded from JSON, a
// config map, or similar) into an int. Both IntListFrom below and
// Frequency.UnmarshalJSON (frequency.go) route through this one coercion
// point instead of each hand-rolling their own type switch.
func intFromAny(v any) (int, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, newRuleError("value is not an integer")
	}
	return n, nil
}

// IntListFrom coerces a loosely-typed by-part list (e.g. one decoded from a
// JSON document into []any) into the []int every BY* field on RRule
// expects. This is the Declarations-boundary counterpart of
// Frequency.UnmarshalJSON: upstream producers of a Declarations value are
// not required to hand this package native ints.
func IntListFrom(vals []any) ([]int, error) {
	if vals == nil {
		return nil, nil
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		n, err := intFromAny(v)
		if err != nil {
			return nil, newRuleError("by-part value " + strconv.Itoa(i) + " is not an integer")
		}
		out[i] = n
	}
	return out, nil
}
