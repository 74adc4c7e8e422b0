package recurrence

import (
	"encoding/json"
	"fmt"
)

// Frequency defines a set of constants for a base factor for how often recurrences happen.
//
// The engine in this package only expands YEARLY, MONTHLY, WEEKLY and DAILY
// rules. The sub-daily constants are retained so RRule values round-trip
// through JSON and so callers get a RuleError instead of a panic when they
// hand the factory something this core was never meant to iterate.
type Frequency int

// Frequencies specified in RFC 5545.
const (
	Secondly Frequency = iota
	Minutely
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
)

// frequencyNames is indexed directly by Frequency, avoiding a switch per name.
var frequencyNames = [...]string{
	Secondly: "SECONDLY",
	Minutely: "MINUTELY",
	Hourly:   "HOURLY",
	Daily:    "DAILY",
	Weekly:   "WEEKLY",
	Monthly:  "MONTHLY",
	Yearly:   "YEARLY",
}

// String returns the RFC 5545 string for supported frequencies, and panics otherwise.
func (f Frequency) String() string {
	if int(f) < 0 || int(f) >= len(frequencyNames) {
		panic(fmt.Sprintf("%d is not a supported frequency constant", int(f)))
	}
	return frequencyNames[f]
}

// subDaily reports whether f is below the core's supported DAILY floor.
func (f Frequency) subDaily() bool {
	return f == Secondly || f == Minutely || f == Hourly
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// UnmarshalJSON accepts a bare JSON number or a numeric string, routed
// through the same intFromAny coercion bypart.go's IntListFrom uses for
// BY-part values, since an upstream caller's JSON document isn't guaranteed
// to encode this field as a native number.
func (f *Frequency) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n, err := intFromAny(v)
	if err != nil {
		return err
	}
	*f = Frequency(n)
	return nil
}
