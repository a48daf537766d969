package windrose

import (
	"fmt"
	"time"
)

// Period selects which part of the calendar year an aggregation covers.
// Summer and Winter partition the year exactly; Year is their union.
type Period int

const (
	Year Period = iota
	Summer
	Winter
)

// Periods lists all windows in the order diagrams are generated.
var Periods = [3]Period{Year, Summer, Winter}

// String returns the period name used in output file names.
func (p Period) String() string {
	switch p {
	case Year:
		return "year"
	case Summer:
		return "summer"
	case Winter:
		return "winter"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// Contains reports whether a record stamped in the given calendar month
// belongs to the period. Summer is April through November, winter is
// December through March.
func (p Period) Contains(m time.Month) bool {
	switch p {
	case Year:
		return true
	case Summer:
		return m >= time.April && m <= time.November
	case Winter:
		return m == time.December || m <= time.March
	}
	return false
}

// Filter returns the observations whose month falls inside the period.
// The result shares no storage with obs beyond the Observation values
// themselves, which are immutable.
func (p Period) Filter(obs []Observation) []Observation {
	if p == Year {
		out := make([]Observation, len(obs))
		copy(out, obs)
		return out
	}
	var out []Observation
	for _, o := range obs {
		if p.Contains(o.Time.Month()) {
			out = append(out, o)
		}
	}
	return out
}
