// Package windrose turns a year of hourly wind observations into per-sector
// directional statistics. Observations are bucketed into the 16 compass
// sectors for three calendar windows (year, summer, winter), and each window
// yields per-sector counts, mean speeds and max speeds plus a calm count,
// which are the numbers a wind rose diagram is drawn from.
package windrose

import (
	"time"

	"github.com/chrissnell/windrose/pkg/compass"
)

// Observation is one hourly wind reading. Speed is in m/s and is never
// negative; a Calm direction or a zero speed marks a calm hour. Observations
// are immutable once produced by the loader.
type Observation struct {
	Time      time.Time
	Direction compass.Sector
	Speed     float64
}

// IsCalm reports whether the observation counts as a calm hour: either the
// station reported no direction or the speed was zero.
func (o Observation) IsCalm() bool {
	return !o.Direction.IsDirectional() || o.Speed == 0
}
