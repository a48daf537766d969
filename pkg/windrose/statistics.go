package windrose

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/chrissnell/windrose/pkg/compass"
)

// SectorStats holds the aggregate for one compass sector within one period.
// MeanSpeed and MaxSpeed are zero when Count is zero.
type SectorStats struct {
	Count     int
	MeanSpeed float64
	MaxSpeed  float64
}

// Statistics is the aggregate for one period. The invariant
// sum(Sectors[i].Count) + CalmCount == Total holds for every aggregation.
// A Statistics value is never mutated after Aggregate returns it.
type Statistics struct {
	Sectors   [compass.NumSectors]SectorStats
	CalmCount int
	Total     int
}

// Aggregate buckets observations into the 16 compass sectors and computes
// per-sector count, mean speed and max speed. Calm hours (zero speed or no
// reported direction) are counted only in CalmCount. An empty input yields
// all-zero statistics; empty sectors never produce NaN.
func Aggregate(obs []Observation) Statistics {
	var speeds [compass.NumSectors][]float64

	stats := Statistics{Total: len(obs)}
	for _, o := range obs {
		if o.IsCalm() {
			stats.CalmCount++
			continue
		}
		s := o.Direction
		speeds[s] = append(speeds[s], o.Speed)
	}

	for i := range stats.Sectors {
		if len(speeds[i]) == 0 {
			continue
		}
		stats.Sectors[i] = SectorStats{
			Count:     len(speeds[i]),
			MeanSpeed: stat.Mean(speeds[i], nil),
			MaxSpeed:  floats.Max(speeds[i]),
		}
	}
	return stats
}
