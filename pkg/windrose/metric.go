package windrose

import (
	"fmt"

	"github.com/chrissnell/windrose/pkg/compass"
)

// Metric selects which per-sector statistic a diagram renders.
type Metric int

const (
	Percentage Metric = iota
	MeanSpeed
	MaxSpeed
)

// Metrics lists all metrics in the order diagrams are generated.
var Metrics = [3]Metric{Percentage, MeanSpeed, MaxSpeed}

// String returns a human-readable metric name for logs and captions.
func (m Metric) String() string {
	switch m {
	case Percentage:
		return "percentage"
	case MeanSpeed:
		return "mean speed"
	case MaxSpeed:
		return "max speed"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Slug returns the metric's output file name component, e.g. the
// "wind_mean" in wind_mean_summer.png.
func (m Metric) Slug() string {
	switch m {
	case Percentage:
		return "wind_percentage"
	case MeanSpeed:
		return "wind_mean"
	case MaxSpeed:
		return "wind_max"
	}
	return fmt.Sprintf("metric%d", int(m))
}

// Unit returns the unit suffix shown on a diagram's radial scale.
func (m Metric) Unit() string {
	if m == Percentage {
		return "%"
	}
	return "m/s"
}

// Values converts the aggregate into the 16 renderable values for the
// metric, in clockwise-from-north sector order. Sectors with no
// observations yield 0 rather than NaN so an all-zero diagram stays
// renderable, and percentages are 0 when the period holds no records
// at all. With a non-zero CalmCount the percentages intentionally sum
// to less than 100: calm hours stay in the denominator.
func (s Statistics) Values(m Metric) [compass.NumSectors]float64 {
	var vals [compass.NumSectors]float64
	for i, sec := range s.Sectors {
		switch m {
		case Percentage:
			if s.Total > 0 {
				vals[i] = float64(sec.Count) / float64(s.Total) * 100
			}
		case MeanSpeed:
			vals[i] = sec.MeanSpeed
		case MaxSpeed:
			vals[i] = sec.MaxSpeed
		}
	}
	return vals
}

// CalmPercentage returns the share of calm hours in the period, or 0 for an
// empty period.
func (s Statistics) CalmPercentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.CalmCount) / float64(s.Total) * 100
}
