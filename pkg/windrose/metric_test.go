package windrose

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/chrissnell/windrose/pkg/compass"
)

func TestMetricSlug(t *testing.T) {
	tests := []struct {
		metric Metric
		slug   string
		unit   string
	}{
		{Percentage, "wind_percentage", "%"},
		{MeanSpeed, "wind_mean", "m/s"},
		{MaxSpeed, "wind_max", "m/s"},
	}
	for _, tt := range tests {
		if got := tt.metric.Slug(); got != tt.slug {
			t.Errorf("%v.Slug() = %q, want %q", tt.metric, got, tt.slug)
		}
		if got := tt.metric.Unit(); got != tt.unit {
			t.Errorf("%v.Unit() = %q, want %q", tt.metric, got, tt.unit)
		}
	}
}

func TestValues(t *testing.T) {
	stats := Aggregate([]Observation{
		obsAt(compass.N, 2.0),
		obsAt(compass.N, 4.0),
		obsAt(compass.E, 6.0),
		obsAt(compass.Calm, 0.0),
	})

	pct := stats.Values(Percentage)
	if math.Abs(pct[compass.N]-50.0) > epsilon {
		t.Errorf("N percentage = %v, want 50", pct[compass.N])
	}
	if math.Abs(pct[compass.E]-25.0) > epsilon {
		t.Errorf("E percentage = %v, want 25", pct[compass.E])
	}

	mean := stats.Values(MeanSpeed)
	if math.Abs(mean[compass.N]-3.0) > epsilon {
		t.Errorf("N mean = %v, want 3", mean[compass.N])
	}

	max := stats.Values(MaxSpeed)
	if math.Abs(max[compass.N]-4.0) > epsilon {
		t.Errorf("N max = %v, want 4", max[compass.N])
	}
}

func TestValuesPercentageSumNoCalm(t *testing.T) {
	stats := Aggregate([]Observation{
		obsAt(compass.N, 2.0),
		obsAt(compass.SE, 1.0),
		obsAt(compass.SE, 5.0),
	})
	pct := stats.Values(Percentage)
	if sum := floats.Sum(pct[:]); math.Abs(sum-100.0) > 1e-6 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

// Calm hours stay in the percentage denominator, so the sectors plus the calm
// share always add up to 100.
func TestValuesPercentageDenominator(t *testing.T) {
	stats := Aggregate([]Observation{
		obsAt(compass.N, 1.0),
		obsAt(compass.Calm, 0.0),
		obsAt(compass.Calm, 0.0),
		obsAt(compass.Calm, 0.0),
	})

	pct := stats.Values(Percentage)
	sum := floats.Sum(pct[:]) + stats.CalmPercentage()
	if math.Abs(sum-100.0) > epsilon {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
	if math.Abs(pct[compass.N]-25.0) > epsilon {
		t.Errorf("N percentage = %v, want 25", pct[compass.N])
	}
	if math.Abs(stats.CalmPercentage()-75.0) > epsilon {
		t.Errorf("CalmPercentage = %v, want 75", stats.CalmPercentage())
	}
}

// An empty period must yield renderable zeros, never NaN.
func TestValuesEmpty(t *testing.T) {
	stats := Aggregate(nil)
	for _, m := range Metrics {
		for i, v := range stats.Values(m) {
			if v != 0 || math.IsNaN(v) {
				t.Errorf("%v value for sector %s = %v, want 0", m, compass.Sector(i), v)
			}
		}
	}
	if got := stats.CalmPercentage(); got != 0 {
		t.Errorf("CalmPercentage of empty period = %v, want 0", got)
	}
}
