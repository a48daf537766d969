package windrose

import (
	"math"
	"testing"
	"time"

	"github.com/chrissnell/windrose/pkg/compass"
)

const epsilon = 1e-9

func obsAt(dir compass.Sector, speed float64) Observation {
	return Observation{
		Time:      time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		Direction: dir,
		Speed:     speed,
	}
}

func TestAggregate(t *testing.T) {
	obs := []Observation{
		obsAt(compass.N, 2.0),
		obsAt(compass.N, 4.0),
		obsAt(compass.E, 6.0),
		obsAt(compass.Calm, 0.0),
	}

	stats := Aggregate(obs)

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.CalmCount != 1 {
		t.Errorf("CalmCount = %d, want 1", stats.CalmCount)
	}

	n := stats.Sectors[compass.N]
	if n.Count != 2 {
		t.Errorf("N count = %d, want 2", n.Count)
	}
	if math.Abs(n.MeanSpeed-3.0) > epsilon {
		t.Errorf("N mean = %v, want 3.0", n.MeanSpeed)
	}
	if math.Abs(n.MaxSpeed-4.0) > epsilon {
		t.Errorf("N max = %v, want 4.0", n.MaxSpeed)
	}

	e := stats.Sectors[compass.E]
	if e.Count != 1 {
		t.Errorf("E count = %d, want 1", e.Count)
	}
	if math.Abs(e.MeanSpeed-6.0) > epsilon {
		t.Errorf("E mean = %v, want 6.0", e.MeanSpeed)
	}
	if math.Abs(e.MaxSpeed-6.0) > epsilon {
		t.Errorf("E max = %v, want 6.0", e.MaxSpeed)
	}

	for i, sec := range stats.Sectors {
		s := compass.Sector(i)
		if s == compass.N || s == compass.E {
			continue
		}
		if sec.Count != 0 || sec.MeanSpeed != 0 || sec.MaxSpeed != 0 {
			t.Errorf("sector %s = %+v, want all zero", s, sec)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.Total != 0 || stats.CalmCount != 0 {
		t.Errorf("Aggregate(nil) = %+v, want zero totals", stats)
	}
	for i, sec := range stats.Sectors {
		if sec != (SectorStats{}) {
			t.Errorf("sector %s = %+v, want zero value", compass.Sector(i), sec)
		}
	}
}

// A zero-speed hour is calm even when the station reported a direction,
// and a directionless hour is calm regardless of speed.
func TestAggregateCalmRules(t *testing.T) {
	obs := []Observation{
		obsAt(compass.SW, 0.0),
		obsAt(compass.Calm, 3.5),
		obsAt(compass.SW, 2.0),
	}
	stats := Aggregate(obs)

	if stats.CalmCount != 2 {
		t.Errorf("CalmCount = %d, want 2", stats.CalmCount)
	}
	if got := stats.Sectors[compass.SW].Count; got != 1 {
		t.Errorf("SW count = %d, want 1", got)
	}
}

// Every observation lands in exactly one bucket: the sector counts plus the
// calm count always recover the total.
func TestAggregateConservation(t *testing.T) {
	var obs []Observation
	for i := 0; i < 400; i++ {
		dir := compass.Sector(i % (compass.NumSectors + 1)) // includes Calm
		speed := float64(i%7) * 1.3
		obs = append(obs, obsAt(dir, speed))
	}

	stats := Aggregate(obs)

	sum := stats.CalmCount
	for _, sec := range stats.Sectors {
		sum += sec.Count
	}
	if sum != stats.Total {
		t.Errorf("sector counts + calm = %d, want Total = %d", sum, stats.Total)
	}
	if stats.Total != len(obs) {
		t.Errorf("Total = %d, want %d", stats.Total, len(obs))
	}
}

func TestAggregateMeanNeverExceedsMax(t *testing.T) {
	obs := []Observation{
		obsAt(compass.NNE, 1.0),
		obsAt(compass.NNE, 8.0),
		obsAt(compass.NNE, 3.0),
		obsAt(compass.W, 5.5),
	}
	stats := Aggregate(obs)
	for i, sec := range stats.Sectors {
		if sec.MeanSpeed > sec.MaxSpeed+epsilon {
			t.Errorf("sector %s mean %v exceeds max %v", compass.Sector(i), sec.MeanSpeed, sec.MaxSpeed)
		}
	}
	if got := stats.Sectors[compass.NNE].MaxSpeed; math.Abs(got-8.0) > epsilon {
		t.Errorf("NNE max = %v, want 8.0", got)
	}
	if got := stats.Sectors[compass.NNE].MeanSpeed; math.Abs(got-4.0) > epsilon {
		t.Errorf("NNE mean = %v, want 4.0", got)
	}
}
