// Package compass models the 16-sector compass used for wind direction
// observations. Sectors are 22.5° wide, ordered clockwise from true north,
// with a separate Calm tag for hours of zero or unreported wind.
package compass

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Sector identifies one of the 16 compass sectors, or Calm.
type Sector int

const (
	N Sector = iota
	NNE
	NE
	ENE
	E
	ESE
	SE
	SSE
	S
	SSW
	SW
	WSW
	W
	WNW
	NW
	NNW
	// Calm marks an hour with zero or unreported wind. It is not a
	// directional sector and has no center angle.
	Calm
)

// NumSectors is the number of directional sectors on the compass.
const NumSectors = 16

// SectorWidth is the angular width of one sector in degrees.
const SectorWidth = 360.0 / NumSectors

var labels = [NumSectors + 1]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
	"CALM",
}

// jmaLabels maps the direction strings used by Japan Meteorological Agency
// exports, including the calm sentinel 静穏.
var jmaLabels = map[string]Sector{
	"北":   N,
	"北北東": NNE,
	"北東":  NE,
	"東北東": ENE,
	"東":   E,
	"東南東": ESE,
	"南東":  SE,
	"南南東": SSE,
	"南":   S,
	"南南西": SSW,
	"南西":  SW,
	"西南西": WSW,
	"西":   W,
	"西北西": WNW,
	"北西":  NW,
	"北北西": NNW,
	"静穏":  Calm,
}

// String returns the fixed English label for the sector.
func (s Sector) String() string {
	if s < N || s > Calm {
		return fmt.Sprintf("Sector(%d)", int(s))
	}
	return labels[s]
}

// IsDirectional reports whether s is one of the 16 compass sectors.
func (s Sector) IsDirectional() bool {
	return s >= N && s < Calm
}

// Center returns the sector's canonical compass angle in degrees, measured
// clockwise from true north (N=0, E=90, S=180, W=270). Calm has no
// direction; its center is NaN.
func (s Sector) Center() float64 {
	if !s.IsDirectional() {
		return math.NaN()
	}
	return float64(s) * SectorWidth
}

// UnknownLabelError reports a direction string that is neither a compass
// label nor a calm sentinel.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown direction label %q", e.Label)
}

// Parse maps a direction label to its Sector. It accepts the 16 English
// labels (case-insensitive), the JMA Japanese labels, and the calm
// sentinels "CALM", "静穏" and the empty string. JMA exports occasionally
// leave a one-rune quality-flag remnant glued to the label, so Parse also
// accepts a known label with a single stray rune at one end. A label with
// more junk than that, or with junk at both ends, is an *UnknownLabelError.
func Parse(label string) (Sector, error) {
	s := strings.TrimSpace(label)
	if s == "" {
		return Calm, nil
	}
	if sec, ok := lookup(s); ok {
		return sec, nil
	}
	// A remnant is one rune at one end. Exactly one of the two trims may
	// resolve to a known label; anything else is rejected, so a string
	// that reads as a label from both ends never picks one silently.
	head, headOK := lookup(trimFirstRune(s))
	tail, tailOK := lookup(trimLastRune(s))
	if headOK != tailOK {
		if headOK {
			return head, nil
		}
		return tail, nil
	}
	return Calm, &UnknownLabelError{Label: label}
}

func lookup(s string) (Sector, bool) {
	if sec, ok := jmaLabels[s]; ok {
		return sec, true
	}
	u := strings.ToUpper(s)
	for i, l := range labels {
		if u == l {
			return Sector(i), true
		}
	}
	return Calm, false
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func trimFirstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[size:]
}

// FromDegrees buckets a raw heading in degrees (clockwise from north) into
// the sector with the nearest center, wrapping at the 360/0 boundary so
// 359.9° falls in N. A heading exactly midway between two centers goes to
// the lower unwrapped index: 11.25° is N, 348.75° is NNW.
func FromDegrees(deg float64) Sector {
	d := NormalizeDegrees(deg)
	return Sector(int(math.Ceil(d/SectorWidth-0.5)) % NumSectors)
}

// NormalizeDegrees wraps an angle to the range [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
