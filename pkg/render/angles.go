// Package render turns per-sector wind statistics into wind rose diagrams
// composited over a rotated base map. The map and the polar diagram share one
// rotation convention: a positive angle turns the whole scene counter-clockwise
// about the map center, so the bar for a compass sector always points at the
// same piece of map regardless of the angle chosen.
package render

import (
	"math"

	"github.com/chrissnell/windrose/pkg/compass"
)

// NormalizeAngle wraps an angle to the range [0, 360).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// ScreenAngle returns the screen direction of a sector's bar in math
// convention (degrees counter-clockwise from east, y up), for a scene rotated
// rotation degrees counter-clockwise. With no rotation, N points straight up
// (90°) and the sectors proceed clockwise, matching a north-up map.
func ScreenAngle(s compass.Sector, rotation float64) float64 {
	return NormalizeAngle(90 - s.Center() + rotation)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// polarPoint maps a math-convention angle and radius to canvas coordinates,
// where the canvas y axis grows downward.
func polarPoint(cx, cy, radius, deg float64) (float64, float64) {
	rad := degToRad(deg)
	return cx + radius*math.Cos(rad), cy - radius*math.Sin(rad)
}
