package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/chrissnell/windrose/pkg/compass"
	"github.com/chrissnell/windrose/pkg/windrose"
)

// Rose geometry, in pixels and degrees.
const (
	roseRadius  = 170  // radial scale maximum
	labelRadius = 192  // sector labels sit just outside the outer ring
	tickAngle   = 67.5 // fixed screen angle of the ring value labels
	wedgeGap    = 2.0  // degrees trimmed from each wedge edge
)

// metricRGB returns the base color a metric's wedges are drawn in.
func metricRGB(m windrose.Metric) (r, g, b float64) {
	switch m {
	case windrose.Percentage:
		return 0.15, 0.37, 0.71
	case windrose.MeanSpeed:
		return 0.09, 0.48, 0.25
	case windrose.MaxSpeed:
		return 0.74, 0.21, 0.13
	}
	return 0.25, 0.25, 0.25
}

// drawRose draws the full diagram layer: polar grid, value wedges, sector
// labels and the caption in the right margin. The context starts transparent
// and stays transparent outside the drawn marks, so the map shows through.
func drawRose(dc *gg.Context, values [compass.NumSectors]float64, spec DiagramSpec, scale float64, fs fontSet) {
	cx := float64(mapSize) / 2
	cy := float64(canvasHeight) / 2

	drawGrid(dc, cx, cy, spec.Angle, scale)
	drawWedges(dc, cx, cy, values, spec, scale)
	drawTicks(dc, cx, cy, scale, fs)
	drawSectorLabels(dc, cx, cy, spec.Angle, fs)
	drawCaption(dc, spec, fs)
}

func drawGrid(dc *gg.Context, cx, cy, rotation, scale float64) {
	// Spokes, one per sector center, rotating with the scene.
	dc.SetRGBA(0.45, 0.45, 0.45, 0.5)
	dc.SetLineWidth(0.8)
	for i := 0; i < compass.NumSectors; i++ {
		x, y := polarPoint(cx, cy, roseRadius, ScreenAngle(compass.Sector(i), rotation))
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()
	}

	// Inner rings at tick steps.
	dc.SetRGBA(0.35, 0.35, 0.35, 0.6)
	dc.SetLineWidth(1)
	step := tickStep(scale)
	for v := step; v < scale*(1-1e-9); v += step {
		dc.DrawCircle(cx, cy, v/scale*roseRadius)
		dc.Stroke()
	}

	// Outer ring at the scale maximum.
	dc.SetRGBA(0.3, 0.3, 0.3, 0.8)
	dc.SetLineWidth(1.2)
	dc.DrawCircle(cx, cy, roseRadius)
	dc.Stroke()
}

func drawWedges(dc *gg.Context, cx, cy float64, values [compass.NumSectors]float64, spec DiagramSpec, scale float64) {
	r, g, b := metricRGB(spec.Metric)
	halfWidth := compass.SectorWidth/2 - wedgeGap

	for i, v := range values {
		if v <= 0 {
			continue
		}
		radius := v / scale * roseRadius
		if radius > roseRadius {
			radius = roseRadius // a fixed ScaleMax may sit below this value
		}
		center := ScreenAngle(compass.Sector(i), spec.Angle)
		// gg measures angles clockwise on the canvas; negate to keep the
		// math convention used everywhere else.
		a1 := degToRad(-(center + halfWidth))
		a2 := degToRad(-(center - halfWidth))

		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, a1, a2)
		dc.ClosePath()
		dc.SetRGBA(r, g, b, 0.45)
		dc.FillPreserve()
		dc.SetRGBA(r, g, b, 0.9)
		dc.SetLineWidth(1.5)
		dc.Stroke()
	}
}

func drawTicks(dc *gg.Context, cx, cy, scale float64, fs fontSet) {
	dc.SetFontFace(fs.tick)
	dc.SetRGBA(0.15, 0.15, 0.15, 0.9)

	step := tickStep(scale)
	for v := step; v < scale*(1-1e-9); v += step {
		x, y := polarPoint(cx, cy, v/scale*roseRadius, tickAngle)
		dc.DrawStringAnchored(formatTick(v), x+3, y, 0, 1)
	}
	x, y := polarPoint(cx, cy, roseRadius, tickAngle)
	dc.DrawStringAnchored(formatTick(scale), x+3, y, 0, 1)
}

func drawSectorLabels(dc *gg.Context, cx, cy, rotation float64, fs fontSet) {
	dc.SetRGBA(0.08, 0.08, 0.08, 0.95)
	for i := 0; i < compass.NumSectors; i++ {
		s := compass.Sector(i)
		if i%4 == 0 {
			dc.SetFontFace(fs.cardinal)
		} else {
			dc.SetFontFace(fs.label)
		}
		x, y := polarPoint(cx, cy, labelRadius, ScreenAngle(s, rotation))
		dc.DrawStringAnchored(s.String(), x, y, 0.5, 0.5)
	}
}

func drawCaption(dc *gg.Context, spec DiagramSpec, fs fontSet) {
	x := float64(mapSize) + float64(canvasWidth-mapSize)/2

	dc.SetRGBA(0.1, 0.1, 0.1, 1)
	dc.SetFontFace(fs.title)
	dc.DrawStringAnchored(spec.Period.String(), x, 180, 0.5, 0.5)

	dc.SetFontFace(fs.caption)
	dc.DrawStringAnchored(spec.Metric.String(), x, 206, 0.5, 0.5)
	dc.DrawStringAnchored("("+spec.Metric.Unit()+")", x, 224, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("calm %.1f%%", spec.CalmPercentage), x, 252, 0.5, 0.5)
}

// tickStep picks the ring spacing for a radial scale: 1, 2 or 5 times a
// power of ten, whichever keeps a readable ring count.
func tickStep(max float64) float64 {
	raw := max / 4
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw >= 5*mag:
		return 5 * mag
	case raw >= 2*mag:
		return 2 * mag
	default:
		return mag
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
