package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/floats"

	"github.com/chrissnell/windrose/pkg/compass"
	"github.com/chrissnell/windrose/pkg/windrose"
)

// DiagramSpec configures one diagram. The same Angle must be used for the
// prepared base map and for every spec in a run, so all nine composites share
// one orientation.
type DiagramSpec struct {
	Period windrose.Period
	Metric windrose.Metric
	// Angle is the scene rotation in degrees counter-clockwise.
	Angle float64
	// ScaleMax fixes the radial scale maximum, letting several diagrams
	// share one scale. Zero auto-fits to the largest of the 16 values.
	ScaleMax float64
	// CalmPercentage is the period's share of calm hours, shown in the
	// caption.
	CalmPercentage float64
}

// Render draws the 16 sector values, in clockwise-from-north order, as a
// wind rose composited over the prepared base map and returns the finished
// canvas. The base map must be the square image produced by PrepareMap for
// spec.Angle; other dimensions return an *AssetError. An all-zero input
// renders a grid-only diagram rather than failing.
func Render(values [compass.NumSectors]float64, spec DiagramSpec, baseMap image.Image) (image.Image, error) {
	if b := baseMap.Bounds(); b.Dx() != mapSize || b.Dy() != mapSize {
		return nil, &AssetError{
			Err: fmt.Errorf("prepared map is %dx%d, want %dx%d", b.Dx(), b.Dy(), mapSize, mapSize),
		}
	}

	fs, err := loadFonts()
	if err != nil {
		return nil, &RenderError{Period: spec.Period, Metric: spec.Metric, Err: err}
	}

	scale := spec.ScaleMax
	if scale <= 0 {
		scale = floats.Max(values[:])
	}
	if scale <= 0 {
		scale = 1 // unit scale keeps an all-zero diagram renderable
	}

	frame := imaging.New(canvasWidth, canvasHeight, color.White)
	frame = imaging.Paste(frame, baseMap, image.Pt(0, 0))

	dc := gg.NewContext(canvasWidth, canvasHeight)
	drawRose(dc, values, spec, scale, fs)

	return imaging.Overlay(frame, dc.Image(), image.Pt(0, 0), 1.0), nil
}
