package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Canvas geometry, in pixels. The map occupies the left mapSize square of the
// canvas and the right margin holds the caption. The working square is padded
// to mapPadSize before rotating: mapPadSize exceeds mapSize·√2, so the final
// center crop is covered by map pixels at every rotation angle and the corner
// fill never shows for a source map of at least mapPadSize on each side.
const (
	canvasWidth  = 550
	canvasHeight = 450
	mapSize      = 450
	mapPadSize   = 640
)

// mapFill is the color revealed where the rotated source does not cover the
// working square. One fill for every diagram in a run keeps the nine outputs
// comparable.
var mapFill = color.White

// PrepareMap loads the base map image and produces the mapSize-square,
// north-up-then-rotated backdrop shared by every diagram in a run. The source
// is center-cropped or padded to the working square, rotated angle degrees
// counter-clockwise about its center, and center-cropped again, so the canvas
// footprint is identical at every angle and the corners clip uniformly.
// Unreadable files and images smaller than mapSize in either dimension return
// an *AssetError.
func PrepareMap(path string, angle float64) (*image.NRGBA, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, &AssetError{Path: path, Err: err}
	}

	bounds := src.Bounds()
	if bounds.Dx() < mapSize || bounds.Dy() < mapSize {
		return nil, &AssetError{
			Path: path,
			Err: fmt.Errorf("image is %dx%d, need at least %dx%d",
				bounds.Dx(), bounds.Dy(), mapSize, mapSize),
		}
	}

	padded := centerFit(src, mapPadSize)
	rotated := imaging.Rotate(padded, NormalizeAngle(angle), mapFill)
	return imaging.CropCenter(rotated, mapSize, mapSize), nil
}

// centerFit crops the image to a centered size×size square, padding with
// mapFill where the source is smaller than requested.
func centerFit(src image.Image, size int) *image.NRGBA {
	cropped := imaging.CropCenter(src, size, size)
	if cropped.Bounds().Dx() == size && cropped.Bounds().Dy() == size {
		return cropped
	}
	return imaging.PasteCenter(imaging.New(size, size, mapFill), cropped)
}
