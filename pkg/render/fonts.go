package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Diagrams use the Go fonts compiled into the binary, so no font assets need
// to be installed alongside the tool.
type fontSet struct {
	label    font.Face // sector labels
	cardinal font.Face // N, E, S, W sector labels
	tick     font.Face // ring value labels
	title    font.Face // caption heading
	caption  font.Face // caption body
}

var (
	fontsOnce   sync.Once
	fontsErr    error
	fontRegular *sfnt.Font
	fontBold    *sfnt.Font
)

// loadFonts returns the faces for one diagram. The font files are parsed
// once and shared, but a font.Face buffers glyph state between calls and is
// not safe for concurrent use, so every call builds a fresh set for the
// caller to own.
func loadFonts() (fontSet, error) {
	fontsOnce.Do(func() {
		fontRegular, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parsing regular font: %w", fontsErr)
			return
		}
		fontBold, fontsErr = opentype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parsing bold font: %w", fontsErr)
		}
	})
	if fontsErr != nil {
		return fontSet{}, fontsErr
	}

	var err error
	face := func(f *sfnt.Font, size float64) font.Face {
		if err != nil {
			return nil
		}
		ff, ferr := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if ferr != nil {
			err = fmt.Errorf("building %gpt face: %w", size, ferr)
		}
		return ff
	}

	fs := fontSet{
		label:    face(fontRegular, 11),
		cardinal: face(fontBold, 12),
		tick:     face(fontRegular, 10),
		title:    face(fontBold, 14),
		caption:  face(fontRegular, 12),
	}
	if err != nil {
		return fontSet{}, err
	}
	return fs, nil
}
