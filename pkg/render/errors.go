package render

import (
	"fmt"

	"github.com/chrissnell/windrose/pkg/windrose"
)

// AssetError reports a base map that could not be read or whose dimensions
// are unusable. It is fatal for the whole run: every diagram depends on the
// same prepared map.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("map asset: %v", e.Err)
	}
	return fmt.Sprintf("map asset %s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// RenderError reports a failure while producing or writing one diagram,
// carrying the period and metric so the failing diagram is identifiable
// without re-running.
type RenderError struct {
	Period windrose.Period
	Metric windrose.Metric
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s %s diagram: %v", e.Period, e.Metric, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
