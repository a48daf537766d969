// Package output writes finished diagrams and statistics tables into the
// run's output directory.
package output

import (
	"encoding/csv"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/chrissnell/windrose/pkg/compass"
	"github.com/chrissnell/windrose/pkg/windrose"
)

// Writer puts every artifact of one run into a single directory, one file
// handle per artifact.
type Writer struct {
	dir string
}

// NewWriter creates the output directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// DiagramPath returns where the diagram for a period and metric lands:
// <metric-slug>_<period>.png, e.g. wind_mean_summer.png.
func (w *Writer) DiagramPath(p windrose.Period, m windrose.Metric) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%s.png", m.Slug(), p))
}

// WriteDiagram encodes one rendered diagram as PNG and returns its path.
func (w *Writer) WriteDiagram(p windrose.Period, m windrose.Metric, img image.Image) (string, error) {
	path := w.DiagramPath(p, m)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}

// StatisticsPath returns where the per-sector table for a period lands.
func (w *Writer) StatisticsPath(p windrose.Period) string {
	return filepath.Join(w.dir, fmt.Sprintf("statistics_%s.csv", p))
}

// WriteStatistics exports one period's aggregate as CSV: one row per sector
// with count, percentage, mean and max speed, then a calm row. The calm row
// has no speeds; calm hours carry none.
func (w *Writer) WriteStatistics(p windrose.Period, stats windrose.Statistics) (string, error) {
	path := w.StatisticsPath(p)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"sector", "count", "percentage", "mean_speed_ms", "max_speed_ms"}); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	percentages := stats.Values(windrose.Percentage)
	for i, sec := range stats.Sectors {
		record := []string{
			compass.Sector(i).String(),
			strconv.Itoa(sec.Count),
			fmt.Sprintf("%.2f", percentages[i]),
			fmt.Sprintf("%.2f", sec.MeanSpeed),
			fmt.Sprintf("%.2f", sec.MaxSpeed),
		}
		if err := cw.Write(record); err != nil {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
	}

	calm := []string{
		compass.Calm.String(),
		strconv.Itoa(stats.CalmCount),
		fmt.Sprintf("%.2f", stats.CalmPercentage()),
		"",
		"",
	}
	if err := cw.Write(calm); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
