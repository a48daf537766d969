// Package app wires the generation pipeline together: load a year of
// observations, prepare the rotated base map, aggregate each period and
// render one diagram per period and metric.
package app

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/chrissnell/windrose/internal/loader"
	"github.com/chrissnell/windrose/internal/output"
	"github.com/chrissnell/windrose/pkg/config"
	"github.com/chrissnell/windrose/pkg/render"
	"github.com/chrissnell/windrose/pkg/windrose"
)

// App represents one generation pass over a station's observations.
type App struct {
	cfg    config.Config
	logger *zap.SugaredLogger
}

// New creates a new application instance.
func New(cfg config.Config, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run executes the pipeline and blocks until every diagram is written. The
// base map is prepared once and shared by all renders. Rendering fans out
// over a worker group; the first failure cancels the remaining work and is
// returned.
func (a *App) Run(ctx context.Context) error {
	opts := loader.Options{
		Encoding:        a.cfg.Input.Encoding,
		TimeColumn:      a.cfg.Input.TimeColumn,
		SpeedColumn:     a.cfg.Input.SpeedColumn,
		DirectionColumn: a.cfg.Input.DirectionColumn,
	}
	result, err := loader.Load(a.cfg.WindPath, opts)
	if err != nil {
		return fmt.Errorf("loading observations: %w", err)
	}
	a.logger.Infow("observations loaded",
		"path", a.cfg.WindPath,
		"count", len(result.Observations),
		"skipped", result.Skipped)

	angle := render.NormalizeAngle(a.cfg.Angle)
	baseMap, err := render.PrepareMap(a.cfg.MapPath, angle)
	if err != nil {
		return fmt.Errorf("preparing base map: %w", err)
	}
	a.logger.Debugw("base map prepared", "path", a.cfg.MapPath, "angle", angle)

	writer, err := output.NewWriter(a.cfg.OutputDir)
	if err != nil {
		return err
	}

	// Aggregate once per period; all three metrics read the same aggregate.
	var stats [len(windrose.Periods)]windrose.Statistics
	for i, p := range windrose.Periods {
		stats[i] = windrose.Aggregate(p.Filter(result.Observations))
		a.logger.Debugw("period aggregated",
			"period", p,
			"total", stats[i].Total,
			"calm", stats[i].CalmCount)
	}

	if a.cfg.Stats {
		for i, p := range windrose.Periods {
			path, err := writer.WriteStatistics(p, stats[i])
			if err != nil {
				return err
			}
			a.logger.Infow("statistics written", "path", path)
		}
	}

	scales := a.scaleMaxima(stats)

	g, ctx := errgroup.WithContext(ctx)
	if a.cfg.Workers > 0 {
		g.SetLimit(a.cfg.Workers)
	}
	for pi, p := range windrose.Periods {
		for _, m := range windrose.Metrics {
			spec := render.DiagramSpec{
				Period:         p,
				Metric:         m,
				Angle:          angle,
				ScaleMax:       scales[m],
				CalmPercentage: stats[pi].CalmPercentage(),
			}
			values := stats[pi].Values(m)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				img, err := render.Render(values, spec, baseMap)
				if err != nil {
					return err
				}
				path, err := writer.WriteDiagram(spec.Period, spec.Metric, img)
				if err != nil {
					return &render.RenderError{Period: spec.Period, Metric: spec.Metric, Err: err}
				}
				a.logger.Infow("diagram written", "path", path)
				return nil
			})
		}
	}
	return g.Wait()
}

// scaleMaxima returns the radial scale per metric shared by all periods
// when unified-scale is on, so equal values fill equal radii on every
// diagram of a metric. With unified-scale off the zeros let each diagram
// fit its own maximum.
func (a *App) scaleMaxima(stats [len(windrose.Periods)]windrose.Statistics) [len(windrose.Metrics)]float64 {
	var scales [len(windrose.Metrics)]float64
	if !a.cfg.UnifiedScale {
		return scales
	}
	for mi, m := range windrose.Metrics {
		for _, s := range stats {
			values := s.Values(m)
			scales[mi] = math.Max(scales[mi], floats.Max(values[:]))
		}
	}
	return scales
}
