package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chrissnell/windrose/internal/app"
	"github.com/chrissnell/windrose/internal/constants"
	"github.com/chrissnell/windrose/internal/log"
	"github.com/chrissnell/windrose/pkg/config"
)

func main() {
	defaults := config.Default()

	cfgFile := flag.String("config", "", "Path to YAML configuration file (optional)")
	windPath := flag.String("wind", defaults.WindPath, "Path to the hourly wind observation CSV")
	mapPath := flag.String("map", defaults.MapPath, "Path to the base map image")
	outDir := flag.String("out", defaults.OutputDir, "Directory for generated diagrams")
	angle := flag.Float64("angle", defaults.Angle, "Map rotation in degrees, counter-clockwise")
	workers := flag.Int("workers", defaults.Workers, "Concurrent diagram renders, 0 for unlimited")
	stats := flag.Bool("stats", defaults.Stats, "Also export per-sector statistics tables as CSV")
	unified := flag.Bool("unified-scale", defaults.UnifiedScale, "Share one radial scale per metric across all periods")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("windrose %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load configuration
	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Flags passed explicitly override the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wind":
			cfg.WindPath = *windPath
		case "map":
			cfg.MapPath = *mapPath
		case "out":
			cfg.OutputDir = *outDir
		case "angle":
			cfg.Angle = *angle
		case "workers":
			cfg.Workers = *workers
		case "stats":
			cfg.Stats = *stats
		case "unified-scale":
			cfg.UnifiedScale = *unified
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create and run the application
	application := app.New(cfg, log.GetSugaredLogger())
	if err := application.Run(ctx); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(cfgFile string) (config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	filename, _ := filepath.Abs(cfgFile)
	return config.Load(filename)
}
