// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/txline/config"
	"github.com/katalvlaran/txline/report"
	"github.com/katalvlaran/txline/sweep"
)

// App runs one sweep described by a config file (or the default) and
// writes the report.
type App struct {
	ConfigPath string
	Output     string
	Format     string
}

// New returns an App; empty arguments keep the config (or default) values.
func New(configPath, output, format string) *App {
	return &App{
		ConfigPath: configPath,
		Output:     output,
		Format:     format,
	}
}

// Run loads the config, evaluates the sweep and writes the report.
func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"config": a.ConfigPath,
		"output": cfg.Output.Path,
		"format": cfg.Output.Format,
		"start":  cfg.Sweep.Start,
		"stop":   cfg.Sweep.Stop,
		"points": cfg.Sweep.Points,
		"scale":  cfg.Sweep.Scale,
		"lines":  len(cfg.Lines),
	}).Debug("App started")

	lines, err := cfg.BuildLines()
	if err != nil {
		return fmt.Errorf("failed to build lines: %w", err)
	}
	for _, l := range lines {
		log.WithFields(log.Fields{
			"name":       l.Name,
			"kind":       l.Line.Kind(),
			"metal":      l.Line.Metal(),
			"dielectric": l.Line.Dielectric(),
			"L":          l.Line.Inductance(),
			"C":          l.Line.Capacitance(),
		}).Debug("Line built")
	}

	freqs, err := cfg.Sweep.Grid()
	if err != nil {
		return fmt.Errorf("failed to build frequency grid: %w", err)
	}
	unit, err := cfg.Output.Unit()
	if err != nil {
		return fmt.Errorf("failed to parse length unit: %w", err)
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("failed to parse format: %w", err)
	}

	sweepTime := time.Now()
	series, err := sweep.Run(ctx, lines, freqs)
	if err != nil {
		return fmt.Errorf("failed to run sweep: %w", err)
	}
	log.WithFields(log.Fields{
		"time":   time.Since(sweepTime),
		"series": len(series),
		"points": len(freqs),
	}).Info("Sweep evaluated")

	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := report.Write(f, format, series, report.Options{Title: cfg.Output.Title, Unit: unit}); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	log.WithField("path", cfg.Output.Path).Info("Report saved")

	return nil
}

// loadConfig reads the config file, or the default sweep, and applies
// command-line overrides.
func (a *App) loadConfig() (*config.File, error) {
	cfg := config.Default()
	if a.ConfigPath != "" {
		var err error
		cfg, err = config.Load(a.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if a.Output != "" {
		cfg.Output.Path = a.Output
	}
	if a.Format != "" {
		cfg.Output.Format = a.Format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
