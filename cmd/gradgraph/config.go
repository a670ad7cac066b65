package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/born-ml/gradgraph/export"
)

// config holds every flag of the CLI.
type config struct {
	verbose   bool
	logFormat string

	dotPath      string
	svgPath      string
	pngPath      string
	snapshotPath string
	timeout      time.Duration

	format string
	output string
}

func defaultConfig() *config {
	return &config{
		logFormat: "text",
		timeout:   30 * time.Second,
		format:    string(export.FormatSVG),
	}
}

func (c *config) validate() error {
	switch c.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q (want text or json)", c.logFormat)
	}
	if c.timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.timeout)
	}
	if _, err := export.ParseFormat(c.format); err != nil {
		return err
	}
	return nil
}

// logger builds the process logger. Library packages never log; everything
// observable goes through this handler.
func (c *config) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
