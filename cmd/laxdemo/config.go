package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix prefixes the environment variables read by Load.
const envPrefix = "LAXDEMO"

// Config holds the demo settings. Environment variables set the
// defaults and command line flags override them.
type Config struct {
	Backend  string  `envconfig:"BACKEND" default:"raster"`
	Width    int     `envconfig:"WIDTH" default:"800"`
	Height   int     `envconfig:"HEIGHT" default:"600"`
	Output   string  `envconfig:"OUTPUT" default:"laxdemo.png"`
	Rotate   float64 `envconfig:"ROTATE" default:"0"`
	Zoom     float64 `envconfig:"ZOOM" default:"1"`
	FontSize float64 `envconfig:"FONT_SIZE" default:"14"`
	Units    string  `envconfig:"UNITS" default:"cm"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"info"`
	List     bool    `ignored:"true"`
}

// Load reads the environment and then parses args.
func Load(args []string, stderr io.Writer) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	fs := flag.NewFlagSet("laxdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "backend to draw with")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "surface width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "surface height in pixels")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file")
	fs.Float64Var(&cfg.Rotate, "rotate", cfg.Rotate, "rotation of the view in degrees")
	fs.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "zoom factor about the centre")
	fs.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "text size in pixels")
	fs.StringVar(&cfg.Units, "units", cfg.Units, "unit of the scale bar")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.List, "list", false, "list the available backends and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Zoom <= 0 {
		return nil, fmt.Errorf("zoom must be positive, got %g", cfg.Zoom)
	}
	return &cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
