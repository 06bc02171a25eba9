package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Window modes.
const (
	WindowAutoSize = "autosize"
	WindowNormal   = "normal"
)

// Close modes.
const (
	CloseOnce = "once"
	CloseWait = "wait"
)

// Config holds all runtime configuration.
type Config struct {
	ImagePath string `env:"IMVIEW_IMAGE" envDefault:"disabled_people.png"`
	Title     string `env:"IMVIEW_TITLE" envDefault:"Disabled People Program"`
	Window    string `env:"IMVIEW_WINDOW" envDefault:"autosize"`
	Close     string `env:"IMVIEW_CLOSE" envDefault:"once"`
	MaxPixels int    `env:"IMVIEW_MAX_PIXELS" envDefault:"100000000"`
	LogLevel  string `env:"IMVIEW_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (if present) and the process environment, then applies
// command-line flags on top.
func Load(args []string, stderr io.Writer) (*Config, error) {
	// Missing .env is fine.
	_ = godotenv.Load()
	return Parse(args, env.Options{}, stderr)
}

// Parse builds a Config from the environment described by opts and then
// from args. Flags win over environment values.
func Parse(args []string, opts env.Options, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("imview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.ImagePath, "image", cfg.ImagePath, "Image file to open")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	fs.StringVar(&cfg.Window, "window", cfg.Window, "Window mode: autosize or normal (resizable)")
	fs.StringVar(&cfg.Close, "close", cfg.Close, "Close mode: once (exit after first frame) or wait (until a key is pressed)")
	fs.IntVar(&cfg.MaxPixels, "max-pixels", cfg.MaxPixels, "Reject images with more pixels than this (0 = no limit)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Window {
	case WindowAutoSize, WindowNormal:
	default:
		return fmt.Errorf("window mode must be %q or %q, got %q", WindowAutoSize, WindowNormal, c.Window)
	}
	switch c.Close {
	case CloseOnce, CloseWait:
	default:
		return fmt.Errorf("close mode must be %q or %q, got %q", CloseOnce, CloseWait, c.Close)
	}
	if c.ImagePath == "" {
		return fmt.Errorf("image path is empty")
	}
	return nil
}
