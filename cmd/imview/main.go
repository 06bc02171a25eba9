package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/junsooki/imview/internal/config"
	"github.com/junsooki/imview/internal/display"
	"github.com/junsooki/imview/internal/logging"
	"github.com/junsooki/imview/internal/viewer"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "imview: %v\n", err)
		os.Exit(2)
	}

	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "imview: log level: %v\n", err)
		os.Exit(2)
	}

	disp := display.NewEbitenDisplay(displayOptions(cfg))

	// Ebitengine RunGame must be on the main goroutine (macOS requirement).
	os.Exit(viewer.Run(cfg, os.Stdout, disp))
}

func displayOptions(cfg *config.Config) display.Options {
	opts := display.Options{Resizable: cfg.Window == config.WindowNormal}
	if cfg.Close == config.CloseWait {
		opts.Close = display.CloseOnKey
	}
	return opts
}
