package viewer

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/junsooki/imview/internal/config"
	"github.com/junsooki/imview/internal/decoder"
	"github.com/junsooki/imview/internal/display"
)

// Diagnostic is printed to stdout when the image cannot be decoded.
const Diagnostic = "Could not open or find the image"

// Process exit codes.
const (
	ExitOK             = 0
	ExitDisplayFailure = 1
	// ExitDecodeFailure is the status a shell sees for a return of -1.
	ExitDecodeFailure = 255
)

// Run decodes cfg.ImagePath and shows it with disp. It returns the process
// exit code; only the decode diagnostic is written to stdout.
func Run(cfg *config.Config, stdout io.Writer, disp display.Display) int {
	dec := decoder.NewFileDecoder(cfg.MaxPixels)

	buf, err := dec.ReadFile(cfg.ImagePath)
	if buf.Empty() {
		log.Debug().Err(err).Str("path", cfg.ImagePath).Msg("decode failed")
		fmt.Fprintln(stdout, Diagnostic)
		return ExitDecodeFailure
	}

	log.Info().
		Str("path", cfg.ImagePath).
		Str("format", buf.Format).
		Int("width", buf.Width()).
		Int("height", buf.Height()).
		Int("channels", buf.Channels).
		Int("depth", buf.BitDepth).
		Msg("image decoded")

	if err := disp.Show(cfg.Title, buf); err != nil {
		log.Error().Err(err).Str("title", cfg.Title).Msg("display failed")
		return ExitDisplayFailure
	}
	return ExitOK
}
