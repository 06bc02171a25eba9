package display

import (
	"errors"

	"github.com/junsooki/imview/internal/raster"
)

// ErrEmptyBuffer is returned when asked to show a buffer with no pixels.
var ErrEmptyBuffer = errors.New("display: empty image buffer")

// Display renders a decoded image in a named window.
type Display interface {
	Show(title string, buf *raster.Buffer) error
}

// CloseMode controls when the window's loop ends.
type CloseMode int

const (
	// CloseAfterFirstFrame ends the loop once the image has been drawn.
	CloseAfterFirstFrame CloseMode = iota
	// CloseOnKey keeps the window until a key press or window close.
	CloseOnKey
)

// Options configure an EbitenDisplay.
type Options struct {
	Resizable bool
	Close     CloseMode
}
