package decoder

import (
	"io"

	"github.com/junsooki/imview/internal/raster"
)

// Decoder decodes an encoded image stream into a raster buffer.
type Decoder interface {
	Decode(r io.Reader) (*raster.Buffer, error)
}
