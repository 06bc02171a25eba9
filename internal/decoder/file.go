package decoder

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/junsooki/imview/internal/raster"
)

// DefaultMaxPixels bounds width*height of images accepted by NewFileDecoder.
const DefaultMaxPixels = 100_000_000

// FileDecoder decodes any registered image format (png, jpeg, gif, bmp,
// tiff, webp) into a raster buffer.
type FileDecoder struct {
	maxPixels int
}

// NewFileDecoder creates a decoder rejecting images larger than maxPixels.
// A non-positive maxPixels disables the check.
func NewFileDecoder(maxPixels int) *FileDecoder {
	return &FileDecoder{maxPixels: maxPixels}
}

// Read decodes the file at path. Failure is reported only through the
// returned buffer being empty.
func (d *FileDecoder) Read(path string) *raster.Buffer {
	buf, _ := d.ReadFile(path)
	return buf
}

// ReadFile decodes the file at path. On failure it returns raster.Empty and
// an *Error.
func (d *FileDecoder) ReadFile(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return raster.Empty, &Error{Path: path, Err: errors.Wrap(err, "open")}
	}
	defer f.Close()

	buf, err := d.decode(f)
	if err != nil {
		return raster.Empty, &Error{Path: path, Err: err}
	}
	return buf, nil
}

func (d *FileDecoder) Decode(r io.Reader) (*raster.Buffer, error) {
	buf, err := d.decode(r)
	if err != nil {
		return raster.Empty, &Error{Err: err}
	}
	return buf, nil
}

func (d *FileDecoder) decode(r io.Reader) (*raster.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if d.maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(d.maxPixels) {
		return nil, errors.Wrapf(ErrTooLarge, "%dx%d", cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	buf := raster.FromImage(img, format)
	if buf.Empty() {
		return nil, errors.Errorf("%s image has no pixels", format)
	}
	return buf, nil
}
