package decoder

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/junsooki/imview/internal/raster"
)

func opaqueRGBA(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func writeFile(t *testing.T, name string, encode func(w io.Writer) error) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, encode(&b))
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))
	return path
}

func TestReadFilePNG(t *testing.T) {
	path := writeFile(t, "disabled_people.png", func(w io.Writer) error {
		return png.Encode(w, opaqueRGBA(100, 100))
	})

	buf, err := NewFileDecoder(DefaultMaxPixels).ReadFile(path)
	require.NoError(t, err)
	require.False(t, buf.Empty())
	require.Equal(t, 100, buf.Width())
	require.Equal(t, 100, buf.Height())
	require.Equal(t, 3, buf.Channels)
	require.Equal(t, 8, buf.BitDepth)
	require.Equal(t, "png", buf.Format)
	require.Equal(t, color.RGBA{R: 10, G: 20, B: 0x80, A: 0xff}, buf.Pix.RGBAAt(10, 20))
}

func TestReadFileFormats(t *testing.T) {
	src := opaqueRGBA(16, 8)
	cases := []struct {
		name   string
		format string
		encode func(w io.Writer) error
	}{
		{"a.jpg", "jpeg", func(w io.Writer) error { return jpeg.Encode(w, src, &jpeg.Options{Quality: 90}) }},
		{"a.bmp", "bmp", func(w io.Writer) error { return bmp.Encode(w, src) }},
		{"a.tiff", "tiff", func(w io.Writer) error { return tiff.Encode(w, src, nil) }},
		{"a.png", "png", func(w io.Writer) error { return png.Encode(w, image.NewGray16(image.Rect(0, 0, 16, 8))) }},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			buf, err := NewFileDecoder(0).ReadFile(writeFile(t, tc.name, tc.encode))
			require.NoError(t, err)
			require.Equal(t, tc.format, buf.Format)
			require.Equal(t, 16, buf.Width())
			require.Equal(t, 8, buf.Height())
		})
	}
}

func TestReadFileGray16(t *testing.T) {
	path := writeFile(t, "gray.png", func(w io.Writer) error {
		return png.Encode(w, image.NewGray16(image.Rect(0, 0, 4, 4)))
	})

	buf, err := NewFileDecoder(0).ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, buf.Channels)
	require.Equal(t, 16, buf.BitDepth)
}

func TestReadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disabled_people.png")

	buf, err := NewFileDecoder(DefaultMaxPixels).ReadFile(path)
	require.Same(t, raster.Empty, buf)
	require.True(t, errors.Is(err, ErrDecode))
	require.True(t, errors.Is(err, os.ErrNotExist))

	var derr *Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, path, derr.Path)
}

func TestReadFileNotAnImage(t *testing.T) {
	path := writeFile(t, "disabled_people.png", func(w io.Writer) error {
		_, err := io.WriteString(w, "this is plain text, not a picture")
		return err
	})

	buf, err := NewFileDecoder(DefaultMaxPixels).ReadFile(path)
	require.True(t, buf.Empty())
	require.True(t, errors.Is(err, ErrDecode))
	require.True(t, errors.Is(err, image.ErrFormat))
}

func TestReadFileTruncated(t *testing.T) {
	var full bytes.Buffer
	require.NoError(t, png.Encode(&full, opaqueRGBA(32, 32)))
	path := writeFile(t, "cut.png", func(w io.Writer) error {
		_, err := w.Write(full.Bytes()[:full.Len()/2])
		return err
	})

	buf, err := NewFileDecoder(0).ReadFile(path)
	require.True(t, buf.Empty())
	require.ErrorIs(t, err, ErrDecode)
}

func TestReadFileDirectory(t *testing.T) {
	buf, err := NewFileDecoder(0).ReadFile(t.TempDir())
	require.True(t, buf.Empty())
	require.ErrorIs(t, err, ErrDecode)
}

func TestReadFileTooLarge(t *testing.T) {
	path := writeFile(t, "big.png", func(w io.Writer) error {
		return png.Encode(w, opaqueRGBA(20, 20))
	})

	buf, err := NewFileDecoder(399).ReadFile(path)
	require.True(t, buf.Empty())
	require.ErrorIs(t, err, ErrDecode)
	require.ErrorIs(t, err, ErrTooLarge)

	buf, err = NewFileDecoder(400).ReadFile(path)
	require.NoError(t, err)
	require.False(t, buf.Empty())
}

func TestReadIsErrorFree(t *testing.T) {
	dec := NewFileDecoder(DefaultMaxPixels)
	require.True(t, dec.Read(filepath.Join(t.TempDir(), "nope.png")).Empty())

	path := writeFile(t, "ok.png", func(w io.Writer) error {
		return png.Encode(w, opaqueRGBA(3, 2))
	})
	require.False(t, dec.Read(path).Empty())
}

func TestDecodeStream(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, opaqueRGBA(5, 6)))

	var dec Decoder = NewFileDecoder(0)
	buf, err := dec.Decode(&b)
	require.NoError(t, err)
	require.Equal(t, 5, buf.Width())

	_, err = dec.Decode(bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrDecode)
	require.Equal(t, "decode: decode config: image: unknown format", err.Error())
}
