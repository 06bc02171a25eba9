package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer is a decoded image. It is either empty or fully populated.
type Buffer struct {
	Pix      *image.RGBA
	Channels int
	BitDepth int
	Format   string
}

// Empty is the buffer returned when decoding fails.
var Empty = &Buffer{}

// FromImage converts img to RGBA and records the channel layout of the source.
func FromImage(img image.Image, format string) *Buffer {
	if img == nil || img.Bounds().Empty() {
		return Empty
	}
	channels, depth := Describe(img)
	return &Buffer{
		Pix:      toRGBA(img),
		Channels: channels,
		BitDepth: depth,
		Format:   format,
	}
}

// Empty reports whether the buffer carries no pixels.
func (b *Buffer) Empty() bool {
	return b == nil || b.Pix == nil || b.Pix.Rect.Empty()
}

func (b *Buffer) Bounds() image.Rectangle {
	if b.Empty() {
		return image.Rectangle{}
	}
	return b.Pix.Rect
}

func (b *Buffer) Width() int  { return b.Bounds().Dx() }
func (b *Buffer) Height() int { return b.Bounds().Dy() }

// Describe returns the number of channels and bits per channel of img's
// native pixel layout.
func Describe(img image.Image) (channels, depth int) {
	switch m := img.(type) {
	case *image.Gray, *image.Alpha:
		return 1, 8
	case *image.Gray16, *image.Alpha16:
		return 1, 16
	case *image.YCbCr:
		return 3, 8
	case *image.CMYK:
		return 4, 8
	case *image.RGBA:
		return withAlpha(m.Opaque()), 8
	case *image.NRGBA:
		return withAlpha(m.Opaque()), 8
	case *image.RGBA64:
		return withAlpha(m.Opaque()), 16
	case *image.NRGBA64:
		return withAlpha(m.Opaque()), 16
	case *image.Paletted:
		return withAlpha(opaquePalette(m.Palette)), 8
	}
	return 4, 8
}

func withAlpha(opaque bool) int {
	if opaque {
		return 3
	}
	return 4
}

func opaquePalette(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return false
		}
	}
	return true
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	// Pix must be tightly packed from the origin to be uploaded as-is.
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}
