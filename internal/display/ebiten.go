package display

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/junsooki/imview/internal/raster"
)

type window struct {
	title     string
	width     int
	height    int
	resizable bool
}

// runWindow configures the OS window and runs the game loop. Must be called
// from the main goroutine.
func runWindow(w window, g ebiten.Game) error {
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	if w.resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	// The single frame of a once-mode run must be drawn even without focus.
	ebiten.SetRunnableOnUnfocused(true)
	return ebiten.RunGame(g)
}

// EbitenDisplay shows an image in an Ebitengine window.
type EbitenDisplay struct {
	mu          sync.Mutex
	frame       *image.RGBA
	ebitenImage *ebiten.Image
	uploaded    *image.RGBA
	drawn       bool

	opts       Options
	keyPressed func() bool
	run        func(w window, g ebiten.Game) error
}

// NewEbitenDisplay creates an Ebitengine-based display.
func NewEbitenDisplay(opts Options) *EbitenDisplay {
	return &EbitenDisplay{
		opts:       opts,
		keyPressed: anyKeyJustPressed,
		run:        runWindow,
	}
}

// Show opens a window titled title, sized to buf, and renders buf into it.
// It returns when the loop ends according to the close mode.
func (d *EbitenDisplay) Show(title string, buf *raster.Buffer) error {
	if buf.Empty() {
		return ErrEmptyBuffer
	}
	d.SetFrame(buf.Pix)
	return d.run(window{
		title:     title,
		width:     buf.Width(),
		height:    buf.Height(),
		resizable: d.opts.Resizable,
	}, d)
}

// SetFrame replaces the displayed image. Safe to call from any goroutine.
func (d *EbitenDisplay) SetFrame(img *image.RGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = img
	d.drawn = false
}

// --- ebiten.Game interface ---

func (d *EbitenDisplay) Update() error {
	d.mu.Lock()
	drawn := d.drawn
	d.mu.Unlock()

	if !drawn {
		return nil
	}
	switch d.opts.Close {
	case CloseAfterFirstFrame:
		return ebiten.Termination
	case CloseOnKey:
		if d.keyPressed() {
			return ebiten.Termination
		}
	}
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	frame := d.frame
	d.mu.Unlock()

	if frame == nil {
		return
	}

	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	if d.ebitenImage == nil ||
		d.ebitenImage.Bounds().Dx() != fw ||
		d.ebitenImage.Bounds().Dy() != fh {
		d.ebitenImage = ebiten.NewImage(fw, fh)
		d.uploaded = nil
	}
	if d.uploaded != frame {
		d.ebitenImage.WritePixels(frame.Pix)
		d.uploaded = frame
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale, offsetX, offsetY := aspectFitTransform(float64(sw), float64(sh), float64(fw), float64(fh))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(d.ebitenImage, op)

	d.markDrawn(frame)
}

// Layout keeps the logical screen at image size unless the window is
// resizable, in which case the image is letterboxed into the window.
func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	if d.opts.Resizable {
		return outsideWidth, outsideHeight
	}
	d.mu.Lock()
	frame := d.frame
	d.mu.Unlock()
	if frame == nil {
		return outsideWidth, outsideHeight
	}
	return frame.Bounds().Dx(), frame.Bounds().Dy()
}

// markDrawn records that frame reached the screen, unless it was replaced
// while drawing.
func (d *EbitenDisplay) markDrawn(frame *image.RGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.frame == frame {
		d.drawn = true
	}
}

func anyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

// aspectFitTransform returns scale and offsets to fit frame into view with letterboxing.
func aspectFitTransform(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}
