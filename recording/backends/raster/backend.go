// Package raster provides a PNG backend for the recording system.
// It renders recordings to pixel images using gg.Context.
//
// Labels are drawn with the Go Regular font shipped in
// golang.org/x/image/font/gofont, so output does not depend on fonts
// installed on the host.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/protoplot/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("png")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.WriteTo(w)
//	img := backend.Image()
package raster

import (
	"errors"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/protoplot"
	"github.com/gogpu/protoplot/recording"
)

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend()
	}, ".png")
}

// goRegular parses the embedded Go Regular font once per process.
var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Backend renders recordings to a pixel image using gg.Context.
// It implements recording.Backend and recording.WriterBackend.
type Backend struct {
	ctx        *gg.Context
	width      int
	height     int
	background gg.RGBA
	faces      map[float64]text.Face
	depth      int
	err        error
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ io.Closer               = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground sets the color the canvas is cleared to. Default white.
func WithBackground(c gg.RGBA) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{background: gg.White}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin initializes the backend for rendering at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("raster: canvas size must be positive")
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.ctx.ClearWithColor(b.background)
	b.faces = make(map[float64]text.Face)
	b.depth = 0
	b.err = nil
	return nil
}

// End finalizes the rendering and reports the first drawing error, if any.
func (b *Backend) End() error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	protoplot.Logger().Debug("raster: image finished", "width", b.width, "height", b.height)
	return b.err
}

// BeginGroup tracks nesting only; pixels carry no grouping.
func (b *Backend) BeginGroup(string) {
	b.depth++
}

// EndGroup closes the innermost group.
func (b *Backend) EndGroup() {
	if b.depth > 0 {
		b.depth--
	}
}

// StrokeLine strokes a line segment.
func (b *Backend) StrokeLine(x1, y1, x2, y2 float64, stroke recording.Stroke) {
	b.applyStroke(stroke)
	b.ctx.DrawLine(x1, y1, x2, y2)
	b.fail(b.ctx.Stroke())
}

// StrokeRect outlines a rectangle.
func (b *Backend) StrokeRect(rect recording.Rect, stroke recording.Stroke) {
	b.applyStroke(stroke)
	b.ctx.DrawRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	b.fail(b.ctx.Stroke())
}

// DrawText draws a label. The style's Shift moves the baseline below y,
// matching the SVG dy attribute.
func (b *Backend) DrawText(s string, x, y float64, style recording.TextStyle) {
	face, err := b.face(style.Size)
	if err != nil {
		b.fail(err)
		return
	}
	c := style.Color
	if c == (gg.RGBA{}) {
		c = gg.Black
	}
	b.ctx.SetFont(face)
	b.ctx.SetRGBA(c.R, c.G, c.B, 1)
	b.ctx.DrawStringAnchored(s, x, y+style.Shift, style.Anchor.Fraction(), 0)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, ErrNotStarted
	}
	cw, written := recording.CountingWriter(w)
	err := b.ctx.EncodePNG(cw)
	return written(), err
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// Close releases the drawing context.
func (b *Backend) Close() error {
	if b.ctx == nil {
		return nil
	}
	err := b.ctx.Close()
	b.ctx = nil
	return err
}

func (b *Backend) applyStroke(s recording.Stroke) {
	b.ctx.SetRGBA(s.Color.R, s.Color.G, s.Color.B, s.Opacity)
	b.ctx.SetLineWidth(s.EffectiveWidth())
}

func (b *Backend) face(size float64) (text.Face, error) {
	if f, ok := b.faces[size]; ok {
		return f, nil
	}
	source, err := goRegular()
	if err != nil {
		return nil, err
	}
	f := source.Face(size)
	b.faces[size] = f
	return f, nil
}

// fail records the first error seen while drawing.
func (b *Backend) fail(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}
