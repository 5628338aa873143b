package recording

import "io"

// Backend is the interface that all export backends must implement.
// Backends receive drawing primitives and translate them to their output
// format (SVG elements, raster pixels, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accept Begin before any drawing call and End after the last one
//  3. Treat BeginGroup/EndGroup as properly nested
//  4. Produce identical output for identical call sequences
type Backend interface {
	// Begin initializes the backend for rendering at the given pixel
	// dimensions. This must be called before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering. After End is called, output methods
	// such as WriteTo can be used.
	End() error

	// BeginGroup opens a named group. Every following primitive up to the
	// matching EndGroup belongs to it. An empty id opens an anonymous group.
	BeginGroup(id string)

	// EndGroup closes the most recently opened group.
	EndGroup()

	// StrokeLine draws a straight line segment.
	StrokeLine(x1, y1, x2, y2 float64, stroke Stroke)

	// StrokeRect outlines an axis-aligned rectangle without filling it.
	StrokeRect(rect Rect, stroke Stroke)

	// DrawText draws text anchored at (x, y) according to the style.
	DrawText(s string, x, y float64, style TextStyle)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered document to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// CountingWriter returns a writer that forwards to w and a function
// reporting the number of bytes written so far. Backends use it to
// implement io.WriterTo on top of encoders that do not report sizes.
func CountingWriter(w io.Writer) (io.Writer, func() int64) {
	cw := &countingWriter{w: w}
	return cw, func() int64 { return cw.n }
}
