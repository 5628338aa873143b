// Package svg provides an SVG backend for the recording system.
//
// The backend builds an element tree while a recording is played back and
// serializes it in WriteTo. Attribute order is fixed and numbers are
// printed in their shortest exact form, so identical recordings always
// produce byte-identical documents.
//
// # Example
//
//	import _ "github.com/gogpu/protoplot/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	_ = rec.Playback(backend)
//	_, _ = backend.(recording.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/protoplot/recording"
)

// Namespace is the SVG XML namespace written on the root element.
const Namespace = "http://www.w3.org/2000/svg"

// ErrNotFinished is returned by WriteTo before End has been called.
var ErrNotFinished = errors.New("svg: document not finished")

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	}, ".svg")
}

// Backend renders recordings to an SVG document.
type Backend struct {
	root     *element
	stack    []*element
	finished bool
	indent   string
}

// Ensure Backend implements the required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithIndent sets the indentation used for nested elements.
// An empty string writes the document on a single line.
func WithIndent(indent string) Option {
	return func(b *Backend) {
		b.indent = indent
	}
}

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{indent: "  "}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// element is one node of the document tree.
type element struct {
	name     string
	attrs    []xml.Attr
	text     string
	children []*element
}

func (e *element) attr(name, value string) *element {
	e.attrs = append(e.attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return e
}

// Begin starts a new document of the given pixel size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", width, height)
	}
	w, h := strconv.Itoa(width), strconv.Itoa(height)
	b.root = (&element{name: "svg"}).
		attr("xmlns", Namespace).
		attr("width", w).
		attr("height", h).
		attr("viewBox", "0 0 "+w+" "+h)
	b.stack = []*element{b.root}
	b.finished = false
	return nil
}

// End finalizes the document.
func (b *Backend) End() error {
	if b.root == nil {
		return errors.New("svg: End called before Begin")
	}
	if len(b.stack) != 1 {
		return fmt.Errorf("svg: %d groups left open", len(b.stack)-1)
	}
	b.finished = true
	return nil
}

// BeginGroup opens a <g> element.
func (b *Backend) BeginGroup(id string) {
	g := &element{name: "g"}
	if id != "" {
		g.attr("id", id)
	}
	b.append(g)
	b.stack = append(b.stack, g)
}

// EndGroup closes the innermost <g> element.
func (b *Backend) EndGroup() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// StrokeLine appends a <line> element.
func (b *Backend) StrokeLine(x1, y1, x2, y2 float64, stroke recording.Stroke) {
	b.append((&element{name: "line"}).
		attr("x1", num(x1)).
		attr("x2", num(x2)).
		attr("y1", num(y1)).
		attr("y2", num(y2)).
		attr("style", lineStyle(stroke)))
}

// StrokeRect appends an unfilled <rect> element.
func (b *Backend) StrokeRect(rect recording.Rect, stroke recording.Stroke) {
	b.append((&element{name: "rect"}).
		attr("x", num(rect.MinX)).
		attr("y", num(rect.MinY)).
		attr("width", num(rect.Width())).
		attr("height", num(rect.Height())).
		attr("style", "fill:none;"+rectStyle(stroke)))
}

// DrawText appends a <text> element.
func (b *Backend) DrawText(s string, x, y float64, style recording.TextStyle) {
	t := (&element{name: "text", text: s}).
		attr("x", num(x)).
		attr("y", num(y)).
		attr("text-anchor", style.Anchor.String()).
		attr("dy", num(style.Shift)).
		attr("font-size", num(style.Size))
	if style.Color != (gg.RGBA{}) && style.Color != gg.Black {
		t.attr("fill", recording.Hex(style.Color))
	}
	b.append(t)
}

// WriteTo serializes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.finished {
		return 0, ErrNotFinished
	}

	cw, written := recording.CountingWriter(w)
	enc := xml.NewEncoder(cw)
	enc.Indent("", b.indent)
	if err := encode(enc, b.root); err != nil {
		return written(), fmt.Errorf("svg: encode: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return written(), fmt.Errorf("svg: encode: %w", err)
	}
	if _, err := io.WriteString(cw, "\n"); err != nil {
		return written(), err
	}
	return written(), nil
}

// String returns the document as a string, or "" if it is not finished.
func (b *Backend) String() string {
	var sb strings.Builder
	if _, err := b.WriteTo(&sb); err != nil {
		return ""
	}
	return sb.String()
}

func (b *Backend) append(e *element) {
	if len(b.stack) == 0 {
		return
	}
	parent := b.stack[len(b.stack)-1]
	parent.children = append(parent.children, e)
}

func encode(enc *xml.Encoder, e *element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}, Attr: e.attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, child := range e.children {
		if err := encode(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func lineStyle(s recording.Stroke) string {
	return "stroke:" + recording.Hex(s.Color) +
		";stroke-opacity:" + num(s.Opacity) +
		";stroke-width:" + num(s.EffectiveWidth())
}

func rectStyle(s recording.Stroke) string {
	style := "stroke:" + recording.Hex(s.Color) + ";stroke-opacity:" + num(s.Opacity)
	if s.Width > 0 {
		style += ";stroke-width:" + num(s.Width)
	}
	return style
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
