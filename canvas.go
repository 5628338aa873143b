package protoplot

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/protoplot/recording"
)

// TickKind is the gradation of a ruler tick.
type TickKind uint8

const (
	// TickMinor marks columns that are not a multiple of either interval.
	TickMinor TickKind = iota
	// TickMedium marks multiples of the medium interval.
	TickMedium
	// TickMajor marks multiples of the large interval.
	TickMajor
)

// String returns "minor", "medium" or "major".
func (k TickKind) String() string {
	switch k {
	case TickMajor:
		return "major"
	case TickMedium:
		return "medium"
	default:
		return "minor"
	}
}

// tickKind classifies bit column i.
func tickKind(i, large, medium int) TickKind {
	switch {
	case i%large == 0:
		return TickMajor
	case i%medium == 0:
		return TickMedium
	default:
		return TickMinor
	}
}

// Tick is one ruler mark. It is anchored at the row-0 boundary (Bottom)
// and extends upward into the ruler band.
type Tick struct {
	Column int
	Kind   TickKind
	X      float64
	Top    float64
	Bottom float64
}

// Height returns the tick length in pixels.
func (t Tick) Height() float64 {
	return t.Bottom - t.Top
}

// MaxCanvasSize bounds both sides of a diagram, in pixels and in grid
// units. Plan rejects larger diagrams with ErrInvalidDimension.
const MaxCanvasSize = 1 << 16

// FieldBox is a placed field in pixel space.
type FieldBox struct {
	Placement
	// Rect is the field outline.
	Rect recording.Rect
	// LabelX and LabelY are the label anchor, the center of Rect.
	LabelX, LabelY float64
	// Hints holds the y coordinate of every interior row boundary.
	// It is empty for single-row fields.
	Hints []float64
}

// Canvas is the pixel-space plan of a diagram.
type Canvas struct {
	// Width and Height are the document size in pixels.
	Width, Height float64
	// Fields holds one box per field, in description order.
	Fields []FieldBox
	// Ticks holds Width+1 ruler ticks, or none when the ruler is disabled.
	Ticks []Tick
}

// PixelSize returns the document size rounded up to whole pixels.
// Canvases returned by Plan are at most MaxCanvasSize on each side.
func (c Canvas) PixelSize() (width, height int) {
	return int(math.Ceil(c.Width)), int(math.Ceil(c.Height))
}

// Plan maps a layout grid to pixel coordinates.
//
// The canvas is 2*XMargin + Width*XFactor pixels wide and
// 2*YMargin + RulerHeight + Rows*YFactor pixels high.
func Plan(d Description, g Grid, s Style) (Canvas, error) {
	if err := s.Validate(); err != nil {
		return Canvas{}, err
	}
	if g.Width <= 0 {
		return Canvas{}, dimensionError("width", g.Width)
	}
	if len(g.Fields) == 0 {
		return Canvas{}, ErrNoFields
	}
	if g.Width > MaxCanvasSize || g.Rows > MaxCanvasSize {
		return Canvas{}, fmt.Errorf("%w: grid of %d columns by %d rows exceeds %d",
			ErrInvalidDimension, g.Width, g.Rows, MaxCanvasSize)
	}

	c := Canvas{
		Width:  2*s.XMargin + float64(g.Width)*s.XFactor,
		Height: 2*s.YMargin + s.RulerHeight + float64(g.Rows)*s.YFactor,
	}
	// The negated comparison also rejects NaN and infinities.
	if !(c.Width <= MaxCanvasSize && c.Height <= MaxCanvasSize) {
		return Canvas{}, fmt.Errorf("%w: canvas of %vx%v pixels exceeds %d",
			ErrInvalidDimension, c.Width, c.Height, MaxCanvasSize)
	}
	c.Fields = make([]FieldBox, 0, len(g.Fields))

	for i, p := range g.Fields {
		if strings.TrimSpace(p.Label) == "" {
			return Canvas{}, fmt.Errorf("%w: field %d has no label", ErrMalformedDescription, i)
		}
		if p.Col2 <= p.Col1 || p.Row2 <= p.Row1 {
			return Canvas{}, fmt.Errorf("%w: field %d %q has an empty rectangle", ErrMalformedDescription, i, p.Label)
		}
		if p.Col1 < 0 || p.Row1 < 0 || p.Col2 > g.Width || p.Row2 > g.Rows {
			return Canvas{}, fmt.Errorf("%w: field %d %q lies outside the %dx%d grid", ErrMalformedDescription, i, p.Label, g.Width, g.Rows)
		}
		rect := recording.NewRectFromPoints(s.X(p.Col1), s.Y(p.Row1), s.X(p.Col2), s.Y(p.Row2))
		box := FieldBox{Placement: p, Rect: rect}
		box.LabelX, box.LabelY = rect.Center()
		for r := 1; r < p.Span(); r++ {
			box.Hints = append(box.Hints, rect.MinY+float64(r)*s.YFactor)
		}
		c.Fields = append(c.Fields, box)
	}

	if s.Ruler {
		if d.LargeMarkEvery <= 0 {
			return Canvas{}, dimensionError("large_mark_every", d.LargeMarkEvery)
		}
		if d.MediumMarkEvery <= 0 {
			return Canvas{}, dimensionError("medium_mark_every", d.MediumMarkEvery)
		}
		base := s.Y(0)
		c.Ticks = make([]Tick, 0, g.Width+1)
		for i := 0; i <= g.Width; i++ {
			kind := tickKind(i, d.LargeMarkEvery, d.MediumMarkEvery)
			h := s.RulerHeight
			switch kind {
			case TickMedium:
				h *= s.MediumTick
			case TickMinor:
				h *= s.ShortTick
			}
			c.Ticks = append(c.Ticks, Tick{
				Column: i,
				Kind:   kind,
				X:      s.X(i),
				Top:    base - h,
				Bottom: base,
			})
		}
	}

	Logger().Debug("protoplot: canvas", "width", c.Width, "height", c.Height, "ticks", len(c.Ticks))
	return c, nil
}
