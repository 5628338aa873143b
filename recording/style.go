package recording

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Stroke describes how a line or rectangle outline is painted.
type Stroke struct {
	// Color is the stroke color. The alpha component is ignored in favour
	// of Opacity so that documents keep the color and opacity separate.
	Color gg.RGBA
	// Opacity is the stroke opacity in the range [0, 1].
	Opacity float64
	// Width is the stroke width in pixels. Zero means the backend default
	// of one pixel.
	Width float64
}

// DefaultStroke returns an opaque black stroke of the backend default width.
func DefaultStroke() Stroke {
	return Stroke{Color: gg.Black, Opacity: 1}
}

// WithWidth returns a copy of s with the given width.
func (s Stroke) WithWidth(width float64) Stroke {
	s.Width = width
	return s
}

// WithOpacity returns a copy of s with the given opacity.
func (s Stroke) WithOpacity(opacity float64) Stroke {
	s.Opacity = opacity
	return s
}

// EffectiveWidth returns the stroke width, substituting 1 for zero.
func (s Stroke) EffectiveWidth() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

// TextAnchor controls horizontal text alignment relative to the anchor point.
type TextAnchor uint8

const (
	// AnchorStart places the anchor at the start of the text.
	AnchorStart TextAnchor = iota
	// AnchorMiddle centers the text on the anchor.
	AnchorMiddle
	// AnchorEnd places the anchor at the end of the text.
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a TextAnchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// Fraction returns the portion of the text width that lies left of the
// anchor (0, 0.5 or 1).
func (a TextAnchor) Fraction() float64 {
	switch a {
	case AnchorMiddle:
		return 0.5
	case AnchorEnd:
		return 1
	default:
		return 0
	}
}

// TextStyle describes how a text label is drawn.
type TextStyle struct {
	// Size is the font size in pixels.
	Size float64
	// Anchor is the horizontal alignment.
	Anchor TextAnchor
	// Shift moves the baseline down from the anchor point, in pixels.
	// A shift of about 0.3*Size visually centers lowercase-heavy text on y.
	Shift float64
	// Color is the text color.
	Color gg.RGBA
}

// DefaultTextStyle returns a 15px black, centered, baseline-shifted style.
func DefaultTextStyle() TextStyle {
	return TextStyle{Size: 15, Anchor: AnchorMiddle, Shift: 4.5, Color: gg.Black}
}

// Hex formats the RGB components of c as #rrggbb.
func Hex(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
