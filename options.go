package protoplot

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/protoplot/recording"
)

// Style holds every drawing constant of the renderer: cell size, margins,
// font size, ruler geometry and strokes.
//
// Styles are plain values. Two renders with different styles can run side
// by side without affecting each other.
type Style struct {
	// XFactor and YFactor are the pixel width of one bit column and the
	// pixel height of one row.
	XFactor, YFactor float64
	// XMargin and YMargin are the outer margins in pixels.
	XMargin, YMargin float64
	// FontSize is the label font size in pixels.
	FontSize float64
	// RulerHeight is the height of the band above the grid reserved for
	// ruler ticks. The band is reserved even when Ruler is false.
	RulerHeight float64
	// MediumTick and ShortTick are the heights of medium and minor ticks
	// as fractions of RulerHeight. Major ticks use the full height.
	MediumTick, ShortTick float64
	// LabelShift moves label baselines down by LabelShift*FontSize so
	// that labels appear vertically centered.
	LabelShift float64
	// Ruler enables the ruler ticks.
	Ruler bool
	// Hints enables light lines at row boundaries inside multi-row fields.
	Hints bool
	// Outline, Hint and Tick are the strokes of field rectangles, hint
	// lines and ruler ticks.
	Outline, Hint, Tick recording.Stroke
	// TextColor is the label color.
	TextColor gg.RGBA
}

// DefaultStyle returns the standard diagram style: 20x20 pixel cells,
// 5 pixel margins, 15 pixel labels and a 10 pixel ruler band.
func DefaultStyle() Style {
	return Style{
		XFactor:     20,
		YFactor:     20,
		XMargin:     5,
		YMargin:     5,
		FontSize:    15,
		RulerHeight: 10,
		MediumTick:  0.56,
		ShortTick:   0.3,
		LabelShift:  0.3,
		Ruler:       true,
		Hints:       true,
		Outline:     recording.DefaultStroke(),
		Hint:        recording.DefaultStroke().WithOpacity(0.15).WithWidth(0.5),
		Tick:        recording.DefaultStroke().WithWidth(1),
		TextColor:   gg.Black,
	}
}

// Option configures the Style used by Render.
//
// Example:
//
//	// Default style
//	r, err := protoplot.Render(desc)
//
//	// Larger cells without the ruler
//	r, err := protoplot.Render(desc, protoplot.WithScale(32, 24), protoplot.WithRuler(false))
type Option func(*Style)

// NewStyle applies opts to DefaultStyle.
func NewStyle(opts ...Option) Style {
	s := DefaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithStyle replaces the whole style. Options after it still apply.
func WithStyle(style Style) Option {
	return func(s *Style) {
		*s = style
	}
}

// WithScale sets the pixel size of one grid cell.
func WithScale(x, y float64) Option {
	return func(s *Style) {
		s.XFactor = x
		s.YFactor = y
	}
}

// WithMargins sets the outer margins.
func WithMargins(x, y float64) Option {
	return func(s *Style) {
		s.XMargin = x
		s.YMargin = y
	}
}

// WithFontSize sets the label font size.
func WithFontSize(size float64) Option {
	return func(s *Style) {
		s.FontSize = size
	}
}

// WithRuler enables or disables ruler ticks.
func WithRuler(enabled bool) Option {
	return func(s *Style) {
		s.Ruler = enabled
	}
}

// WithHints enables or disables hint lines inside multi-row fields.
func WithHints(enabled bool) Option {
	return func(s *Style) {
		s.Hints = enabled
	}
}

// Validate reports non-positive cell sizes or font size and negative
// margins or ruler height.
func (s Style) Validate() error {
	switch {
	case s.XFactor <= 0 || s.YFactor <= 0:
		return fmt.Errorf("%w: cell size %vx%v", ErrInvalidDimension, s.XFactor, s.YFactor)
	case s.FontSize <= 0:
		return fmt.Errorf("%w: font size %v", ErrInvalidDimension, s.FontSize)
	case s.XMargin < 0 || s.YMargin < 0:
		return fmt.Errorf("%w: margins %v, %v", ErrInvalidDimension, s.XMargin, s.YMargin)
	case s.RulerHeight < 0:
		return fmt.Errorf("%w: ruler height %v", ErrInvalidDimension, s.RulerHeight)
	}
	return nil
}

// X maps a grid column to a pixel x coordinate.
func (s Style) X(col int) float64 {
	return s.XMargin + float64(col)*s.XFactor
}

// Y maps a grid row to a pixel y coordinate. Row 0 is the top row, right
// below the ruler band; rows grow downward.
func (s Style) Y(row int) float64 {
	return s.YMargin + s.RulerHeight + float64(row)*s.YFactor
}

// textStyle returns the recording text style for labels.
func (s Style) textStyle() recording.TextStyle {
	return recording.TextStyle{
		Size:   s.FontSize,
		Anchor: recording.AnchorMiddle,
		Shift:  s.LabelShift * s.FontSize,
		Color:  s.TextColor,
	}
}
