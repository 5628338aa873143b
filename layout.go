package protoplot

import (
	"fmt"
	"math"
)

// Placement is a field positioned on the layout grid.
//
// Coordinates are in grid units: one column per bit, one unit per row.
// The rectangle spans columns [Col1, Col2) and rows [Row1, Row2).
// Col1 < Col2 and Row2-Row1 >= 1 always hold; fields that fill whole rows
// have Col1 == 0 and Col2 == the row width.
type Placement struct {
	Field
	Col1, Row1 int
	Col2, Row2 int
}

// Columns returns the number of bit columns the rectangle covers.
func (p Placement) Columns() int {
	return p.Col2 - p.Col1
}

// Span returns the number of rows the rectangle covers.
func (p Placement) Span() int {
	return p.Row2 - p.Row1
}

// Cells returns the area of the rectangle in grid cells. It equals the
// field size for every placement Layout produces.
func (p Placement) Cells() int {
	return p.Columns() * p.Span()
}

// Grid is the result of a layout pass.
type Grid struct {
	// Width is the row width in bits.
	Width int
	// Rows is the number of rows the content occupies.
	Rows int
	// Fields holds one placement per input field, in input order.
	Fields []Placement
}

// Trailing returns the number of unused bit columns at the end of the last
// row. It is zero when the last field ends exactly on a row boundary.
func (g Grid) Trailing() int {
	if len(g.Fields) == 0 {
		return 0
	}
	last := g.Fields[len(g.Fields)-1]
	if last.Col2 == g.Width {
		return 0
	}
	return g.Width - last.Col2
}

// Layout places fields on a grid of the given row width.
//
// Fields flow left to right and wrap to the next row like text in a
// fixed-width column, with no gaps and no reordering. A field must either
// fit in the remainder of the current row, or start at column 0 and be an
// exact multiple of width; anything else returns a *LayoutError.
//
// The input slice is not modified.
func Layout(fields []Field, width int) (Grid, error) {
	if len(fields) == 0 {
		return Grid{}, ErrNoFields
	}
	if width <= 0 {
		return Grid{}, dimensionError("width", width)
	}

	placed := make([]Placement, 0, len(fields))
	x, y := 0, 0
	for i, f := range fields {
		size := f.Size
		if size < 1 {
			return Grid{}, dimensionError("size of field "+f.Label, size)
		}
		// size > width-x is x+size > width without the overflow.
		if size > width-x && (x != 0 || size%width != 0) {
			return Grid{}, &LayoutError{
				Index:  i,
				Label:  f.Label,
				Size:   size,
				Column: x,
				Row:    y,
				Width:  width,
			}
		}

		span := max(size/width, 1)
		if span > math.MaxInt-y {
			return Grid{}, fmt.Errorf("%w: field %d %q ends past row %d", ErrInvalidDimension, i, f.Label, math.MaxInt)
		}
		placed = append(placed, Placement{
			Field: f,
			Col1:  x,
			Row1:  y,
			Col2:  x + (size-1)%width + 1,
			Row2:  y + span,
		})

		// Either x+size fits in the row or x is 0.
		y += (x + size) / width
		x = (x + size) % width
	}

	g := Grid{
		Width:  width,
		Rows:   placed[len(placed)-1].Row2,
		Fields: placed,
	}
	Logger().Debug("protoplot: layout", "fields", len(placed), "width", width, "rows", g.Rows, "trailing", g.Trailing())
	return g, nil
}
