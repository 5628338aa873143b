// Package protoplot draws bit-layout diagrams of binary wire formats.
//
// # Overview
//
// A protocol is described as an ordered list of fields, each with a label
// and a size in bits, plus a row width. protoplot flows the fields into a
// grid of that width, left to right and top to bottom like text, and
// draws each field as a labeled rectangle with a bit ruler above the
// first row.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/protoplot"
//	    _ "github.com/gogpu/protoplot/recording/backends/svg"
//	)
//
//	desc := protoplot.NewDescription(
//	    protoplot.Field{Label: "src port", Size: 16},
//	    protoplot.Field{Label: "dst port", Size: 16},
//	    protoplot.Field{Label: "length", Size: 16},
//	    protoplot.Field{Label: "checksum", Size: 16},
//	)
//
//	r, err := protoplot.Render(desc)
//	if err != nil {
//	    return err
//	}
//	return protoplot.Export(os.Stdout, r, "svg")
//
// # Pipeline
//
// Rendering runs in three pure steps, each usable on its own:
//
//   - Layout: fields and row width to grid rectangles ([Grid])
//   - Plan: grid rectangles to pixel geometry ([Canvas]) under a [Style]
//   - Draw: pixel geometry to drawing primitives in a recording.Recorder
//
// The resulting recording can be played back to any registered backend:
// "svg" (recording/backends/svg) or "png" (recording/backends/raster).
//
// # Layout Rule
//
// A field must fit in what is left of the current row, or start at
// column 0 and be an exact multiple of the row width. Fields are never
// split across rows otherwise; Layout returns a [*LayoutError] instead.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the document
//   - Grid row 0 is the top row, directly below the ruler band
//   - Rows grow downward, columns grow to the right
package protoplot
