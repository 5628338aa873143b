package protoplot

import (
	"fmt"
	"io"

	"github.com/gogpu/protoplot/recording"
)

// Draw records the primitives of a planned canvas.
//
// The ruler comes first as one anonymous group of tick lines. Each field
// follows as a group whose id is the field label, holding its hint lines,
// its centered label and its outline, in that order.
func Draw(rec *recording.Recorder, c Canvas, s Style) {
	if len(c.Ticks) > 0 {
		rec.BeginGroup("")
		for _, t := range c.Ticks {
			rec.StrokeLine(t.X, t.Top, t.X, t.Bottom, s.Tick)
		}
		rec.EndGroup()
	}

	text := s.textStyle()
	for _, box := range c.Fields {
		rec.BeginGroup(box.Label)
		if s.Hints {
			for _, y := range box.Hints {
				rec.StrokeLine(box.Rect.MinX, y, box.Rect.MaxX, y, s.Hint)
			}
		}
		rec.DrawText(box.Label, box.LabelX, box.LabelY, text)
		rec.StrokeRect(box.Rect, s.Outline)
		rec.EndGroup()
	}
}

// Render lays out and draws a description.
//
// It validates the description, runs Layout, plans the canvas with the
// style built from opts and records the diagram. Nothing is recorded when
// any step fails.
//
// Example:
//
//	desc := protoplot.NewDescription(
//	    protoplot.Field{Label: "version", Size: 4},
//	    protoplot.Field{Label: "ihl", Size: 4},
//	)
//	r, err := protoplot.Render(desc)
func Render(d Description, opts ...Option) (*recording.Recording, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	s := NewStyle(opts...)

	g, err := Layout(d.Fields, d.Width)
	if err != nil {
		return nil, err
	}
	c, err := Plan(d, g, s)
	if err != nil {
		return nil, err
	}

	log := Logger()
	for _, label := range d.DuplicateLabels() {
		log.Warn("protoplot: duplicate field label, group ids will collide", "label", label)
	}
	overflows, err := Overflows(c, s)
	if err != nil {
		return nil, err
	}
	for _, o := range overflows {
		log.Warn("protoplot: label wider than field",
			"field", o.Index, "label", o.Label,
			"label_px", o.LabelWidth, "field_px", o.BoxWidth)
	}

	w, h := c.PixelSize()
	rec := recording.NewRecorder(w, h)
	Draw(rec, c, s)
	return rec.FinishRecording(), nil
}

// Export plays a recording back to the named backend and writes the
// resulting document to w. The backend must have been registered, usually
// by a blank import of its package.
func Export(w io.Writer, r *recording.Recording, format string) error {
	backend, err := recording.NewBackend(format)
	if err != nil {
		return err
	}
	if c, ok := backend.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	wb, ok := backend.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("protoplot: backend %q cannot write documents", format)
	}
	if err := r.Playback(wb); err != nil {
		return fmt.Errorf("protoplot: %s: %w", format, err)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("protoplot: write %s: %w", format, err)
	}
	return nil
}
