package recording

import (
	"errors"
	"fmt"
)

// ErrUnbalancedGroups is returned when a recording is finished or played
// back while groups are still open, or when EndGroup has no matching
// BeginGroup.
var ErrUnbalancedGroups = errors.New("recording: unbalanced groups")

// Recorder captures drawing operations as commands.
// Use FinishRecording to obtain an immutable Recording that can be
// replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.BeginGroup("header")
//	rec.StrokeRect(recording.NewRect(5, 15, 640, 20), recording.DefaultStroke())
//	rec.EndGroup()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	depth         int
	unbalanced    bool
}

// NewRecorder creates a new Recorder for the given pixel dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Depth returns the number of currently open groups.
func (r *Recorder) Depth() int {
	return r.depth
}

// BeginGroup opens a group with the given id.
func (r *Recorder) BeginGroup(id string) {
	r.depth++
	r.commands = append(r.commands, BeginGroupCommand{ID: id})
}

// EndGroup closes the innermost open group. Calling EndGroup with no open
// group marks the recording as unbalanced; Playback will then fail.
func (r *Recorder) EndGroup() {
	if r.depth == 0 {
		r.unbalanced = true
		return
	}
	r.depth--
	r.commands = append(r.commands, EndGroupCommand{})
}

// StrokeLine records a stroked line segment.
func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, stroke Stroke) {
	r.commands = append(r.commands, StrokeLineCommand{X1: x1, Y1: y1, X2: x2, Y2: y2, Stroke: stroke})
}

// StrokeRect records a rectangle outline.
func (r *Recorder) StrokeRect(rect Rect, stroke Stroke) {
	r.commands = append(r.commands, StrokeRectCommand{Rect: rect, Stroke: stroke})
}

// DrawText records a text label.
func (r *Recorder) DrawText(s string, x, y float64, style TextStyle) {
	r.commands = append(r.commands, DrawTextCommand{Text: s, X: x, Y: y, Style: style})
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		width:      r.width,
		height:     r.height,
		commands:   cmds,
		unbalanced: r.unbalanced || r.depth != 0,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
	unbalanced    bool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns the number of commands of the given type.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if r.unbalanced {
		return ErrUnbalancedGroups
	}

	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginGroupCommand:
			backend.BeginGroup(c.ID)
		case EndGroupCommand:
			backend.EndGroup()
		case StrokeLineCommand:
			backend.StrokeLine(c.X1, c.Y1, c.X2, c.Y2, c.Stroke)
		case StrokeRectCommand:
			backend.StrokeRect(c.Rect, c.Stroke)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, c.Style)
		}
	}

	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	return nil
}
