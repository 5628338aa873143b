package recording

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing operation.
type CommandType uint8

const (
	// Structure commands
	CmdBeginGroup CommandType = iota // Open a named group
	CmdEndGroup                      // Close the current group

	// Drawing commands
	CmdStrokeLine // Stroke a line segment
	CmdStrokeRect // Stroke a rectangle outline
	CmdDrawText   // Draw a text label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginGroup: "BeginGroup",
	CmdEndGroup:   "EndGroup",
	CmdStrokeLine: "StrokeLine",
	CmdStrokeRect: "StrokeRect",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginGroupCommand opens a group.
type BeginGroupCommand struct {
	// ID names the group. Empty for anonymous groups.
	ID string
}

// Type implements Command.
func (BeginGroupCommand) Type() CommandType { return CmdBeginGroup }

// EndGroupCommand closes the innermost open group.
type EndGroupCommand struct{}

// Type implements Command.
func (EndGroupCommand) Type() CommandType { return CmdEndGroup }

// StrokeLineCommand strokes a line from (X1, Y1) to (X2, Y2).
type StrokeLineCommand struct {
	X1, Y1 float64
	X2, Y2 float64
	Stroke Stroke
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// StrokeRectCommand outlines a rectangle.
type StrokeRectCommand struct {
	Rect   Rect
	Stroke Stroke
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

// DrawTextCommand draws text anchored at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Style TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
