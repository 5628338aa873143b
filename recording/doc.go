// Package recording provides a command-based drawing recording system for
// protocol diagrams.
//
// The renderer in package protoplot never writes a file format directly.
// It records drawing primitives (groups, stroked lines and rectangles,
// text labels) into a Recording, which is then played back to a Backend
// that produces the actual document.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures drawing operations as commands
//   - Recording: Stores commands for playback
//   - Backend: Renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(650, 75)
//
//	rec.BeginGroup("version")
//	rec.StrokeRect(recording.NewRect(5, 15, 80, 20), recording.DefaultStroke())
//	rec.DrawText("version", 45, 25, recording.DefaultTextStyle())
//	rec.EndGroup()
//
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/protoplot/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.WriterBackend).WriteTo(os.Stdout)
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    "github.com/gogpu/protoplot/recording"
//	    _ "github.com/gogpu/protoplot/recording/backends/raster" // "png"
//	    _ "github.com/gogpu/protoplot/recording/backends/svg"    // "svg"
//	)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back any number of times; every
// playback of the same Recording to a fresh backend produces the same
// output.
package recording
