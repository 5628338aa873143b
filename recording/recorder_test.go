package recording

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gg"
)

func TestRecorderPlayback(t *testing.T) {
	rec := NewRecorder(100, 40)
	rec.BeginGroup("ruler")
	rec.StrokeLine(5, 5, 5, 15, DefaultStroke())
	rec.EndGroup()
	rec.BeginGroup("flags")
	rec.DrawText("flags", 50, 25, DefaultTextStyle())
	rec.StrokeRect(NewRect(5, 15, 90, 20), DefaultStroke())
	rec.EndGroup()
	r := rec.FinishRecording()

	mock := newMockBackend("m")
	if err := r.Playback(mock); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}

	if mock.beginCalls != 1 || mock.endCalls != 1 {
		t.Errorf("Begin/End calls = %d/%d, want 1/1", mock.beginCalls, mock.endCalls)
	}
	if mock.width != 100 || mock.height != 40 {
		t.Errorf("dimensions = %dx%d, want 100x40", mock.width, mock.height)
	}
	want := []string{"BeginGroup", "StrokeLine", "EndGroup", "BeginGroup", "DrawText", "StrokeRect", "EndGroup"}
	if !reflect.DeepEqual(mock.calls, want) {
		t.Errorf("calls = %v, want %v", mock.calls, want)
	}
	if !reflect.DeepEqual(mock.groups, []string{"ruler", "flags"}) {
		t.Errorf("groups = %v", mock.groups)
	}
}

func TestRecordingCount(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.StrokeLine(0, 0, 1, 1, DefaultStroke())
	rec.StrokeLine(0, 0, 2, 2, DefaultStroke())
	rec.DrawText("x", 0, 0, DefaultTextStyle())
	r := rec.FinishRecording()

	if got := r.Count(CmdStrokeLine); got != 2 {
		t.Errorf("Count(StrokeLine) = %d, want 2", got)
	}
	if got := r.Count(CmdDrawText); got != 1 {
		t.Errorf("Count(DrawText) = %d, want 1", got)
	}
	if got := r.Count(CmdStrokeRect); got != 0 {
		t.Errorf("Count(StrokeRect) = %d, want 0", got)
	}
}

func TestRecordingUnbalanced(t *testing.T) {
	tests := []struct {
		name   string
		record func(*Recorder)
	}{
		{"open group", func(r *Recorder) { r.BeginGroup("a") }},
		{"stray end", func(r *Recorder) { r.EndGroup() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder(10, 10)
			tt.record(rec)
			mock := newMockBackend("m")
			err := rec.FinishRecording().Playback(mock)
			if !errors.Is(err, ErrUnbalancedGroups) {
				t.Fatalf("Playback() error = %v, want ErrUnbalancedGroups", err)
			}
			if mock.beginCalls != 0 {
				t.Error("backend should not be started for an unbalanced recording")
			}
		})
	}
}

func TestRecordingImmutable(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.DrawText("a", 0, 0, DefaultTextStyle())
	r := rec.FinishRecording()
	rec.DrawText("b", 0, 0, DefaultTextStyle())

	if got := len(r.Commands()); got != 1 {
		t.Errorf("len(Commands()) = %d after further recording, want 1", got)
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{BeginGroupCommand{}, "BeginGroup"},
		{EndGroupCommand{}, "EndGroup"},
		{StrokeLineCommand{}, "StrokeLine"},
		{StrokeRectCommand{}, "StrokeRect"},
		{DrawTextCommand{}, "DrawText"},
	}
	for _, tt := range tests {
		if got := tt.cmd.Type().String(); got != tt.want {
			t.Errorf("%T.Type().String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("CommandType(200).String() = %q, want Unknown", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    gg.RGBA
		want string
	}{
		{gg.Black, "#000000"},
		{gg.White, "#ffffff"},
		{gg.RGB(1, 0, 0.5), "#ff0080"},
		{gg.RGBA{R: 2, G: -1, B: 0, A: 1}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := Hex(tt.c); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestStrokeHelpers(t *testing.T) {
	s := DefaultStroke()
	if s.EffectiveWidth() != 1 {
		t.Errorf("EffectiveWidth() = %v, want 1", s.EffectiveWidth())
	}
	thin := s.WithWidth(0.5).WithOpacity(0.15)
	if thin.Width != 0.5 || thin.Opacity != 0.15 {
		t.Errorf("WithWidth/WithOpacity = %+v", thin)
	}
	if s.Width != 0 || s.Opacity != 1 {
		t.Error("With* must not modify the receiver")
	}
}

func TestRect(t *testing.T) {
	r := NewRectFromPoints(85, 35, 5, 15)
	if r.Width() != 80 || r.Height() != 20 {
		t.Errorf("size = %vx%v, want 80x20", r.Width(), r.Height())
	}
	if x, y := r.Center(); x != 45 || y != 25 {
		t.Errorf("Center() = (%v, %v), want (45, 25)", x, y)
	}
	if !r.Contains(5, 15) || r.Contains(4, 15) {
		t.Error("Contains() edge handling wrong")
	}
	if r.IsEmpty() || !NewRect(0, 0, 0, 10).IsEmpty() {
		t.Error("IsEmpty() wrong")
	}
}
