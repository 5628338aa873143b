package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/protoplot/recording"
)

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("png") {
		t.Fatal("png backend not registered")
	}

	backend, err := recording.NewBackend("png")
	if err != nil {
		t.Fatalf("failed to create png backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}

	if name, ok := recording.ForExtension(".PNG"); !ok || name != "png" {
		t.Errorf("ForExtension(.PNG) = %q, %v; want png, true", name, ok)
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()
	defer func() { _ = backend.Close() }()

	if err := backend.Begin(100, 60); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 100 || backend.Height() != 60 {
		t.Errorf("size = %dx%d, want 100x60", backend.Width(), backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 60 {
		t.Errorf("Image bounds = %v, want 100x60", b)
	}
	if !isLight(img, 50, 30) {
		t.Error("canvas should be cleared to white")
	}
}

func TestStrokeRect(t *testing.T) {
	backend := NewBackend()
	defer func() { _ = backend.Close() }()

	if err := backend.Begin(60, 40); err != nil {
		t.Fatal(err)
	}
	backend.StrokeRect(recording.NewRect(10, 10, 40, 20), recording.DefaultStroke().WithWidth(2))
	if err := backend.End(); err != nil {
		t.Fatal(err)
	}

	img := backend.Image()
	if isLight(img, 10, 20) {
		t.Error("left edge of the rectangle should be drawn")
	}
	if isLight(img, 30, 10) {
		t.Error("top edge of the rectangle should be drawn")
	}
	if !isLight(img, 30, 20) {
		t.Error("rectangle interior should stay unfilled")
	}
}

func TestStrokeLine(t *testing.T) {
	backend := NewBackend(WithBackground(gg.White))
	defer func() { _ = backend.Close() }()

	if err := backend.Begin(40, 40); err != nil {
		t.Fatal(err)
	}
	backend.BeginGroup("ruler")
	backend.StrokeLine(20, 0, 20, 40, recording.DefaultStroke().WithWidth(2))
	backend.EndGroup()
	if err := backend.End(); err != nil {
		t.Fatal(err)
	}

	if isLight(backend.Image(), 20, 20) {
		t.Error("line pixel should be dark")
	}
	if !isLight(backend.Image(), 5, 20) {
		t.Error("pixel away from the line should stay white")
	}
}

func TestDrawText(t *testing.T) {
	backend := NewBackend()
	defer func() { _ = backend.Close() }()

	if err := backend.Begin(120, 60); err != nil {
		t.Fatal(err)
	}
	style := recording.DefaultTextStyle()
	style.Size = 30
	style.Shift = 9
	backend.DrawText("MMM", 60, 30, style)
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	dark := 0
	img := backend.Image()
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			if !isLight(img, x, y) {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("text should leave dark pixels on the canvas")
	}
}

func TestWriteToPNG(t *testing.T) {
	backend := NewBackend()
	defer func() { _ = backend.Close() }()

	if err := backend.Begin(32, 16); err != nil {
		t.Fatal(err)
	}
	if err := backend.End(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("decoded bounds = %v, want 32x16", b)
	}
}

func TestNotStarted(t *testing.T) {
	backend := NewBackend()
	if _, err := backend.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("WriteTo before Begin error = %v, want ErrNotStarted", err)
	}
	if err := backend.End(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("End before Begin error = %v, want ErrNotStarted", err)
	}
	if backend.Image() != nil {
		t.Error("Image before Begin should be nil")
	}
	if err := backend.Close(); err != nil {
		t.Errorf("Close before Begin error = %v", err)
	}
}

func isLight(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xC000 && g > 0xC000 && b > 0xC000
}
