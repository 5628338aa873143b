package protoplot

import (
	"errors"
	"sync"
	"testing"
)

func TestMeasureLabel(t *testing.T) {
	short, err := MeasureLabel("ab", 15)
	if err != nil {
		t.Fatalf("MeasureLabel() error = %v", err)
	}
	long, err := MeasureLabel("abababab", 15)
	if err != nil {
		t.Fatal(err)
	}
	big, err := MeasureLabel("ab", 30)
	if err != nil {
		t.Fatal(err)
	}

	if short <= 0 {
		t.Errorf("width = %v, want > 0", short)
	}
	if long <= short {
		t.Errorf("longer label measured %v, shorter %v", long, short)
	}
	if big <= short {
		t.Errorf("larger size measured %v, smaller %v", big, short)
	}

	empty, err := MeasureLabel("", 15)
	if err != nil || empty != 0 {
		t.Errorf("MeasureLabel(\"\") = %v, %v, want 0, nil", empty, err)
	}
}

func TestMeasureLabelInvalidSize(t *testing.T) {
	if _, err := MeasureLabel("x", 0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("MeasureLabel(size 0) error = %v, want ErrInvalidDimension", err)
	}
}

func TestMeasureLabelConcurrent(t *testing.T) {
	want, err := MeasureLabel("checksum", 15)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := MeasureLabel("checksum", 15)
			if err != nil || got != want {
				t.Errorf("MeasureLabel() = %v, %v, want %v", got, err, want)
			}
		}()
	}
	wg.Wait()
}

func TestOverflows(t *testing.T) {
	d := NewDescription(Field{"this label is far too long", 1}, Field{"ok", 31})
	c := plan(t, d, DefaultStyle())

	got, err := Overflows(c, DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("Overflows() = %+v, want one entry", got)
	}
	o := got[0]
	if o.Index != 0 || o.Label != "this label is far too long" {
		t.Errorf("overflow = %+v", o)
	}
	if o.BoxWidth != 20 || o.LabelWidth <= o.BoxWidth {
		t.Errorf("widths = label %v box %v", o.LabelWidth, o.BoxWidth)
	}
}
