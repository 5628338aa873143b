package protoplot

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/protoplot/internal/cache"
)

// labelFont parses the embedded Go Regular font once per process.
var labelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// faceCache holds one face per font size. Faces are not safe for
// concurrent use, so measurements are serialized by faceMu.
var (
	faceMu    sync.Mutex
	faceCache = make(map[float64]font.Face)
)

type widthKey struct {
	label string
	size  float64
}

// widths memoizes label measurements across renders.
var widths = cache.New[widthKey, float64](1024)

// MeasureLabel returns the advance width in pixels of label set in Go
// Regular at the given pixel size.
func MeasureLabel(label string, size float64) (float64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: font size %v", ErrInvalidDimension, size)
	}

	key := widthKey{label, size}
	if w, ok := widths.Get(key); ok {
		return w, nil
	}

	faceMu.Lock()
	defer faceMu.Unlock()

	face, ok := faceCache[size]
	if !ok {
		f, err := labelFont()
		if err != nil {
			return 0, fmt.Errorf("protoplot: parse label font: %w", err)
		}
		face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return 0, fmt.Errorf("protoplot: label face: %w", err)
		}
		faceCache[size] = face
	}

	w := float64(font.MeasureString(face, label)) / 64
	widths.Set(key, w)
	return w, nil
}

// Overflow is a label that does not fit inside its field rectangle.
type Overflow struct {
	Index int
	Label string
	// LabelWidth and BoxWidth are in pixels.
	LabelWidth, BoxWidth float64
}

// Overflows returns the fields of c whose label is wider than the field.
// The diagram is still valid; the label simply spills over the outline.
func Overflows(c Canvas, s Style) ([]Overflow, error) {
	var out []Overflow
	for i, box := range c.Fields {
		w, err := MeasureLabel(box.Label, s.FontSize)
		if err != nil {
			return nil, err
		}
		if w > box.Rect.Width() {
			out = append(out, Overflow{
				Index:      i,
				Label:      box.Label,
				LabelWidth: w,
				BoxWidth:   box.Rect.Width(),
			})
		}
	}
	return out, nil
}
