// Package describe reads protocol descriptions from disk.
//
// A description is a document with a required "fields" list of
// {label, size} objects and the optional keys "width",
// "large_mark_every" and "medium_mark_every". The same keys are accepted
// in every supported format:
//
//	{
//	    // JSON and JSONC
//	    "width": 32,
//	    "fields": [
//	        {"label": "source port", "size": 16},
//	        {"label": "destination port", "size": 16},
//	    ],
//	}
//
//	# YAML
//	width: 32
//	fields:
//	  - {label: source port, size: 16}
//	  - {label: destination port, size: 16}
//
//	# TOML
//	width = 32
//	[[fields]]
//	label = "source port"
//	size = 16
//
// Absent optional keys take the protoplot defaults. Labels are
// NFC-normalized and trimmed.
package describe

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/protoplot"
)

// Format is the text encoding of a description.
type Format uint8

const (
	// JSON is plain JSON. It is decoded the same way as JSONC.
	JSON Format = iota
	// JSONC is JSON with comments and trailing commas.
	JSONC
	// YAML is YAML 1.2.
	YAML
	// TOML is TOML 1.0, with fields as an array of tables.
	TOML
)

var formatNames = [...]string{
	JSON:  "json",
	JSONC: "jsonc",
	YAML:  "yaml",
	TOML:  "toml",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatFromPath picks the format from the file extension. Unknown
// extensions are read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc":
		return JSONC
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return JSON
	}
}

// Load reads and decodes the description file at path.
//
// The file is read fully and closed before decoding. Errors opening or
// reading it match both protoplot.ErrInputUnreadable and the underlying
// OS error, so errors.Is(err, fs.ErrNotExist) works for missing files.
func Load(path string) (protoplot.Description, error) {
	data, err := readFile(path)
	if err != nil {
		return protoplot.Description{}, err
	}

	format := FormatFromPath(path)
	protoplot.Logger().Debug("describe: loading", "path", path, "format", format, "bytes", len(data))

	d, err := Decode(data, format)
	if err != nil {
		return protoplot.Description{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func readFile(path string) (data []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", protoplot.ErrInputUnreadable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", protoplot.ErrInputUnreadable, cerr)
		}
	}()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", protoplot.ErrInputUnreadable, path, err)
	}
	return data, nil
}

// document mirrors the on-disk keys. Pointers distinguish absent keys
// from zero values.
type document struct {
	Fields          []field `json:"fields" yaml:"fields" toml:"fields"`
	Width           *int    `json:"width" yaml:"width" toml:"width"`
	LargeMarkEvery  *int    `json:"large_mark_every" yaml:"large_mark_every" toml:"large_mark_every"`
	MediumMarkEvery *int    `json:"medium_mark_every" yaml:"medium_mark_every" toml:"medium_mark_every"`
}

type field struct {
	Label *string `json:"label" yaml:"label" toml:"label"`
	Size  *int    `json:"size" yaml:"size" toml:"size"`
}

// Decode parses a description in the given format and applies defaults.
// The result has passed protoplot.Description.Validate.
func Decode(data []byte, format Format) (protoplot.Description, error) {
	var doc document
	if err := unmarshal(data, format, &doc); err != nil {
		return protoplot.Description{}, fmt.Errorf("%w: %s: %w", protoplot.ErrInputUnreadable, format, err)
	}

	if doc.Fields == nil {
		return protoplot.Description{}, fmt.Errorf("%w: missing \"fields\"", protoplot.ErrMalformedDescription)
	}

	d := protoplot.NewDescription()
	d.Fields = make([]protoplot.Field, 0, len(doc.Fields))
	for i, f := range doc.Fields {
		if f.Label == nil {
			return protoplot.Description{}, fmt.Errorf("%w: field %d: missing \"label\"", protoplot.ErrMalformedDescription, i)
		}
		if f.Size == nil {
			return protoplot.Description{}, fmt.Errorf("%w: field %d %q: missing \"size\"", protoplot.ErrMalformedDescription, i, *f.Label)
		}
		d.Fields = append(d.Fields, protoplot.Field{
			Label: normalizeLabel(*f.Label),
			Size:  *f.Size,
		})
	}
	if doc.Width != nil {
		d.Width = *doc.Width
	}
	if doc.LargeMarkEvery != nil {
		d.LargeMarkEvery = *doc.LargeMarkEvery
	}
	if doc.MediumMarkEvery != nil {
		d.MediumMarkEvery = *doc.MediumMarkEvery
	}

	if err := d.Validate(); err != nil {
		return protoplot.Description{}, err
	}
	return d, nil
}

func unmarshal(data []byte, format Format, doc *document) error {
	switch format {
	case YAML:
		return yaml.Unmarshal(data, doc)
	case TOML:
		return toml.Unmarshal(data, doc)
	default:
		return json.Unmarshal(jsonc.ToJSON(data), doc)
	}
}

// normalizeLabel composes label to NFC and trims surrounding whitespace,
// so that visually identical labels compare equal.
func normalizeLabel(label string) string {
	return strings.TrimSpace(norm.NFC.String(label))
}
