package treetable

import (
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"strings"
)

// Format is a structured input format that can be parsed into a [Value].
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var formats = []Format{JSON, YAML, TOML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported input formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	if s == "yml" {
		return YAML, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension on %q", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Parse decodes a single document. Key order of maps is preserved as
// written. For YAML and JSON input holding several documents only the first
// is returned; use [Documents] for the rest.
func Parse(f Format, data []byte) (Value, error) {
	for v, err := range documents(f, data) {
		return v, err
	}
	return Value{}, fmt.Errorf("%w: empty %s input", ErrInvalidDocument, f)
}

// Decode reads r fully and parses it like [Parse].
func Decode(r io.Reader, f Format) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, err
	}
	return Parse(f, data)
}

// Documents reads r and yields every document it holds: each document of a
// YAML stream, each top-level JSON value of a concatenated or
// newline-delimited JSON stream, or the single TOML document. Iteration
// stops after the first error.
func Documents(r io.Reader, f Format) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		data, err := io.ReadAll(r)
		if err != nil {
			yield(Value{}, err)
			return
		}
		for v, err := range documents(f, data) {
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

func documents(f Format, data []byte) iter.Seq2[Value, error] {
	switch f {
	case JSON:
		return jsonDocuments(data)
	case YAML:
		return yamlDocuments(data)
	case TOML:
		return tomlDocuments(data)
	default:
		return func(yield func(Value, error) bool) {
			yield(Value{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f))
		}
	}
}
