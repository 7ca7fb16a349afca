// Package output serializes batch run reports. JSON and YAML carry the
// whole report as one document; JSONL emits one record per processed
// file, which suits piping into line-oriented tooling.
package output

import (
	"fmt"
	"io"
)

// Format selects a report serialization.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer serializes report values to its destination. The caller owns
// the underlying io.Writer; Close finishes the stream without closing
// the destination.
type Writer interface {
	Write(v any) error
	Close() error
}

// NewWriter creates a report writer for the given format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return newJSONWriter(w), nil
	case FormatJSONL:
		return newJSONLWriter(w), nil
	case FormatYAML:
		return newYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want json, jsonl, or yaml)", format)
	}
}
