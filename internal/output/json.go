package output

import (
	"encoding/json"
	"io"
)

// jsonWriter emits each value as an indented JSON document followed by
// a newline.
type jsonWriter struct {
	enc *json.Encoder
}

func newJSONWriter(w io.Writer) *jsonWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &jsonWriter{enc: enc}
}

func (j *jsonWriter) Write(v any) error {
	return j.enc.Encode(v)
}

func (j *jsonWriter) Close() error {
	return nil
}

// jsonlWriter emits one compact JSON line per value.
type jsonlWriter struct {
	enc *json.Encoder
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{enc: json.NewEncoder(w)}
}

func (j *jsonlWriter) Write(v any) error {
	return j.enc.Encode(v)
}

func (j *jsonlWriter) Close() error {
	return nil
}
