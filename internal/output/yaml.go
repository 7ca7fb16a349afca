package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlWriter emits each value as a YAML document.
type yamlWriter struct {
	enc *yaml.Encoder
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &yamlWriter{enc: enc}
}

func (y *yamlWriter) Write(v any) error {
	return y.enc.Encode(v)
}

// Close terminates the YAML stream.
func (y *yamlWriter) Close() error {
	return y.enc.Close()
}
