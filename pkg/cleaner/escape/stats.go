package escape

import (
	"fmt"
	"strings"
	"time"
)

// Stats captures metrics about one cleaning pass.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// Signals that matched during classification.
	Signals []string `json:"signals,omitempty" yaml:"signals,omitempty"`

	// Rule categories that changed the text, in application order.
	CategoriesFired []Category `json:"categories_fired,omitempty" yaml:"categories_fired,omitempty"`

	// Timing
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Changed returns the number of distinct rule categories that fired.
// This is an advisory/telemetry count, not a correctness signal.
func (s *Stats) Changed() int {
	return len(s.CategoriesFired)
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes\n", s.InputBytes, s.OutputBytes))

	if len(s.Signals) > 0 {
		sb.WriteString("Signals: " + strings.Join(s.Signals, ", ") + "\n")
	}

	if len(s.CategoriesFired) > 0 {
		parts := make([]string, len(s.CategoriesFired))
		for i, c := range s.CategoriesFired {
			parts[i] = string(c)
		}
		sb.WriteString("Categories: " + strings.Join(parts, ", ") + "\n")
	}

	sb.WriteString(fmt.Sprintf("Duration: %v\n", s.Duration.Round(time.Microsecond)))

	return sb.String()
}

// Result contains the output of a cleaning operation.
type Result struct {
	// Content is the cleaned text. When no signal fires it is the
	// original input unchanged.
	Content string `json:"content" yaml:"content"`

	// Changed is the number of distinct rule categories that altered
	// the text.
	Changed int `json:"changed" yaml:"changed"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}
