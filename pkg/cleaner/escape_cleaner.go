package cleaner

import (
	"github.com/descape/descape/pkg/cleaner/escape"
)

// EscapeCleaner reverses backslash-escaped markdown using the escape
// reversal engine. It adapts the engine's (text, count) contract to the
// Cleaner interface; callers who need the change count or telemetry
// should use pkg/cleaner/escape directly.
type EscapeCleaner struct {
	engine *escape.Cleaner
}

// NewEscape creates a new escape reversal cleaner.
func NewEscape() *EscapeCleaner {
	return &EscapeCleaner{engine: escape.New()}
}

// Clean reverses escaped markdown. It never returns an error.
func (c *EscapeCleaner) Clean(text string) (string, error) {
	cleaned, _ := c.engine.Clean(text)
	return cleaned, nil
}

// Name returns the cleaner type.
func (c *EscapeCleaner) Name() string {
	return "escape"
}
