// Package cleaner provides interfaces and implementations for cleaning
// markdown text. Cleaners transform markdown that came out of an export
// pipeline into well-formed markdown.
package cleaner

// Cleaner transforms markdown text into a cleaner form.
// Implementations must accept any string, including empty input.
type Cleaner interface {
	// Clean transforms the input text.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
