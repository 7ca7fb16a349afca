package cleaner

import (
	"regexp"
	"strings"
)

var (
	crlfOrCR           = regexp.MustCompile("\r\n?")
	trailingWhitespace = regexp.MustCompile(`[ \t]+\n`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeCleaner tidies whitespace without touching content:
// CRLF/CR line endings become LF, trailing whitespace is stripped from
// each line, and runs of blank lines collapse to a single blank line.
type NormalizeCleaner struct{}

// NewNormalize creates a new whitespace normalization cleaner.
func NewNormalize() *NormalizeCleaner {
	return &NormalizeCleaner{}
}

// Clean normalizes line endings and blank lines.
func (c *NormalizeCleaner) Clean(text string) (string, error) {
	if text == "" {
		return text, nil
	}

	out := crlfOrCR.ReplaceAllString(text, "\n")

	// Add a temporary trailing newline so the last line is covered.
	trailing := strings.HasSuffix(out, "\n")
	if !trailing {
		out += "\n"
	}
	out = trailingWhitespace.ReplaceAllString(out, "\n")
	out = multipleBlankLines.ReplaceAllString(out, "\n\n")
	if !trailing {
		out = strings.TrimSuffix(out, "\n")
	}

	return out, nil
}

// Name returns the cleaner type.
func (c *NormalizeCleaner) Name() string {
	return "normalize"
}
