package escape

import "regexp"

// signal is a read-only detector for one class of escaped markdown.
// Signals are order-independent; they only decide whether the rule
// table runs at all.
type signal struct {
	name string
	re   *regexp.Regexp
}

var signals = []signal{
	{"header", regexp.MustCompile(`\\#{1,6}`)},
	{"list", regexp.MustCompile(`\\[-*+]\s`)},
	{"emphasis", regexp.MustCompile(`\\\*.*\\\*`)},
	{"ordinal", regexp.MustCompile(`\\\d+\.`)},
	{"blockquote", regexp.MustCompile(`\\>`)},
	{"link", regexp.MustCompile(`\\\[.*\\\]`)},
	{"plus", regexp.MustCompile(`\\\+`)},
	{"underscore", regexp.MustCompile(`\w\\_|\\_\w`)},
	{"trailing-backslash", regexp.MustCompile(`(?m)\\[ \t]*$`)},
}

// Detect returns the names of the escape signals present in text.
// An empty result means the text is treated as already clean.
func Detect(text string) []string {
	if text == "" {
		return nil
	}
	var found []string
	for _, s := range signals {
		if s.re.MatchString(text) {
			found = append(found, s.name)
		}
	}
	return found
}

// HasEscaping reports whether at least one escape signal matches.
func HasEscaping(text string) bool {
	if text == "" {
		return false
	}
	for _, s := range signals {
		if s.re.MatchString(text) {
			return true
		}
	}
	return false
}
