// Package escape reverses backslash-escaped markdown as produced by
// export pipelines such as Google Docs' "Download as Markdown": \# Title
// becomes # Title, \- item becomes - item, project\_name becomes
// project_name, and so on.
//
// A heuristic classifier decides whether the text was escaped at all; if
// no signal fires the text is returned unchanged. The signals are a
// best-effort detector, not a grammar: legitimate backslash usage that
// happens to match one (a literal \+1 in prose, say) is rewritten. That
// false-positive risk is inherent to the heuristic. Intentional double
// backslashes (\\#) are always preserved.
package escape

import "time"

// Cleaner is the escape reversal engine. The zero value is ready to use;
// it holds no state across calls and is safe for concurrent use.
type Cleaner struct{}

// New creates a new escape reversal engine.
func New() *Cleaner {
	return &Cleaner{}
}

// Clean reverses escaped markdown in text. It returns the rewritten text
// and the number of distinct rule categories that changed it. Text with
// no escape signal is returned verbatim with a count of zero, as is
// empty input. Clean never fails: rules that do not match are no-ops,
// and cleaning already-clean output produces no further change.
func (c *Cleaner) Clean(text string) (string, int) {
	if text == "" {
		return text, 0
	}
	if !HasEscaping(text) {
		return text, 0
	}
	out, fired := applyRules(text)
	return out, len(fired)
}

// CleanWithStats is Clean plus telemetry: which signals matched, which
// rule categories fired, sizes and timing.
func (c *Cleaner) CleanWithStats(text string) *Result {
	start := time.Now()

	stats := &Stats{InputBytes: len(text)}
	result := &Result{Content: text, Stats: stats}

	if text == "" {
		stats.OutputBytes = 0
		stats.Duration = time.Since(start)
		return result
	}

	stats.Signals = Detect(text)
	if len(stats.Signals) == 0 {
		stats.OutputBytes = len(text)
		stats.Duration = time.Since(start)
		return result
	}

	out, fired := applyRules(text)
	result.Content = out
	result.Changed = len(fired)
	stats.CategoriesFired = fired
	stats.OutputBytes = len(out)
	stats.Duration = time.Since(start)
	return result
}

// Clean is a convenience wrapper around a zero-value Cleaner.
func Clean(text string) (string, int) {
	return (&Cleaner{}).Clean(text)
}
