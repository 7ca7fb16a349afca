package escape

import (
	"reflect"
	"testing"
)

func TestCategories_Order(t *testing.T) {
	want := []Category{
		CategoryHeaders,
		CategoryLists,
		CategoryOrdinals,
		CategoryPlus,
		CategoryUnderscores,
		CategoryEmphasis,
		CategoryCode,
		CategoryLinks,
		CategoryHRules,
		CategoryBlockquotes,
		CategoryStrikethrough,
		CategoryTrailing,
		CategoryPunctuation,
	}
	if got := Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

// applyRules is exercised directly here so constructs without their own
// classifier signal (code spans, horizontal rules, strikethrough,
// residual punctuation) can be pinned in isolation.
func TestApplyRules(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantFired []Category
	}{
		{
			name:      "inline_code",
			input:     "run \\`go build\\` first",
			want:      "run `go build` first",
			wantFired: []Category{CategoryCode},
		},
		{
			// Same length in and out; firing is detected by content, so
			// the space normalization still counts.
			name:      "header_space_normalization_length_neutral",
			input:     "\\#Title\n",
			want:      "# Title\n",
			wantFired: []Category{CategoryHeaders},
		},
		{
			name:      "backslash_after_code_span",
			input:     "use `make`\\ here",
			want:      "use `make` here",
			wantFired: []Category{CategoryCode},
		},
		{
			name:      "horizontal_rule_dashes",
			input:     "above\n\\---\nbelow",
			want:      "above\n---\nbelow",
			wantFired: []Category{CategoryHRules},
		},
		{
			// Star runs are consumed by the residual emphasis rule,
			// which runs earlier; the output is the same.
			name:      "escaped_star_run",
			input:     "\\***\n",
			want:      "***\n",
			wantFired: []Category{CategoryEmphasis},
		},
		{
			// Underscore runs are consumed by the underscore rules.
			name:      "escaped_underscore_run",
			input:     "\\___\n",
			want:      "___\n",
			wantFired: []Category{CategoryUnderscores},
		},
		{
			name:      "strikethrough",
			input:     "\\~~gone~~ text",
			want:      "~~gone~~ text",
			wantFired: []Category{CategoryStrikethrough},
		},
		{
			name:      "strikethrough_both_markers",
			input:     "\\~~gone\\~~ text",
			want:      "~~gone~~ text",
			wantFired: []Category{CategoryStrikethrough},
		},
		{
			name:      "residual_punctuation",
			input:     `done\. next\, and\: also\; sure\! why\? q\"q a\&b`,
			want:      `done. next, and: also; sure! why? q"q a&b`,
			wantFired: []Category{CategoryPunctuation},
		},
		{
			name:      "lone_parens",
			input:     `call \(see above\)`,
			want:      "call (see above)",
			wantFired: []Category{CategoryLinks},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fired := applyRules(tt.input)
			if got != tt.want {
				t.Errorf("applyRules(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !reflect.DeepEqual(fired, tt.wantFired) {
				t.Errorf("applyRules(%q) fired = %v, want %v", tt.input, fired, tt.wantFired)
			}
		})
	}
}

// A double backslash is an intentional literal backslash plus character,
// never an escape to strip. Pinned per rule class.
func TestApplyRules_DoubleBackslashPreserved(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"header", `a\\# b`},
		{"list", `a \\- b`},
		{"ordinal", `a \\1. b`},
		{"plus", `a\\+b`},
		{"underscore", `a\\_b`},
		{"emphasis_star", `a\\*b\\*c`},
		{"code", "a\\\\`b"},
		{"bracket", `a\\[b\\]c`},
		{"paren", `a\\(b\\)c`},
		{"hrule", `\\---`},
		{"blockquote", `a \\> b`},
		{"strikethrough", `a\\~~b`},
		{"period", `a\\.b`},
		{"comma", `a\\,b`},
		{"quote", `a\\"b`},
		{"ampersand", `a\\&b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fired := applyRules(tt.input)
			if got != tt.input {
				t.Errorf("applyRules(%q) = %q, want unchanged", tt.input, got)
			}
			if len(fired) != 0 {
				t.Errorf("applyRules(%q) fired = %v, want none", tt.input, fired)
			}
		})
	}
}

func TestApplyRules_MixedLiteralAndEscape(t *testing.T) {
	// The escaped header is fixed while the literal backslash survives.
	input := `keep a\\. literal and fix \# this`
	want := `keep a\\. literal and fix # this`

	got, fired := applyRules(input)
	if got != want {
		t.Errorf("applyRules(%q) = %q, want %q", input, got, want)
	}
	if len(fired) != 1 || fired[0] != CategoryHeaders {
		t.Errorf("fired = %v, want [headers]", fired)
	}
}

func TestApplyRules_HeaderBeforeList(t *testing.T) {
	// # cannot be a valid list marker, so header unescaping on a line
	// never interacts with list unescaping on the same line.
	input := "\\# Title\n\\- item"
	want := "# Title\n- item"

	got, fired := applyRules(input)
	if got != want {
		t.Errorf("applyRules(%q) = %q, want %q", input, got, want)
	}
	wantFired := []Category{CategoryHeaders, CategoryLists}
	if !reflect.DeepEqual(fired, wantFired) {
		t.Errorf("fired = %v, want %v", fired, wantFired)
	}
}
