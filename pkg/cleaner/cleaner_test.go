package cleaner

import (
	"errors"
	"strings"
	"testing"
)

// --- NoopCleaner Tests ---

func TestNoopCleaner_Clean(t *testing.T) {
	c := NewNoop()

	tests := []struct {
		name  string
		input string
	}{
		{"empty_string", ""},
		{"plain_text", "Hello, World!"},
		{"markdown_content", "# Title\n\n- item"},
		{"whitespace", "  \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Errorf("Clean() error = %v, want nil", err)
			}
			if got != tt.input {
				t.Errorf("Clean() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestNoopCleaner_Name(t *testing.T) {
	c := NewNoop()
	if got := c.Name(); got != "noop" {
		t.Errorf("Name() = %q, want %q", got, "noop")
	}
}

// --- EscapeCleaner Tests ---

func TestEscapeCleaner_Clean(t *testing.T) {
	c := NewEscape()

	got, err := c.Clean(`\# Title`)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "# Title" {
		t.Errorf("Clean() = %q, want %q", got, "# Title")
	}
}

func TestEscapeCleaner_CleanInputPassesThrough(t *testing.T) {
	c := NewEscape()

	input := "# Already clean\n\n- item"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != input {
		t.Errorf("Clean() = %q, want unchanged", got)
	}
}

func TestEscapeCleaner_Name(t *testing.T) {
	if got := NewEscape().Name(); got != "escape" {
		t.Errorf("Name() = %q, want %q", got, "escape")
	}
}

// --- NormalizeCleaner Tests ---

func TestNormalizeCleaner_Clean(t *testing.T) {
	c := NewNormalize()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"bare_cr", "a\rb", "a\nb"},
		{"trailing_spaces", "a  \nb\t\n", "a\nb\n"},
		{"blank_line_runs", "a\n\n\n\n\nb", "a\n\nb"},
		{"already_clean", "a\n\nb\n", "a\n\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCleaner_Name(t *testing.T) {
	if got := NewNormalize().Name(); got != "normalize" {
		t.Errorf("Name() = %q, want %q", got, "normalize")
	}
}

// --- ChainCleaner Tests ---

func TestChainCleaner_Empty(t *testing.T) {
	c := NewChain()

	input := "unchanged content"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if got != input {
		t.Errorf("Clean() = %q, want %q", got, input)
	}
}

func TestChainCleaner_EscapeThenNormalize(t *testing.T) {
	c := NewChain(NewEscape(), NewNormalize())

	input := "\\# Title\r\n\r\n\r\n\r\n\\- item\r\n"
	want := "# Title\n\n- item\n"

	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

// errorCleaner is a test cleaner that always returns an error
type errorCleaner struct{}

func (c *errorCleaner) Clean(text string) (string, error) {
	return "", errors.New("test error")
}

func (c *errorCleaner) Name() string {
	return "error"
}

func TestChainCleaner_ErrorPropagation(t *testing.T) {
	c := NewChain(NewNoop(), &errorCleaner{}, NewEscape())

	_, err := c.Clean("test")
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	if !strings.Contains(err.Error(), "test error") {
		t.Errorf("expected error containing 'test error', got %v", err)
	}
}

func TestChainCleaner_Name(t *testing.T) {
	tests := []struct {
		name     string
		cleaners []Cleaner
		want     string
	}{
		{"empty", []Cleaner{}, "chain()"},
		{"single", []Cleaner{NewNoop()}, "chain(noop)"},
		{"double", []Cleaner{NewEscape(), NewNormalize()}, "chain(escape->normalize)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChain(tt.cleaners...)
			if got := c.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
