package cleaner

import (
	"strings"
)

// ChainCleaner applies multiple cleaners in sequence.
// This allows composing cleaners for multi-stage processing.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a new cleaner that applies multiple cleaners in
// sequence, in the order provided.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    cleaner.NewEscape(),
//	    cleaner.NewNormalize(),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	return &ChainCleaner{
		cleaners: cleaners,
	}
}

// Clean applies all cleaners in sequence.
func (c *ChainCleaner) Clean(text string) (string, error) {
	var err error
	for _, cleaner := range c.cleaners {
		text, err = cleaner.Clean(text)
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, cleaner := range c.cleaners {
		names[i] = cleaner.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
