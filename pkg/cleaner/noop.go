package cleaner

// NoopCleaner passes content through without modification.
// Use this when a pipeline stage should be disabled without
// restructuring the chain.
type NoopCleaner struct{}

// NewNoop creates a new no-op cleaner.
func NewNoop() *NoopCleaner {
	return &NoopCleaner{}
}

// Clean returns the input unchanged.
func (c *NoopCleaner) Clean(text string) (string, error) {
	return text, nil
}

// Name returns the cleaner type.
func (c *NoopCleaner) Name() string {
	return "noop"
}
