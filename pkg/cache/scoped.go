package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments or
// test runs can share one backend without colliding.
//
// Example usage:
//
//	// Keys for a staging deployment
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// EnumerationKey generates a prefixed key for an enumeration result table.
func (k *ScopedKeyer) EnumerationKey(genus int) string {
	return k.prefix + k.inner.EnumerationKey(genus)
}

// DiagramKey generates a prefixed key for a rendered diagram.
func (k *ScopedKeyer) DiagramKey(word, format string) string {
	return k.prefix + k.inner.DiagramKey(word, format)
}
