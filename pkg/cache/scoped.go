package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when several projects or tenants share one cache backend and
// need separate key spaces.
//
// Example usage:
//
//	// Project-specific keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "office-7f:")
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

// SolveKey generates a prefixed key for a solved layout.
func (k *ScopedKeyer) SolveKey(requestHash string, opts SolveKeyOpts) string {
	return k.prefix + k.inner.SolveKey(requestHash, opts)
}

// ScoreKey generates a prefixed key for a score report.
func (k *ScopedKeyer) ScoreKey(layoutHash string, opts ScoreKeyOpts) string {
	return k.prefix + k.inner.ScoreKey(layoutHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
