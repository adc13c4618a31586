package cache

// ScopedKeyer wraps a Keyer with a prefix, so several deployments can
// share one Redis without seeing each other's entries.
//
//	k := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "synsetree:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a Keyer that prefixes every key of inner.
// A nil inner uses the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) SourceKey(url string) string {
	return k.prefix + k.inner.SourceKey(url)
}
