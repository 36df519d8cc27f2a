package cache

// ScopedKeyer prefixes every key of an inner Keyer. The HTTP service scopes
// keys per settings profile so two profiles never share artifacts.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "profile:team:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (the default keyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

func (k *ScopedKeyer) AssetKey(id string) string {
	return k.prefix + k.inner.AssetKey(id)
}

func (k *ScopedKeyer) ArtifactKey(imageHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(imageHash, opts)
}
