package gvariant

import "sync"

// sigCacheEntry is the memoized result of compiling a signature
// string into a Value codec.
type sigCacheEntry struct {
	codec Codec[Value]
	err   error
}

// signatureCache is a pull-through cache of signature strings to
// their compiled Value codec, keyed by the canonical string form of
// the signature. Compiling a signature walks its whole grammar tree,
// so callers that parse the same signature repeatedly (e.g. once per
// decoded message of a given shape) benefit from memoizing the
// result.
type signatureCache struct {
	m sync.Map
}

var signatures signatureCache

func (c *signatureCache) get(sig string) (sigCacheEntry, bool) {
	v, ok := c.m.Load(sig)
	if !ok {
		return sigCacheEntry{}, false
	}
	return v.(sigCacheEntry), true
}

func (c *signatureCache) set(sig string, e sigCacheEntry) {
	// LoadOrStore rather than Store: if two goroutines race to compile
	// the same signature, keep whichever result was stored first so
	// that callers holding either result see a consistent codec.
	c.m.LoadOrStore(sig, e)
}
