package wrap

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// RistrettoCache is a bounded, approximately-LRU alternative to Trie. Keys
// are collapsed to a single xxhash digest of the rendered argument tuple, so
// it shares the digest keying caveat of MemoizeHashed.
type RistrettoCache[O any] struct {
	cache *ristretto.Cache[uint64, O]
}

func NewRistrettoCache[O any](maxEntries int64) (*RistrettoCache[O], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, O]{
		NumCounters: maxEntries * 10, // number of keys to track frequency of.
		MaxCost:     maxEntries,
		BufferItems: 64, // number of keys per Get buffer.
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoCache[O]{cache: cache}, nil
}

func (r *RistrettoCache[O]) Load(keys []Key) (O, bool) {
	return r.cache.Get(digestKeys(keys))
}

func (r *RistrettoCache[O]) Store(keys []Key, value O) {
	r.cache.Set(digestKeys(keys), value, 1)
	// ristretto applies Sets asynchronously; Wait keeps load-after-store
	// deterministic for the synchronous callers this package serves.
	r.cache.Wait()
}
