package wrap

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Key is one component of a composite cache key, one per argument.
type Key = any

// Cache stores computed results under a composite key path. Implementations
// are not required to retain every entry; a miss only costs a recomputation.
type Cache[O any] interface {
	Load(keys []Key) (O, bool)
	Store(keys []Key, value O)
}

// Memoized caches the result of the inner Invokable per argument tuple. The
// inner function must be pure: the cache is consulted before every call and
// entries are never invalidated.
type Memoized[T any] struct {
	inner Invokable[T]
	cache Cache[T]
}

// Memoize wraps inner with an unbounded structural-key cache.
func Memoize[T any](inner Invokable[T]) *Memoized[T] {
	return MemoizeWith(inner, NewTrie[T](Unbounded))
}

// MemoizeWith wraps inner with an explicit cache, e.g. a bounded Trie or a
// RistrettoCache.
func MemoizeWith[T any](inner Invokable[T], cache Cache[T]) *Memoized[T] {
	return &Memoized[T]{inner: inner, cache: cache}
}

// MemoizeHashed keys the cache by a single xxhash digest of the rendered
// argument tuple instead of the structural key path. Distinct tuples whose
// digests collide share one cache slot.
func MemoizeHashed[T any](inner Invokable[T]) *Memoized[T] {
	return MemoizeWith[T](inner, hashedCache[T]{next: NewTrie[T](Unbounded)})
}

func (m *Memoized[T]) Meta() Meta { return m.inner.Meta() }

func (m *Memoized[T]) Invoke(args ...T) (T, error) {
	// the key path is prefixed with the tuple length, so tuples of
	// different arities never share a slot and the empty tuple still gets
	// a key of its own
	keys := make([]Key, len(args)+1)
	keys[0] = len(args)
	for i, arg := range args {
		keys[i+1] = keyOf(arg)
	}
	if v, ok := m.cache.Load(keys); ok {
		return v, nil
	}
	v, err := m.inner.Invoke(args...)
	if err != nil {
		// failures are not cached
		return v, err
	}
	m.cache.Store(keys, v)
	return v, nil
}

// keyOf falls back to the Stringer rendering for arguments that are not
// usable as map keys. Non-comparable arguments without a String method
// panic at first use.
func keyOf[T any](arg T) Key {
	if s, ok := any(arg).(fmt.Stringer); ok {
		return s.String()
	}
	return arg
}

type hashedCache[O any] struct {
	next Cache[O]
}

func (h hashedCache[O]) Load(keys []Key) (O, bool) {
	return h.next.Load([]Key{digestKeys(keys)})
}

func (h hashedCache[O]) Store(keys []Key, value O) {
	h.next.Store([]Key{digestKeys(keys)}, value)
}

func digestKeys(keys []Key) uint64 {
	d := xxhash.New()
	for _, k := range keys {
		fmt.Fprintf(d, "%v\x1f", k)
	}
	return d.Sum64()
}
