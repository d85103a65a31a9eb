package wrap

// Unbounded disables table rotation: entries live for the life of the Trie.
const Unbounded = 0

// Trie is a structural composite-key store: one table level per argument,
// so two key paths hit the same slot only when every component compares
// equal. A stored path must not be a proper prefix of another stored path:
// leaves and subtree tables share slots, so prefix paths would collide.
// Memoized guarantees this by prefixing every path with the tuple length.
// Not safe for concurrent use.
//
// When bounded, the Trie keeps two generations of tables. Filling the head
// generation rotates to a fresh one while the previous generation stays
// readable, so recently stored entries survive a rotation.
type Trie[O any] struct {
	tables  [2]map[Key]any
	headIdx int
	size    uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	return &Trie[O]{
		tables:  [2]map[Key]any{{}, {}},
		maxSize: maxSize,
	}
}

func (t *Trie[O]) Load(keys []Key) (O, bool) {
	if v, ok := lookup[O](t.tables[t.headIdx], keys); ok {
		return v, true
	}
	if t.maxSize == Unbounded {
		var zero O
		return zero, false
	}
	return lookup[O](t.tables[1-t.headIdx], keys)
}

func (t *Trie[O]) Store(keys []Key, value O) {
	if len(keys) == 0 {
		panic("store: empty keys")
	}
	if t.maxSize != Unbounded && t.size == t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.tables[t.headIdx] = map[Key]any{}
		t.size = 0
	}
	table := t.tables[t.headIdx]
	for _, k := range keys[:len(keys)-1] {
		v, ok := table[k]
		if !ok {
			next := map[Key]any{}
			table[k] = next
			v = next
		}
		table = v.(map[Key]any)
	}
	table[keys[len(keys)-1]] = value
	t.size++
}

func lookup[O any](table map[Key]any, keys []Key) (O, bool) {
	var zero O
	if len(keys) == 0 {
		panic("lookup: empty keys")
	}
	for _, k := range keys[:len(keys)-1] {
		v, ok := table[k]
		if !ok {
			return zero, false
		}
		table = v.(map[Key]any)
	}
	v, ok := table[keys[len(keys)-1]]
	if !ok {
		return zero, false
	}
	return v.(O), true
}
