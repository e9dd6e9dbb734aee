package tagged

import "hash/maphash"

// Hash returns the hash of the wrapped value. Wrappers holding equal values
// hash equally for the same seed, and the result is the same as hashing the
// bare value.
func Hash[V comparable, T ImplementHash](seed maphash.Seed, t Type[V, T]) uint64 {
	return maphash.Comparable(seed, t.v)
}

// WriteHash adds the wrapped value to h, so wrappers can take part in
// hashing a larger structure.
func WriteHash[V comparable, T ImplementHash](h *maphash.Hash, t Type[V, T]) {
	maphash.WriteComparable(h, t.v)
}
