package tagged

// Clone returns a wrapper around a deep copy of t's value. V must have a
// Clone method; plain values without one use Copy, or CloneFunc when a
// function does the copying.
func Clone[V Cloner[V], T ImplementClone](t Type[V, T]) Type[V, T] {
	return Type[V, T]{v: t.v.Clone()}
}

// CloneFunc clones t's value with clone, for value types that are copied by
// a function rather than a method:
//
//	tagged.CloneFunc(tags, slices.Clone)
func CloneFunc[V any, T ImplementClone](t Type[V, T], clone func(V) V) Type[V, T] {
	return Type[V, T]{v: clone(t.v)}
}

// Copy returns t copied by assignment. It is meant for values that own no
// references, where assignment already is a full copy.
func Copy[V any, T interface {
	ImplementClone
	ImplementCopy
}](t Type[V, T]) Type[V, T] {
	return t
}

// Default returns the wrapper around the zero value of V.
func Default[T ImplementDefault, V any]() Type[V, T] {
	return Type[V, T]{}
}
