package tagged

// Type holds exactly one V. T is a marker type that is never instantiated by
// this package; it only gives the wrapper a distinct identity and carries the
// capability declarations the functions in this package are constrained on.
//
// The zero Type holds the zero V.
type Type[V any, T any] struct {
	v V
}

// New wraps v. The marker comes first so the value type can be inferred:
//
//	id := tagged.New[userIDTag](int64(42))
func New[T any, V any](v V) Type[V, T] {
	return Type[V, T]{v: v}
}

// Inner returns the wrapped value.
func Inner[V any, T InnerAccess](t Type[V, T]) V {
	return t.v
}

// Deref returns the wrapped value so its methods can be called directly:
//
//	strings.HasPrefix(tagged.Deref(url), "https://")
func Deref[V any, T ImplementDeref](t Type[V, T]) V {
	return t.v
}

// From converts a raw value into the wrapper. It differs from New only in
// requiring the marker to opt into implicit conversion.
func From[T FromInner, V any](v V) Type[V, T] {
	return Type[V, T]{v: v}
}

// FromSlice converts each raw value in vs. A nil slice stays nil.
func FromSlice[T FromInner, V any](vs []V) []Type[V, T] {
	if vs == nil {
		return nil
	}
	out := make([]Type[V, T], len(vs))
	for i, v := range vs {
		out[i] = Type[V, T]{v: v}
	}
	return out
}

// Map applies f to the wrapped value and keeps the marker.
func Map[V, U any, T ValueMap](t Type[V, T], f func(V) U) Type[U, T] {
	return Type[U, T]{v: f(t.v)}
}

// TryMap is Map for fallible functions. The error from f is returned as is.
func TryMap[V, U any, T ValueMap](t Type[V, T], f func(V) (U, error)) (Type[U, T], error) {
	u, err := f(t.v)
	if err != nil {
		return Type[U, T]{}, err
	}
	return Type[U, T]{v: u}, nil
}

// Ref returns a wrapper around a pointer to t's value, under the same marker.
func Ref[V any, T AsRef](t *Type[V, T]) Type[*V, T] {
	return Type[*V, T]{v: &t.v}
}

// CloneRef turns a wrapped pointer back into an owned value. Values that
// implement Cloner are copied with Clone; everything else is copied by
// assignment. A nil pointer panics, as dereferencing it would.
func CloneRef[V any, T Cloned](t Type[*V, T]) Type[V, T] {
	if c, ok := any(*t.v).(Cloner[V]); ok {
		return Type[V, T]{v: c.Clone()}
	}
	return Type[V, T]{v: *t.v}
}
