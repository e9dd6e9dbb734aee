package tagged

import "cmp"

// Equal reports whether a and b hold equal values according to ==.
func Equal[V comparable, T ImplementEqual](a, b Type[V, T]) bool {
	return a.v == b.v
}

// Equivalent reports whether a and b hold equal values according to the
// value's own Equal method.
func Equivalent[V Equaler[V], T ImplementEqual](a, b Type[V, T]) bool {
	return a.v.Equal(b.v)
}

// StrictEqual is Equal for markers that additionally declare the equality
// to be total, which Compare relies on.
func StrictEqual[V comparable, T interface {
	ImplementEqual
	ImplementStrictEqual
}](a, b Type[V, T]) bool {
	return a.v == b.v
}

// Less reports whether a's value is less than b's.
func Less[V cmp.Ordered, T interface {
	ImplementEqual
	ImplementPartialOrd
}](a, b Type[V, T]) bool {
	return cmp.Less(a.v, b.v)
}

// Compare returns -1, 0 or +1 following cmp.Compare on the wrapped values.
// It has the signature slices.SortFunc expects:
//
//	slices.SortFunc(ids, tagged.Compare[int64, userIDTag])
func Compare[V cmp.Ordered, T interface {
	ImplementEqual
	ImplementStrictEqual
	ImplementPartialOrd
	ImplementOrd
}](a, b Type[V, T]) int {
	return cmp.Compare(a.v, b.v)
}
