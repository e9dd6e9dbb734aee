package tagged

// Each capability is a single no-op method on the marker type. The method
// name matches the interface name so that a declaration reads the same
// whether it is written by hand or emitted by taggedgen:
//
//	func (userIDTag) ImplementEqual() {}

// ImplementDefault enables Default.
type ImplementDefault interface{ ImplementDefault() }

// ImplementClone enables Clone and CloneFunc.
type ImplementClone interface{ ImplementClone() }

// ImplementCopy enables Copy. Copy also requires ImplementClone.
type ImplementCopy interface{ ImplementCopy() }

// ImplementEqual enables Equal and Equivalent.
type ImplementEqual interface{ ImplementEqual() }

// ImplementStrictEqual enables StrictEqual. It also requires ImplementEqual.
type ImplementStrictEqual interface{ ImplementStrictEqual() }

// ImplementPartialOrd enables Less. It also requires ImplementEqual.
type ImplementPartialOrd interface{ ImplementPartialOrd() }

// ImplementOrd enables Compare. It also requires ImplementEqual,
// ImplementStrictEqual and ImplementPartialOrd.
type ImplementOrd interface{ ImplementOrd() }

// ImplementHash enables Hash and WriteHash.
type ImplementHash interface{ ImplementHash() }

// ImplementDeref enables Deref.
type ImplementDeref interface{ ImplementDeref() }

// ImplementAdd enables Add.
type ImplementAdd interface{ ImplementAdd() }

// ImplementSub enables Sub.
type ImplementSub interface{ ImplementSub() }

// ImplementMul enables Mul.
type ImplementMul interface{ ImplementMul() }

// ImplementDiv enables Div.
type ImplementDiv interface{ ImplementDiv() }

// TransparentDebug makes %#v and %+v print the wrapped value's own
// debug representation. It also enables Debug.
type TransparentDebug interface{ TransparentDebug() }

// TransparentDisplay makes %v, %s, %d and friends print the wrapped value
// exactly as fmt prints it. It also enables Display and MarshalText.
type TransparentDisplay interface{ TransparentDisplay() }

// TransparentParse enables Parse and UnmarshalText.
type TransparentParse interface{ TransparentParse() }

// InnerAccess enables Inner.
type InnerAccess interface{ InnerAccess() }

// FromInner enables From and FromSlice.
type FromInner interface{ FromInner() }

// ValueMap enables Map and TryMap.
type ValueMap interface{ ValueMap() }

// Cloned enables CloneRef.
type Cloned interface{ Cloned() }

// AsRef enables Ref.
type AsRef interface{ AsRef() }

// Cloner is implemented by values that know how to deep-copy themselves.
type Cloner[V any] interface {
	Clone() V
}

// Equaler is implemented by values with their own notion of equality,
// such as time.Time.
type Equaler[V any] interface {
	Equal(V) bool
}

// Number is the set of value kinds Sub, Mul and Div accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Addable extends Number with strings, which Go also concatenates with +.
type Addable interface {
	Number | ~string
}

// declares reports whether the marker type T carries the capability C.
func declares[T, C any]() bool {
	var tag T
	_, ok := any(tag).(C)
	return ok
}
