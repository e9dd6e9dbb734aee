//go:build !tagged_nopermissive

package tagged

// Permissive is satisfied by markers that declare every capability, as
// taggedgen's "//tagged:permissive" directive and declare.Permissive do.
type Permissive interface {
	ImplementDefault
	ImplementClone
	ImplementCopy
	ImplementEqual
	ImplementStrictEqual
	ImplementPartialOrd
	ImplementOrd
	ImplementHash
	ImplementDeref
	ImplementAdd
	ImplementSub
	ImplementMul
	ImplementDiv
	TransparentDebug
	TransparentDisplay
	TransparentParse
	InnerAccess
	FromInner
	ValueMap
	Cloned
	AsRef
	serdeCapabilities
}
