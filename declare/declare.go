// Package declare holds embeddable zero-size structs, one per capability of
// package tagged. Embedding one in a marker type declares the capability by
// hand, without running taggedgen:
//
//	type userIDTag struct {
//		declare.Equal
//		declare.Hash
//		declare.Display
//	}
//
// The capability group structs are named after the operation they unlock
// (Inner, From, Map, ClonedRef, Ref). A struct embedded under its method's
// name would shadow the method.
//
// Embedding the same capability twice, for example Permissive together with
// Equal, makes the promoted method ambiguous and the capability is lost.
package declare

type Default struct{}

func (Default) ImplementDefault() {}

type Clone struct{}

func (Clone) ImplementClone() {}

type Copy struct{}

func (Copy) ImplementCopy() {}

type Equal struct{}

func (Equal) ImplementEqual() {}

type StrictEqual struct{}

func (StrictEqual) ImplementStrictEqual() {}

type PartialOrd struct{}

func (PartialOrd) ImplementPartialOrd() {}

type Ord struct{}

func (Ord) ImplementOrd() {}

type Hash struct{}

func (Hash) ImplementHash() {}

type Deref struct{}

func (Deref) ImplementDeref() {}

type Add struct{}

func (Add) ImplementAdd() {}

type Sub struct{}

func (Sub) ImplementSub() {}

type Mul struct{}

func (Mul) ImplementMul() {}

type Div struct{}

func (Div) ImplementDiv() {}

type Debug struct{}

func (Debug) TransparentDebug() {}

type Display struct{}

func (Display) TransparentDisplay() {}

type Parse struct{}

func (Parse) TransparentParse() {}

type Inner struct{}

func (Inner) InnerAccess() {}

type From struct{}

func (From) FromInner() {}

type Map struct{}

func (Map) ValueMap() {}

type ClonedRef struct{}

func (ClonedRef) Cloned() {}

type Ref struct{}

func (Ref) AsRef() {}
