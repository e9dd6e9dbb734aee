//go:build !tagged_nopermissive

package declare

// Permissive declares every capability at once.
type Permissive struct{}

func (Permissive) ImplementDefault() {}
func (Permissive) ImplementClone() {}
func (Permissive) ImplementCopy() {}
func (Permissive) ImplementEqual() {}
func (Permissive) ImplementStrictEqual() {}
func (Permissive) ImplementPartialOrd() {}
func (Permissive) ImplementOrd() {}
func (Permissive) ImplementHash() {}
func (Permissive) ImplementDeref() {}
func (Permissive) ImplementAdd() {}
func (Permissive) ImplementSub() {}
func (Permissive) ImplementMul() {}
func (Permissive) ImplementDiv() {}
func (Permissive) TransparentDebug() {}
func (Permissive) TransparentDisplay() {}
func (Permissive) TransparentParse() {}
func (Permissive) InnerAccess() {}
func (Permissive) FromInner() {}
func (Permissive) ValueMap() {}
func (Permissive) Cloned() {}
func (Permissive) AsRef() {}
