//go:build !tagged_noserde && !tagged_nopermissive

package declare

func (Permissive) TransparentSerialize() {}
func (Permissive) TransparentDeserialize() {}
