//go:build !tagged_noserde

package declare

type Serialize struct{}

func (Serialize) TransparentSerialize() {}

type Deserialize struct{}

func (Deserialize) TransparentDeserialize() {}
