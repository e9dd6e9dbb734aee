//go:build tagged_noserde

package tagged

type serdeCapabilities interface{}

func declaresSerialize[T any]() bool   { return false }
func declaresDeserialize[T any]() bool { return false }
