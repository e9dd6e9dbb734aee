//go:build !tagged_noserde

package tagged

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// TransparentSerialize makes the wrapper encode exactly as its value does
// (JSON and YAML). It also enables EncodeJSON.
type TransparentSerialize interface{ TransparentSerialize() }

// TransparentDeserialize makes the wrapper decode exactly as its value does
// (JSON and YAML). It also enables DecodeJSON.
type TransparentDeserialize interface{ TransparentDeserialize() }

type serdeCapabilities interface {
	TransparentSerialize
	TransparentDeserialize
}

func declaresSerialize[T any]() bool   { return declares[T, TransparentSerialize]() }
func declaresDeserialize[T any]() bool { return declares[T, TransparentDeserialize]() }

// EncodeJSON returns the JSON encoding of the wrapped value.
func EncodeJSON[V any, T TransparentSerialize](t Type[V, T]) ([]byte, error) {
	return json.Marshal(t.v)
}

// DecodeJSON decodes data into a fresh V and wraps it. The decoder's error
// is returned unchanged.
func DecodeJSON[T TransparentDeserialize, V any](data []byte) (Type[V, T], error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return Type[V, T]{}, err
	}
	return Type[V, T]{v: v}, nil
}

// MarshalJSON implements json.Marshaler for markers declaring
// TransparentSerialize.
func (t Type[V, T]) MarshalJSON() ([]byte, error) {
	if !declares[T, TransparentSerialize]() {
		return nil, undeclared[V, T]("TransparentSerialize")
	}
	return json.Marshal(t.v)
}

// UnmarshalJSON implements json.Unmarshaler for markers declaring
// TransparentDeserialize. The value is decoded into a fresh V, so the result
// is what V's own decoder produces for data; on error t is left untouched.
// JSON null is applied to the held value as V's decoder applies it, which
// leaves non-nillable values unchanged.
func (t *Type[V, T]) UnmarshalJSON(data []byte) error {
	if !declares[T, TransparentDeserialize]() {
		return undeclared[V, T]("TransparentDeserialize")
	}
	if string(data) == "null" {
		return json.Unmarshal(data, &t.v)
	}
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	t.v = v
	return nil
}

// MarshalYAML implements yaml.Marshaler for markers declaring
// TransparentSerialize.
func (t Type[V, T]) MarshalYAML() (any, error) {
	if !declares[T, TransparentSerialize]() {
		return nil, undeclared[V, T]("TransparentSerialize")
	}
	return t.v, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for markers declaring
// TransparentDeserialize.
func (t *Type[V, T]) UnmarshalYAML(node *yaml.Node) error {
	if !declares[T, TransparentDeserialize]() {
		return undeclared[V, T]("TransparentDeserialize")
	}
	var v V
	if err := node.Decode(&v); err != nil {
		return err
	}
	t.v = v
	return nil
}
