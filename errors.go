package tagged

import (
	"errors"
	"fmt"
)

// ErrNotParseable is returned by Parse and UnmarshalText when the wrapped
// value type has no textual form to parse: it does not implement
// encoding.TextUnmarshaler through its pointer, and it either is not a basic
// kind or formats itself through a String method.
var ErrNotParseable = errors.New("tagged: value type has no parse logic")

// CapabilityError is returned by the encoding methods of Type when the
// marker does not declare the capability the encoder asked for. The
// compile-time gated functions never return it.
type CapabilityError struct {
	// Type is the wrapper type as printed by %T.
	Type string

	// Capability is the interface the marker is missing, e.g. "TransparentSerialize".
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("tagged: %s does not declare %s", e.Type, e.Capability)
}

func undeclared[V, T any](capability string) error {
	return &CapabilityError{
		Type:       fmt.Sprintf("%T", Type[V, T]{}),
		Capability: capability,
	}
}
