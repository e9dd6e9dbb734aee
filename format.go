package tagged

import (
	"encoding"
	"fmt"
)

// Format implements fmt.Formatter. %#v and %+v are debug verbs and need
// TransparentDebug; every other verb needs TransparentDisplay. Flags, width
// and precision are passed through to the wrapped value unchanged. Without
// the declaration the output is the bad-verb placeholder
// "%!v(tagged.Type[...])" and the wrapped value is not printed.
func (t Type[V, T]) Format(f fmt.State, verb rune) {
	debug := verb == 'v' && (f.Flag('#') || f.Flag('+'))
	switch {
	case debug && declares[T, TransparentDebug]():
		fmt.Fprintf(f, fmt.FormatString(f, verb), t.v)
	case !debug && declares[T, TransparentDisplay]():
		fmt.Fprintf(f, fmt.FormatString(f, verb), t.v)
	default:
		fmt.Fprintf(f, "%%!%c(%T)", verb, t)
	}
}

// Display returns the wrapped value formatted with %v.
func Display[V any, T TransparentDisplay](t Type[V, T]) string {
	return fmt.Sprint(t.v)
}

// Debug returns the wrapped value formatted with %#v.
func Debug[V any, T TransparentDebug](t Type[V, T]) string {
	return fmt.Sprintf("%#v", t.v)
}

// MarshalText implements encoding.TextMarshaler for markers declaring
// TransparentDisplay or TransparentSerialize; encoding/json uses it for map
// keys. Values implementing encoding.TextMarshaler encode themselves; others
// use their %v form.
func (t Type[V, T]) MarshalText() ([]byte, error) {
	if !declares[T, TransparentDisplay]() && !declaresSerialize[T]() {
		return nil, undeclared[V, T]("TransparentDisplay")
	}
	if m, ok := any(t.v).(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}
	return []byte(fmt.Sprint(t.v)), nil
}
