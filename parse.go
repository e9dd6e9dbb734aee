package tagged

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// Parse parses s the way V parses itself and wraps the result:
//
//	gw, err := tagged.Parse[gatewayTag, netip.Addr]("192.168.0.1")
//
// When *V implements encoding.TextUnmarshaler that is used; otherwise the
// basic kinds are parsed with strconv in base 10. A value with its own
// String form but no TextUnmarshaler, such as time.Duration, cannot be
// parsed back and yields ErrNotParseable. Errors from the value's parser are
// returned unchanged.
func Parse[T TransparentParse, V any](s string) (Type[V, T], error) {
	var v V
	if err := parseValue(&v, s); err != nil {
		return Type[V, T]{}, err
	}
	return Type[V, T]{v: v}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler for markers declaring
// TransparentParse or TransparentDeserialize; encoding/json uses it for map
// keys. On error t is left untouched.
func (t *Type[V, T]) UnmarshalText(text []byte) error {
	if !declares[T, TransparentParse]() && !declaresDeserialize[T]() {
		return undeclared[V, T]("TransparentParse")
	}
	var v V
	if err := parseValue(&v, string(text)); err != nil {
		return err
	}
	t.v = v
	return nil
}

func parseValue(dst any, s string) error {
	if u, ok := dst.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(s))
	}
	if _, ok := dst.(fmt.Stringer); ok {
		return ErrNotParseable
	}

	rv := reflect.ValueOf(dst).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(s, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetComplex(c)
	default:
		return ErrNotParseable
	}
	return nil
}
