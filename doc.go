// Package tagged provides newtype wrappers around an existing value type,
// distinguished by a marker ("tag") type, so that values sharing a
// representation cannot be mixed up:
//
//	type userIDTag struct{}
//	type groupIDTag struct{}
//
//	type UserID = tagged.Type[int64, userIDTag]
//	type GroupID = tagged.Type[int64, groupIDTag]
//
// A UserID is not assignable to a GroupID even though both hold an int64.
//
// The wrapper exposes nothing of the wrapped value by default. A marker type
// opts into each capability by implementing the matching no-op method from
// this package's capability interfaces (ImplementEqual, TransparentDisplay,
// InnerAccess, ...). That can be done by hand, by embedding the structs from
// package declare, or by running the taggedgen generator on
// "//tagged:" directives:
//
//	//go:generate go run github.com/shinji-kodama/tagged/cmd/taggedgen generate
//
//	//tagged:implement Equal, Hash
//	//tagged:transparent Display, Parse
//	//tagged:capability inner_access
//	type userIDTag struct{}
//
// Structural capabilities are generic functions constrained on both the
// value type and the marker type, so a call the marker did not declare (or
// the value type cannot support) does not compile:
//
//	tagged.Equal(a, b) // requires V comparable and T ImplementEqual
//
// Formatting and encoding are reached through fmt, encoding/json,
// encoding.TextMarshaler and yaml.v3, which dispatch at run time. The wrapper
// implements those interfaces and consults the marker when called: a
// declared capability delegates verbatim to the wrapped value, an undeclared
// one prints a placeholder (fmt) or fails with *CapabilityError (encoders).
//
// Build tags:
//   - tagged_noserde removes TransparentSerialize, TransparentDeserialize and
//     the JSON/YAML methods.
//   - tagged_nopermissive removes the Permissive shortcut.
package tagged
