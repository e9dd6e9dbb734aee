// Package model defines the domain types for the taggedgen CLI.
//
// A Declaration is what taggedgen extracts from one marker type's
// //tagged: directives. The capability names, groups and generated method
// names defined here are the single source of truth shared by the directive
// parser, the code generator and the capabilities command.
package model

import (
	"fmt"
	"go/token"
	"slices"
	"strings"
)

// Group is the directive keyword a capability is listed under.
type Group string

const (
	// GroupImplement holds capabilities that forward a structural operation
	// of the value type (equality, hashing, arithmetic, ...).
	GroupImplement Group = "implement"

	// GroupTransparent holds capabilities whose textual or encoded form is
	// exactly the value type's own.
	GroupTransparent Group = "transparent"

	// GroupCapability holds conversions between the wrapper and its value.
	GroupCapability Group = "capability"
)

// String returns the directive keyword.
func (g Group) String() string {
	return string(g)
}

// IsValid checks whether the Group is one of the three directive groups.
func (g Group) IsValid() bool {
	switch g {
	case GroupImplement, GroupTransparent, GroupCapability:
		return true
	default:
		return false
	}
}

// Groups returns the directive groups in display order.
func Groups() []Group {
	return []Group{GroupImplement, GroupTransparent, GroupCapability}
}

// Capability is the canonical name of one declarable capability, as it is
// written in a directive.
type Capability string

const (
	CapDefault     Capability = "Default"
	CapClone       Capability = "Clone"
	CapCopy        Capability = "Copy"
	CapEqual       Capability = "Equal"
	CapStrictEqual Capability = "StrictEqual"
	CapPartialOrd  Capability = "PartialOrd"
	CapOrd         Capability = "Ord"
	CapHash        Capability = "Hash"
	CapDeref       Capability = "Deref"
	CapAdd         Capability = "Add"
	CapSub         Capability = "Sub"
	CapMul         Capability = "Mul"
	CapDiv         Capability = "Div"

	CapDebug       Capability = "Debug"
	CapDisplay     Capability = "Display"
	CapParse       Capability = "Parse"
	CapSerialize   Capability = "Serialize"
	CapDeserialize Capability = "Deserialize"

	CapInnerAccess Capability = "inner_access"
	CapFromInner   Capability = "from_inner"
	CapValueMap    Capability = "value_map"
	CapCloned      Capability = "cloned"
	CapAsRef       Capability = "as_ref"
)

// capabilityInfo describes one entry of the fixed capability enumeration.
type capabilityInfo struct {
	group   Group
	method  string
	aliases []string
	serde   bool
}

type catalogEntry struct {
	name Capability
	info capabilityInfo
}

// catalog is ordered: generated methods and listings follow this order.
var catalog = []catalogEntry{
	{CapDefault, capabilityInfo{group: GroupImplement, method: "ImplementDefault"}},
	{CapClone, capabilityInfo{group: GroupImplement, method: "ImplementClone"}},
	{CapCopy, capabilityInfo{group: GroupImplement, method: "ImplementCopy"}},
	{CapEqual, capabilityInfo{group: GroupImplement, method: "ImplementEqual", aliases: []string{"Equality", "PartialEq"}}},
	{CapStrictEqual, capabilityInfo{group: GroupImplement, method: "ImplementStrictEqual", aliases: []string{"StrictEquality", "Eq"}}},
	{CapPartialOrd, capabilityInfo{group: GroupImplement, method: "ImplementPartialOrd"}},
	{CapOrd, capabilityInfo{group: GroupImplement, method: "ImplementOrd"}},
	{CapHash, capabilityInfo{group: GroupImplement, method: "ImplementHash"}},
	{CapDeref, capabilityInfo{group: GroupImplement, method: "ImplementDeref"}},
	{CapAdd, capabilityInfo{group: GroupImplement, method: "ImplementAdd"}},
	{CapSub, capabilityInfo{group: GroupImplement, method: "ImplementSub"}},
	{CapMul, capabilityInfo{group: GroupImplement, method: "ImplementMul"}},
	{CapDiv, capabilityInfo{group: GroupImplement, method: "ImplementDiv"}},

	{CapDebug, capabilityInfo{group: GroupTransparent, method: "TransparentDebug"}},
	{CapDisplay, capabilityInfo{group: GroupTransparent, method: "TransparentDisplay"}},
	{CapParse, capabilityInfo{group: GroupTransparent, method: "TransparentParse", aliases: []string{"FromString", "FromStr"}}},
	{CapSerialize, capabilityInfo{group: GroupTransparent, method: "TransparentSerialize", serde: true}},
	{CapDeserialize, capabilityInfo{group: GroupTransparent, method: "TransparentDeserialize", serde: true}},

	{CapInnerAccess, capabilityInfo{group: GroupCapability, method: "InnerAccess"}},
	{CapFromInner, capabilityInfo{group: GroupCapability, method: "FromInner"}},
	{CapValueMap, capabilityInfo{group: GroupCapability, method: "ValueMap"}},
	{CapCloned, capabilityInfo{group: GroupCapability, method: "Cloned"}},
	{CapAsRef, capabilityInfo{group: GroupCapability, method: "AsRef"}},
}

func lookup(c Capability) (capabilityInfo, bool) {
	for _, e := range catalog {
		if e.name == c {
			return e.info, true
		}
	}
	return capabilityInfo{}, false
}

// String returns the canonical name.
func (c Capability) String() string {
	return string(c)
}

// IsValid checks whether c is a canonical capability name.
func (c Capability) IsValid() bool {
	_, ok := lookup(c)
	return ok
}

// Group returns the directive group c belongs to, or "" if c is unknown.
func (c Capability) Group() Group {
	info, _ := lookup(c)
	return info.group
}

// Method returns the name of the no-op method that declares c on a marker
// type. It matches the capability interface name in package tagged.
func (c Capability) Method() string {
	info, _ := lookup(c)
	return info.method
}

// Aliases returns the alternative directive spellings accepted for c.
func (c Capability) Aliases() []string {
	info, _ := lookup(c)
	return slices.Clone(info.aliases)
}

// IsSerde reports whether c is only available with the serialization
// feature enabled.
func (c Capability) IsSerde() bool {
	info, _ := lookup(c)
	return info.serde
}

// index returns the catalog position of c, used for canonical ordering.
func (c Capability) index() int {
	return slices.IndexFunc(catalog, func(e catalogEntry) bool { return e.name == c })
}

// Capabilities returns every capability of group g in canonical order.
// An empty group returns the whole enumeration.
func Capabilities(g Group) []Capability {
	var out []Capability
	for _, e := range catalog {
		if g == "" || e.info.group == g {
			out = append(out, e.name)
		}
	}
	return out
}

// ParseCapability resolves a name written under directive group g,
// accepting aliases. Names are case-sensitive, as in the directive syntax.
func ParseCapability(g Group, name string) (Capability, error) {
	for _, e := range catalog {
		if e.info.group != g {
			continue
		}
		if string(e.name) == name || slices.Contains(e.info.aliases, name) {
			return e.name, nil
		}
	}
	valid := make([]string, 0)
	for _, c := range Capabilities(g) {
		valid = append(valid, c.String())
	}
	return "", fmt.Errorf("unknown %s capability %q (valid: %s)", g, name, strings.Join(valid, ", "))
}

// SortCapabilities orders caps canonically in place.
func SortCapabilities(caps []Capability) {
	slices.SortFunc(caps, func(a, b Capability) int {
		return a.index() - b.index()
	})
}

// Features are the optional parts of the library a declaration may use.
type Features struct {
	// Serde enables the Serialize and Deserialize capabilities.
	Serde bool `json:"serde" yaml:"serde"`

	// Permissive enables the //tagged:permissive directive.
	Permissive bool `json:"permissive" yaml:"permissive"`
}

// DefaultFeatures returns the feature set enabled when nothing is configured.
func DefaultFeatures() Features {
	return Features{Serde: true, Permissive: true}
}

// PermissiveCapabilities returns what //tagged:permissive expands to under
// the given features.
func PermissiveCapabilities(f Features) []Capability {
	var out []Capability
	for _, c := range Capabilities("") {
		if c.IsSerde() && !f.Serde {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Declaration is the set of capabilities declared on one marker type.
type Declaration struct {
	// TypeName is the marker type's identifier.
	TypeName string `json:"typeName"`

	// Pos is where the marker type is declared.
	Pos token.Position `json:"-"`

	// Capabilities holds the declared capabilities in canonical order. For a
	// permissive declaration it is the full expansion.
	Capabilities []Capability `json:"capabilities"`

	// Permissive is true when the declaration came from //tagged:permissive.
	Permissive bool `json:"permissive,omitempty"`
}

// Methods returns the method names to generate, in canonical order.
func (d *Declaration) Methods() []string {
	out := make([]string, 0, len(d.Capabilities))
	for _, c := range d.Capabilities {
		out = append(out, c.Method())
	}
	return out
}

// Has reports whether d declares c.
func (d *Declaration) Has(c Capability) bool {
	return slices.Contains(d.Capabilities, c)
}

// ExitCode defines the process exit codes of taggedgen, so go:generate
// callers and CI can tell failures apart.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the configuration file or environment could
	// not be read.
	ExitConfigError ExitCode = 2

	// ExitDirectiveError indicates the source contains invalid directives
	// or could not be parsed.
	ExitDirectiveError ExitCode = 3

	// ExitWriteError indicates the generated file could not be written.
	ExitWriteError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
