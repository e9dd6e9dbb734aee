// Package model defines the domain types and value objects for the
// taggedgen CLI.
//
// This package contains pure data structures with no external dependencies:
// the fixed capability enumeration (Capability, Group), the per-type
// Declaration produced by the directive parser, and the feature toggles
// (Features) that mirror the library's build tags.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
