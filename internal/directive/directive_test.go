package directive

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/tagged/internal/model"
)

// testdataPath returns the absolute path to a fixture package under this
// package's testdata directory, independent of the test runner's working
// directory.
func testdataPath(t *testing.T, fixture string) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed to return file info")
	return filepath.Join(filepath.Dir(filename), "testdata", fixture)
}

// collectSource parses a single in-memory file named bad.go and collects
// its declarations.
func collectSource(t *testing.T, src string, features model.Features) ([]model.Declaration, error) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "bad.go", src, parser.ParseComments)
	require.NoError(t, err)
	return Collect(fset, []*ast.File{f}, features)
}

// --- ParseDir tests ---

// TestParseDir_Fixture verifies extraction from a realistic package: doc
// comments with prose, parenthesized type groups, merged directive lines,
// aliases, and files that must be skipped (generated output, build-ignored
// and test files).
func TestParseDir_Fixture(t *testing.T) {
	pkg, err := ParseDir(testdataPath(t, "ids"), Options{
		Features: model.DefaultFeatures(),
		Exclude:  []string{"tagged_gen.go"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ids", pkg.Name)
	require.Len(t, pkg.Declarations, 3)

	// Sorted by type name.
	anyTag, orderTag, userIDTag := pkg.Declarations[0], pkg.Declarations[1], pkg.Declarations[2]

	assert.Equal(t, "anyTag", anyTag.TypeName)
	assert.True(t, anyTag.Permissive)
	assert.Equal(t, model.Capabilities(""), anyTag.Capabilities)

	assert.Equal(t, "orderTag", orderTag.TypeName)
	assert.Equal(t, []model.Capability{model.CapEqual, model.CapOrd}, orderTag.Capabilities)

	assert.Equal(t, "userIDTag", userIDTag.TypeName)
	assert.Equal(t, []model.Capability{
		model.CapClone, model.CapEqual, model.CapHash,
		model.CapDisplay, model.CapParse,
		model.CapInnerAccess,
	}, userIDTag.Capabilities)
	assert.Equal(t, 10, userIDTag.Pos.Line)
	assert.Equal(t, "ids.go", filepath.Base(userIDTag.Pos.Filename))
}

// TestParseDir_IncludesOutputUnlessExcluded verifies that the generated file
// is only skipped when it is excluded.
func TestParseDir_IncludesOutputUnlessExcluded(t *testing.T) {
	_, err := ParseDir(testdataPath(t, "ids"), Options{Features: model.DefaultFeatures()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown directive "stale"`)
}

func TestParseDir_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := ParseDir(testdataPath(t, "does-not-exist"), Options{})
		assert.Error(t, err)
	})

	t.Run("mixed packages", func(t *testing.T) {
		_, err := ParseDir(testdataPath(t, "mixed"), Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "found packages a and b")
	})
}

// --- Collect tests ---

// TestCollect_Invalid verifies each rejected directive form and its message.
func TestCollect_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		features model.Features
		want     string
	}{
		{
			name: "unknown capability",
			src:  "package p\n\n//tagged:implement Equal, Bogus\ntype t struct{}\n",
			want: `unknown implement capability "Bogus"`,
		},
		{
			name: "capability in the wrong group",
			src:  "package p\n\n//tagged:implement Display\ntype t struct{}\n",
			want: `unknown implement capability "Display"`,
		},
		{
			name: "unknown directive",
			src:  "package p\n\n//tagged:derive Equal\ntype t struct{}\n",
			want: `unknown directive "derive"`,
		},
		{
			name: "empty list",
			src:  "package p\n\n//tagged:transparent\ntype t struct{}\n",
			want: "transparent lists no capabilities",
		},
		{
			name: "trailing comma",
			src:  "package p\n\n//tagged:implement Equal,\ntype t struct{}\n",
			want: "empty capability name",
		},
		{
			name: "duplicate on one line",
			src:  "package p\n\n//tagged:implement Hash, Hash\ntype t struct{}\n",
			want: "Hash declared more than once on t",
		},
		{
			name: "duplicate through an alias across lines",
			src:  "package p\n\n//tagged:implement Equal\n//tagged:implement PartialEq\ntype t struct{}\n",
			want: "Equal declared more than once on t",
		},
		{
			name: "permissive with another directive",
			src:  "package p\n\n//tagged:permissive\n//tagged:implement Equal\ntype t struct{}\n",
			want: "permissive must be the only directive on t",
		},
		{
			name: "permissive with arguments",
			src:  "package p\n\n//tagged:permissive Equal\ntype t struct{}\n",
			want: "permissive takes no arguments",
		},
		{
			name:     "permissive disabled",
			src:      "package p\n\n//tagged:permissive\ntype t struct{}\n",
			features: model.Features{Serde: true},
			want:     "permissive is disabled",
		},
		{
			name:     "serialization disabled",
			src:      "package p\n\n//tagged:transparent Display, Serialize\ntype t struct{}\n",
			features: model.Features{Permissive: true},
			want:     "Serialize is disabled",
		},
		{
			name: "non-empty struct",
			src:  "package p\n\n//tagged:implement Equal\ntype t struct{ n int }\n",
			want: "marker type t must be an empty struct",
		},
		{
			name: "not a struct",
			src:  "package p\n\n//tagged:implement Equal\ntype t int\n",
			want: "marker type t must be an empty struct",
		},
		{
			name: "alias",
			src:  "package p\n\n//tagged:implement Equal\ntype t = struct{}\n",
			want: "must be a defined type, not an alias",
		},
		{
			name: "generic marker",
			src:  "package p\n\n//tagged:implement Equal\ntype t[X any] struct{}\n",
			want: "must not have type parameters",
		},
		{
			name: "directive on a function",
			src:  "package p\n\n//tagged:implement Equal\nfunc f() {}\n",
			want: "directive must be in the doc comment of a type declaration",
		},
		{
			name: "floating directive",
			src:  "package p\n\ntype t struct{}\n\n//tagged:implement Equal\n\nvar v int\n",
			want: "directive must be in the doc comment of a type declaration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := tt.features
			if features == (model.Features{}) {
				features = model.DefaultFeatures()
			}
			decls, err := collectSource(t, tt.src, features)
			require.Error(t, err)
			assert.Nil(t, decls, "nothing is declared when any directive is invalid")
			assert.Contains(t, err.Error(), tt.want)

			var dirErr *Error
			require.True(t, errors.As(err, &dirErr))
			assert.Equal(t, "bad.go", dirErr.Pos.Filename)
		})
	}
}

// TestCollect_ReportsAll verifies that every problem is reported, in source
// order, with file:line:col positions.
func TestCollect_ReportsAll(t *testing.T) {
	src := `package p

//tagged:implement Bogus
type a struct{}

//tagged:transparent Nope
type b struct{}
`
	_, err := collectSource(t, src, model.DefaultFeatures())
	require.Error(t, err)

	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "bad.go:3:1: "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "bad.go:6:1: "), lines[1])
}

// TestCollect_GroupsIndependent verifies that transparent entries do not
// imply implement entries and vice versa.
func TestCollect_GroupsIndependent(t *testing.T) {
	decls, err := collectSource(t, "package p\n\n//tagged:transparent Display\ntype t struct{}\n", model.DefaultFeatures())
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, []model.Capability{model.CapDisplay}, decls[0].Capabilities)
}

// TestCollect_PermissiveWithoutSerde verifies that permissive expands to
// everything available under the active features.
func TestCollect_PermissiveWithoutSerde(t *testing.T) {
	decls, err := collectSource(t, "package p\n\n//tagged:permissive\ntype t struct{}\n", model.Features{Permissive: true})
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.NotContains(t, decls[0].Capabilities, model.CapSerialize)
	assert.Contains(t, decls[0].Capabilities, model.CapAsRef)
}

func TestSplitDirective(t *testing.T) {
	tests := []struct {
		text    string
		keyword string
		args    string
	}{
		{"//tagged:implement Equal, Hash", "implement", "Equal, Hash"},
		{"//tagged:implement\tEqual", "implement", "Equal"},
		{"//tagged:permissive", "permissive", ""},
		{"//tagged:capability   as_ref  ", "capability", "as_ref"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			keyword, args := splitDirective(tt.text)
			assert.Equal(t, tt.keyword, keyword)
			assert.Equal(t, tt.args, args)
		})
	}
}
