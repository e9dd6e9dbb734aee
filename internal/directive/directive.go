// Package directive extracts capability declarations from //tagged:
// comment directives in Go source.
//
// A directive is a line comment in the doc comment of a marker type:
//
//	//tagged:implement Equal, Hash
//	//tagged:transparent Display, Parse
//	//tagged:capability inner_access
//	type userIDTag struct{}
//
// Several lines of the same kind merge. //tagged:permissive declares every
// capability and must stand alone. All problems found in a package are
// reported together; a package with any problem yields no declarations.
package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/shinji-kodama/tagged/internal/model"
)

// Prefix starts every directive comment.
const Prefix = "//tagged:"

// KeywordPermissive is the directive that declares every capability.
const KeywordPermissive = "permissive"

// Error is a problem with one directive or marker type. Position is
// reported as file:line:col so editors can jump to it.
type Error struct {
	// Pos is where the problem is.
	Pos token.Position

	// Msg describes the problem.
	Msg string
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Options controls which files are read and which features are available.
type Options struct {
	// Features gates Serialize/Deserialize and //tagged:permissive.
	Features model.Features

	// Exclude lists file base names to skip, typically the generated file.
	Exclude []string
}

// Package is the result of parsing one package directory.
type Package struct {
	// Name is the Go package name.
	Name string

	// Dir is the directory the package was read from.
	Dir string

	// Declarations holds one entry per marker type carrying directives,
	// sorted by type name.
	Declarations []model.Declaration
}

// ParseDir reads the non-test Go files of dir that match the default build
// context and collects their declarations. Directive problems are returned
// as *Error values joined with errors.Join.
func ParseDir(dir string, opts Options) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if slices.Contains(opts.Exclude, name) {
			continue
		}
		ok, err := build.Default.MatchFile(dir, name)
		if err != nil {
			return nil, fmt.Errorf("failed to match %s: %w", name, err)
		}
		if !ok {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}

	pkg := &Package{Name: files[0].Name.Name, Dir: dir}
	for _, f := range files[1:] {
		if f.Name.Name != pkg.Name {
			return nil, fmt.Errorf("found packages %s and %s in %s", pkg.Name, f.Name.Name, dir)
		}
	}

	decls, err := Collect(fset, files, opts.Features)
	if err != nil {
		return nil, err
	}
	pkg.Declarations = decls
	return pkg, nil
}

// Collect extracts declarations from already parsed files. The files must
// have been parsed with parser.ParseComments.
func Collect(fset *token.FileSet, files []*ast.File, features model.Features) ([]model.Declaration, error) {
	c := &collector{fset: fset, features: features, seen: make(map[string]token.Position)}
	for _, f := range files {
		c.file(f)
	}
	if len(c.errs) > 0 {
		sort.SliceStable(c.errs, func(i, j int) bool {
			a, b := c.errs[i].(*Error).Pos, c.errs[j].(*Error).Pos
			if a.Filename != b.Filename {
				return a.Filename < b.Filename
			}
			return a.Offset < b.Offset
		})
		return nil, errors.Join(c.errs...)
	}
	sort.Slice(c.decls, func(i, j int) bool { return c.decls[i].TypeName < c.decls[j].TypeName })
	return c.decls, nil
}

type collector struct {
	fset     *token.FileSet
	features model.Features
	decls    []model.Declaration
	errs     []error
	seen     map[string]token.Position
}

func (c *collector) errorf(pos token.Pos, format string, args ...any) {
	c.errs = append(c.errs, &Error{Pos: c.fset.Position(pos), Msg: fmt.Sprintf(format, args...)})
}

func (c *collector) file(f *ast.File) {
	attached := make(map[*ast.Comment]bool)

	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			// An unparenthesized declaration keeps its comment on the GenDecl.
			if doc == nil && !gd.Lparen.IsValid() {
				doc = gd.Doc
			}
			lines := directiveLines(doc)
			if len(lines) == 0 {
				continue
			}
			for _, l := range lines {
				attached[l] = true
			}
			c.typeSpec(ts, lines)
		}
	}

	// Anything left over is a directive on something other than a type.
	for _, group := range f.Comments {
		for _, l := range group.List {
			if strings.HasPrefix(l.Text, Prefix) && !attached[l] {
				c.errorf(l.Slash, "directive must be in the doc comment of a type declaration")
			}
		}
	}
}

func directiveLines(doc *ast.CommentGroup) []*ast.Comment {
	if doc == nil {
		return nil
	}
	var out []*ast.Comment
	for _, l := range doc.List {
		if strings.HasPrefix(l.Text, Prefix) {
			out = append(out, l)
		}
	}
	return out
}

// splitDirective splits "//tagged:implement Equal, Hash" into its keyword
// and argument list.
func splitDirective(text string) (keyword, args string) {
	rest := strings.TrimPrefix(text, Prefix)
	i := strings.IndexAny(rest, " \t")
	if i < 0 {
		return strings.TrimSpace(rest), ""
	}
	return rest[:i], strings.TrimSpace(rest[i+1:])
}

func (c *collector) typeSpec(ts *ast.TypeSpec, lines []*ast.Comment) {
	name := ts.Name.Name
	errCount := len(c.errs)

	if prev, ok := c.seen[name]; ok {
		c.errorf(ts.Name.Pos(), "type %s already declared at %s", name, prev)
		return
	}
	c.seen[name] = c.fset.Position(ts.Name.Pos())

	switch {
	case ts.Assign.IsValid():
		c.errorf(ts.Name.Pos(), "marker type %s must be a defined type, not an alias", name)
	case ts.TypeParams != nil && len(ts.TypeParams.List) > 0:
		c.errorf(ts.Name.Pos(), "marker type %s must not have type parameters", name)
	default:
		st, ok := ts.Type.(*ast.StructType)
		if !ok || len(st.Fields.List) > 0 {
			c.errorf(ts.Name.Pos(), "marker type %s must be an empty struct", name)
		}
	}

	decl := model.Declaration{TypeName: name, Pos: c.fset.Position(ts.Name.Pos())}
	declared := make(map[model.Capability]bool)

	for _, l := range lines {
		keyword, args := splitDirective(l.Text)

		if keyword == KeywordPermissive {
			if args != "" {
				c.errorf(l.Slash, "permissive takes no arguments")
			}
			if len(lines) > 1 {
				c.errorf(l.Slash, "permissive must be the only directive on %s", name)
			}
			if !c.features.Permissive {
				c.errorf(l.Slash, "permissive is disabled")
			}
			decl.Permissive = true
			continue
		}

		group := model.Group(keyword)
		if !group.IsValid() {
			c.errorf(l.Slash, "unknown directive %q (valid: implement, transparent, capability, permissive)", keyword)
			continue
		}
		if args == "" {
			c.errorf(l.Slash, "%s lists no capabilities", group)
			continue
		}

		for _, raw := range strings.Split(args, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				c.errorf(l.Slash, "empty capability name in %s list", group)
				continue
			}
			capability, err := model.ParseCapability(group, raw)
			if err != nil {
				c.errorf(l.Slash, "%v", err)
				continue
			}
			if capability.IsSerde() && !c.features.Serde {
				c.errorf(l.Slash, "%s is disabled: serialization support is turned off", capability)
				continue
			}
			if declared[capability] {
				c.errorf(l.Slash, "%s declared more than once on %s", capability, name)
				continue
			}
			declared[capability] = true
			decl.Capabilities = append(decl.Capabilities, capability)
		}
	}

	if len(c.errs) > errCount {
		return
	}
	if decl.Permissive {
		decl.Capabilities = model.PermissiveCapabilities(c.features)
	}
	model.SortCapabilities(decl.Capabilities)
	c.decls = append(c.decls, decl)
}
