// Package typecheck type-checks a package directory together with extra
// in-memory files, so tests can assert that a snippet does or does not
// compile against it.
package typecheck

import (
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is an in-memory Go file added to the checked package.
type Source struct {
	Name string
	Code string
}

// Options controls which files of the directory take part in the check.
type Options struct {
	// BuildTags are the build tags files are matched against.
	BuildTags []string

	// Exclude lists file names of the directory to leave out.
	Exclude []string
}

// Dir type-checks the non-test Go files of dir that match opts, plus extra.
// The returned error joins every type error found; nil means the package
// compiles.
func Dir(dir string, opts Options, extra ...Source) error {
	ctx := build.Default
	ctx.BuildTags = append([]string(nil), opts.BuildTags...)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = true
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || excluded[name] {
			continue
		}
		ok, err := ctx.MatchFile(dir, name)
		if err != nil {
			return fmt.Errorf("failed to match %s: %w", name, err)
		}
		if !ok {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	sort.Slice(extra, func(i, j int) bool { return extra[i].Name < extra[j].Name })
	for _, src := range extra {
		f, err := parser.ParseFile(fset, src.Name, src.Code, parser.SkipObjectResolution)
		if err != nil {
			return err
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return fmt.Errorf("no Go files to check in %s", dir)
	}

	var errs []error
	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(err error) { errs = append(errs, err) },
	}
	// The first error is also returned by Check; the Error hook already
	// collected it.
	_, _ = conf.Check(files[0].Name.Name, fset, files, nil)
	return errors.Join(errs...)
}
