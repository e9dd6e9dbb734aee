// Package cli — check.go implements the "taggedgen check" command.
//
// check validates directives without writing anything and reports, per
// marker type, the capabilities it declares. It fails when the generated
// file is missing or out of date, so it can guard CI against forgotten
// go generate runs.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tagged/internal/codegen"
	"github.com/shinji-kodama/tagged/internal/config"
	"github.com/shinji-kodama/tagged/internal/model"
)

// NewCheckCommand creates the "check" cobra command.
func NewCheckCommand() *cobra.Command {
	flags := &settingsFlags{}

	cmd := &cobra.Command{
		Use:   "check [dir...]",
		Short: "Validate directives and verify generated code is up to date",
		Long: `Validate the //tagged: directives of each package directory and report the
capabilities declared per marker type. Nothing is written.

The command fails when the generated file differs from what generate would
write.

Examples:
  taggedgen check
  taggedgen check --json ./internal/ids`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), args, flags)
		},
	}

	flags.register(cmd)

	return cmd
}

// checkTypeJSON is the JSON output structure for one marker type.
type checkTypeJSON struct {
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Permissive   bool     `json:"permissive"`
	Capabilities []string `json:"capabilities"`
}

// checkResult is the outcome for one package directory.
type checkResult struct {
	Dir      string          `json:"dir"`
	Package  string          `json:"package"`
	Output   string          `json:"output"`
	UpToDate bool            `json:"upToDate"`
	Types    []checkTypeJSON `json:"types"`
}

func runCheck(ctx context.Context, out io.Writer, args []string, flags *settingsFlags) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	var results []checkResult
	var stale []string
	for _, dir := range packageDirs(args, env) {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := checkPackage(dir, env, flags)
		if err != nil {
			return err
		}
		if !res.UpToDate {
			stale = append(stale, res.Output)
		}
		results = append(results, *res)
	}

	if err := printCheckResult(out, results); err != nil {
		return err
	}
	if len(stale) > 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("generated code is out of date, run taggedgen generate: %s", FormatTypeList(stale)))
	}
	return nil
}

func checkPackage(dir string, env config.Env, flags *settingsFlags) (*checkResult, error) {
	cfg, err := flags.resolve(dir, env)
	if err != nil {
		return nil, err
	}
	pkg, err := parsePackage(dir, cfg)
	if err != nil {
		return nil, err
	}

	res := &checkResult{
		Dir:     dir,
		Package: pkg.Name,
		Output:  filepath.Join(dir, cfg.Output),
		Types:   make([]checkTypeJSON, 0, len(pkg.Declarations)),
	}
	for _, d := range pkg.Declarations {
		entry := checkTypeJSON{
			Name:         d.TypeName,
			Position:     d.Pos.String(),
			Permissive:   d.Permissive,
			Capabilities: make([]string, 0, len(d.Capabilities)),
		}
		for _, c := range d.Capabilities {
			entry.Capabilities = append(entry.Capabilities, c.String())
		}
		res.Types = append(res.Types, entry)
	}

	want, err := codegen.Render(pkg.Name, pkg.Declarations)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to generate code for %s", dir), err)
	}
	got, err := os.ReadFile(res.Output)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file is up to date only when there is nothing to generate.
		res.UpToDate = len(pkg.Declarations) == 0
	case err != nil:
		return nil, model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to read %s", res.Output), err)
	default:
		res.UpToDate = bytes.Equal(got, want)
	}
	return res, nil
}

// printCheckResult outputs the check report in text or JSON format.
//
// The text format is one line per marker type:
//
//	ids/ids.go:10:6  userIDTag  Equal, Hash, Display, inner_access
func printCheckResult(w io.Writer, results []checkResult) error {
	if IsJSONOutput() {
		return printJSON(w, struct {
			Packages []checkResult `json:"packages"`
		}{Packages: results})
	}

	for _, r := range results {
		state := "up to date"
		if !r.UpToDate {
			state = "out of date"
		}
		fmt.Fprintf(w, "package %s (%s: %s)\n", r.Package, r.Output, state)
		for _, tp := range r.Types {
			caps := FormatTypeList(tp.Capabilities)
			if tp.Permissive {
				caps = "permissive"
			}
			fmt.Fprintf(w, "  %-30s %-20s %s\n", tp.Position, tp.Name, caps)
		}
	}
	return nil
}
