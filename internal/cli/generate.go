// Package cli — generate.go implements the "taggedgen generate" command.
//
// Orchestration steps, per package directory:
//  1. Resolve settings (defaults, config file, environment, flags)
//  2. Parse the package and collect //tagged: directives
//  3. Render the declarations as Go source
//  4. Write the output file, or print it with --dry-run
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/tagged/internal/codegen"
	"github.com/shinji-kodama/tagged/internal/config"
	"github.com/shinji-kodama/tagged/internal/directive"
	"github.com/shinji-kodama/tagged/internal/model"
)

// settingsFlags are the flags shared by generate and check that override
// the resolved configuration.
type settingsFlags struct {
	config       string // --config: explicit config file
	output       string // --output: generated file name
	noSerde      bool   // --no-serde: reject Serialize/Deserialize
	noPermissive bool   // --no-permissive: reject //tagged:permissive
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Config file (default: taggedgen.yaml, taggedgen.yml or taggedgen.json in the package directory)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Generated file name (default: "+codegen.DefaultOutput+")")
	cmd.Flags().BoolVar(&f.noSerde, "no-serde", false, "Disable the Serialize and Deserialize capabilities")
	cmd.Flags().BoolVar(&f.noPermissive, "no-permissive", false, "Disable the permissive directive")
}

// resolve loads the settings for dir and applies the flags on top.
func (f *settingsFlags) resolve(dir string, env config.Env) (*config.Config, error) {
	cfg, err := config.Load(dir, f.config, env)
	if err != nil {
		return nil, err
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.noSerde {
		cfg.Features.Serde = false
	}
	if f.noPermissive {
		cfg.Features.Permissive = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	if cfg.Source != "" {
		VerboseLog("Using config file %s", cfg.Source)
	}
	VerboseLog("Output %s, serde=%t, permissive=%t", cfg.Output, cfg.Features.Serde, cfg.Features.Permissive)
	return cfg, nil
}

// parsePackage runs the directive parser over dir with cfg's settings.
func parsePackage(dir string, cfg *config.Config) (*directive.Package, error) {
	pkg, err := directive.ParseDir(dir, directive.Options{
		Features: cfg.Features,
		Exclude:  []string{cfg.Output},
	})
	if err != nil {
		return nil, model.WrapCLIError(model.ExitDirectiveError, fmt.Sprintf("invalid package %s", dir), err)
	}
	VerboseLog("Package %s: %d marker types", pkg.Name, len(pkg.Declarations))
	return pkg, nil
}

// packageDirs returns the directories to process. With no arguments this is
// the current directory, which is the package directory under go generate.
func packageDirs(args []string, env config.Env) []string {
	if env.FromGenerate() {
		VerboseLog("Invoked by go generate from %s:%d (package %s)", env.GoFile, env.GoLine, env.GoPackage)
	}
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

type generateFlags struct {
	settingsFlags
	dryRun bool // --dry-run: print instead of writing
}

// NewGenerateCommand creates the "generate" cobra command.
func NewGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate [dir...]",
		Short: "Write capability declarations for marker types",
		Long: `Read the //tagged: directives of each package directory and write the
declaring methods to the output file (default: tagged_gen.go).

Directives go in the doc comment of an empty struct type:

  //tagged:implement Equal, Hash, Clone
  //tagged:transparent Display, Parse
  //tagged:capability inner_access
  type userIDTag struct{}

  //tagged:permissive
  type anyTag struct{}

Examples:
  taggedgen generate
  taggedgen generate ./internal/ids ./internal/money
  taggedgen generate --dry-run
  taggedgen generate --no-serde --output markers_gen.go`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), args, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the generated code instead of writing it")

	return cmd
}

// Generation outcomes reported per package.
const (
	statusWritten   = "written"
	statusUnchanged = "unchanged"
	statusRemoved   = "removed"
	statusSkipped   = "skipped"
	statusDryRun    = "dry-run"
)

// generateResult is the outcome for one package directory.
type generateResult struct {
	Dir     string   `json:"dir"`
	Package string   `json:"package"`
	Output  string   `json:"output"`
	Status  string   `json:"status"`
	Types   []string `json:"types"`
	Source  string   `json:"source,omitempty"`
}

// runGenerate is the main orchestration function for the generate command.
func runGenerate(ctx context.Context, out io.Writer, args []string, flags *generateFlags) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	var results []generateResult
	for _, dir := range packageDirs(args, env) {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := generatePackage(dir, env, flags)
		if err != nil {
			return err
		}
		results = append(results, *res)
	}

	return printGenerateResult(out, results)
}

func generatePackage(dir string, env config.Env, flags *generateFlags) (*generateResult, error) {
	// Step 1: Resolve settings.
	cfg, err := flags.resolve(dir, env)
	if err != nil {
		return nil, err
	}

	// Step 2: Collect declarations.
	pkg, err := parsePackage(dir, cfg)
	if err != nil {
		return nil, err
	}

	res := &generateResult{
		Dir:     dir,
		Package: pkg.Name,
		Output:  filepath.Join(dir, cfg.Output),
		Types:   make([]string, 0, len(pkg.Declarations)),
	}
	for _, d := range pkg.Declarations {
		res.Types = append(res.Types, d.TypeName)
	}

	// Step 3: Render.
	src, err := codegen.Render(pkg.Name, pkg.Declarations)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, fmt.Sprintf("failed to generate code for %s", dir), err)
	}

	if flags.dryRun {
		res.Status = statusDryRun
		res.Source = string(src)
		return res, nil
	}

	// Step 4: Never overwrite a file taggedgen did not write.
	exists := true
	if _, err := os.Stat(res.Output); errors.Is(err, os.ErrNotExist) {
		exists = false
	}
	if exists {
		generated, err := codegen.IsGenerated(res.Output)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitWriteError, fmt.Sprintf("failed to read %s", res.Output), err)
		}
		if !generated {
			return nil, model.NewCLIError(model.ExitWriteError,
				fmt.Sprintf("refusing to overwrite %s: it was not generated by taggedgen", res.Output))
		}
	}

	// Step 5: Write, or clean up when nothing is declared any more.
	if len(pkg.Declarations) == 0 {
		if !exists {
			res.Status = statusSkipped
			return res, nil
		}
		if err := os.Remove(res.Output); err != nil {
			return nil, model.WrapCLIError(model.ExitWriteError, fmt.Sprintf("failed to remove stale %s", res.Output), err)
		}
		res.Status = statusRemoved
		return res, nil
	}

	changed, err := codegen.Write(res.Output, src)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitWriteError, "failed to write generated code", err)
	}
	res.Status = statusUnchanged
	if changed {
		res.Status = statusWritten
	}
	VerboseLog("%s: %s", res.Output, res.Status)
	return res, nil
}

// printGenerateResult outputs the per-package outcomes in text or JSON
// format, depending on the global --json flag.
func printGenerateResult(w io.Writer, results []generateResult) error {
	if IsJSONOutput() {
		return printJSON(w, struct {
			Packages []generateResult `json:"packages"`
		}{Packages: results})
	}

	for _, r := range results {
		if r.Status == statusDryRun {
			fmt.Fprint(w, r.Source)
			continue
		}
		fmt.Fprintf(w, "%s: %s (%s)\n", r.Output, r.Status, FormatTypeList(r.Types))
	}
	return nil
}

// FormatTypeList joins type names for display. Returns "no marker types"
// for an empty list.
func FormatTypeList(types []string) string {
	if len(types) == 0 {
		return "no marker types"
	}
	return strings.Join(types, ", ")
}
