// Package config loads taggedgen settings.
//
// Settings come from three layers, later ones overriding earlier ones:
//
//  1. Built-in defaults (output tagged_gen.go, every feature enabled).
//  2. A config file in the package directory: taggedgen.yaml, taggedgen.yml
//     or taggedgen.json. The JSON form accepts comments and trailing commas.
//  3. TAGGEDGEN_* environment variables.
//
// Command-line flags are applied on top by the CLI. The environment that
// go generate sets (GOFILE, GOPACKAGE, GOLINE) is decoded alongside.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/tagged/internal/codegen"
	"github.com/shinji-kodama/tagged/internal/model"
)

// FileNames are the config file names looked up in a package directory,
// in priority order.
var FileNames = []string{"taggedgen.yaml", "taggedgen.yml", "taggedgen.json"}

// ErrNotFound is returned by Find when the directory has no config file.
var ErrNotFound = errors.New("no taggedgen config file found")

// Config holds the effective generator settings.
type Config struct {
	// Output is the generated file's name, relative to the package
	// directory.
	Output string `json:"output" yaml:"output"`

	// Features gates optional capabilities.
	Features model.Features `json:"features" yaml:"features"`

	// Source is the config file the settings were read from, if any.
	Source string `json:"-" yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Output:   codegen.DefaultOutput,
		Features: model.DefaultFeatures(),
	}
}

// Validate checks the settings for values the generator cannot use.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if filepath.Base(c.Output) != c.Output {
		return fmt.Errorf("output %q must be a file name, not a path", c.Output)
	}
	if !strings.HasSuffix(c.Output, ".go") {
		return fmt.Errorf("output %q must end in .go", c.Output)
	}
	if strings.HasSuffix(c.Output, "_test.go") {
		return fmt.Errorf("output %q must not be a test file", c.Output)
	}
	return nil
}

// Env is the environment taggedgen reads.
type Env struct {
	// GoFile, GoPackage and GoLine are set by go generate.
	GoFile    string `env:"GOFILE"`
	GoPackage string `env:"GOPACKAGE"`
	GoLine    int    `env:"GOLINE"`

	// Config names a config file to use instead of looking one up.
	Config string `env:"TAGGEDGEN_CONFIG"`

	// Output overrides Config.Output.
	Output string `env:"TAGGEDGEN_OUTPUT"`

	// Serde and Permissive override the matching features. They hold a
	// strconv.ParseBool value; empty means unset.
	Serde      string `env:"TAGGEDGEN_SERDE"`
	Permissive string `env:"TAGGEDGEN_PERMISSIVE"`
}

// FromGenerate reports whether taggedgen is running under go generate.
func (e Env) FromGenerate() bool {
	return e.GoFile != ""
}

// LoadEnv decodes the process environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envdecode.StrictDecode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Env{}, model.WrapCLIError(model.ExitConfigError, "failed to read environment", err)
	}
	return env, nil
}

// Apply overrides c with the TAGGEDGEN_* values set in env.
func (e Env) Apply(c *Config) error {
	if e.Output != "" {
		c.Output = e.Output
	}
	for _, o := range []struct {
		name  string
		value string
		dst   *bool
	}{
		{"TAGGEDGEN_SERDE", e.Serde, &c.Features.Serde},
		{"TAGGEDGEN_PERMISSIVE", e.Permissive, &c.Features.Permissive},
	} {
		if o.value == "" {
			continue
		}
		b, err := strconv.ParseBool(o.value)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError, fmt.Sprintf("invalid %s", o.name), err)
		}
		*o.dst = b
	}
	return nil
}

// Find returns the path of the config file in dir, or ErrNotFound.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// LoadFile reads a config file on top of the defaults. The format follows
// the file extension. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitConfigError, fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigError, "failed to read config file", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and keeps the defaults.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, model.WrapCLIError(model.ExitConfigError, fmt.Sprintf("failed to parse %s", path), err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError, fmt.Sprintf("failed to parse %s", path), err)
		}
	default:
		return nil, model.NewCLIError(model.ExitConfigError, fmt.Sprintf("unsupported config file extension %q", ext))
	}

	cfg.Source = path
	return cfg, nil
}

// Load resolves the settings for the package in dir. path names an explicit
// config file; when empty, env.Config is used, and then Find.
func Load(dir, path string, env Env) (*Config, error) {
	if path == "" {
		path = env.Config
	}
	if path == "" {
		found, err := Find(dir)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		path = found
	}

	cfg := Default()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := env.Apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	return cfg, nil
}
