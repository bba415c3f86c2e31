// Package config loads pistonlog settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Backends and recording formats accepted by Validate.
var (
	Backends = []string{"terminal", "ebitengine", "remote"}
	Formats  = []string{"jsonl", "json", "yaml"}
)

type Config struct {
	// Backend produces the inputs: terminal, ebitengine or remote.
	Backend string `toml:"backend" yaml:"backend"`
	// Output is a file for jsonl and a directory for json and yaml.
	Output string `toml:"output" yaml:"output"`
	Format string `toml:"format" yaml:"format"`
	// Listen is the websocket address for the remote backend.
	Listen string `toml:"listen" yaml:"listen"`
	// Buffer is the input queue length between backend and recorder.
	Buffer      int  `toml:"buffer" yaml:"buffer"`
	ExitOnCtrlC bool `toml:"exit_on_ctrl_c" yaml:"exit_on_ctrl_c"`
}

func Default() Config {
	return Config{
		Backend:     "terminal",
		Output:      "pistonlog.jsonl",
		Format:      "jsonl",
		Listen:      "127.0.0.1:8765",
		Buffer:      64,
		ExitOnCtrlC: true,
	}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads path over Default() and validates the result. The format is
// chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			pe := &ParseError{Path: path, Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return Config{}, pe
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ParseError{Path: path, Err: err}
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !contains(Backends, c.Backend) {
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if !contains(Formats, c.Format) {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.Output == "" {
		return errors.New("config: output is required")
	}
	if c.Backend == "remote" && c.Listen == "" {
		return errors.New("config: remote backend needs a listen address")
	}
	if c.Buffer < 0 {
		return fmt.Errorf("config: negative buffer %d", c.Buffer)
	}
	return nil
}

// RecordingFormat picks the recording format for path by extension. Saved
// recordings are .json or .yaml; anything else is read as JSON lines. .yml
// is rejected since YAML recordings are always saved as .yaml.
func RecordingFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml":
		return "yaml", nil
	case ".yml":
		return "", fmt.Errorf("%w: %s: yaml recordings use the .yaml extension", ErrUnsupportedFormat, path)
	}
	return "jsonl", nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
