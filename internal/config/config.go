// Package config loads extraction defaults from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ethanolivertroy/js-dependency-extractor/internal/models"
)

// DefaultConfigPath is the config file looked up in the working directory.
const DefaultConfigPath = ".depextract.toml"

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// File is the content of a config file. Unset keys keep their defaults.
type File struct {
	Path           string   `toml:"path"`
	IgnorePaths    []string `toml:"ignore_paths"`
	OnlyExtensions []string `toml:"only_extensions"`
	MergePartial   *bool    `toml:"merge_partial"`
	Format         string   `toml:"format"`
	Output         string   `toml:"output"`
}

// Settings is the resolved configuration of a run.
type Settings struct {
	Scan   models.Config
	Format string
	Output string
	Debug  bool
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Settings {
	return &Settings{
		Scan:   models.Config{},
		Format: FormatText,
	}
}

// LoadError reports a config file that could not be loaded.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Message, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the config file at path on top of the defaults.
// An empty path looks for DefaultConfigPath and tolerates its absence;
// an explicit path must exist.
func Load(path string) (*Settings, error) {
	settings := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, &LoadError{Path: path, Message: "failed to read config file", Err: err}
	}

	var f File
	meta, err := toml.Decode(string(content), &f)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse config file", Err: err}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, &LoadError{Path: path, Message: "unknown keys in config file", Err: fmt.Errorf("%v", undecoded)}
	}

	settings.apply(&f)
	if err := settings.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid config file", Err: err}
	}
	return settings, nil
}

func (s *Settings) apply(f *File) {
	if f.Path != "" {
		s.Scan.Path = f.Path
	}
	if f.IgnorePaths != nil {
		s.Scan.IgnorePaths = Clean(f.IgnorePaths)
	}
	if f.OnlyExtensions != nil {
		s.Scan.OnlyExtensions = Clean(f.OnlyExtensions)
	}
	if f.MergePartial != nil {
		s.Scan.MergePartial = *f.MergePartial
	}
	if f.Format != "" {
		s.Format = f.Format
	}
	if f.Output != "" {
		s.Output = f.Output
	}
}

// Validate checks the settings are usable.
func (s *Settings) Validate() error {
	for _, ext := range s.Scan.OnlyExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	switch s.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q, expected %s or %s", s.Format, FormatText, FormatJSON)
	}
	return nil
}

// Clean trims values and drops empty ones. An empty ignore substring
// would match every path.
func Clean(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
