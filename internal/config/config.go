// Package config loads listkit settings from YAML files and the environment.
//
// Settings are layered: built-in defaults, then the user config file
// (~/.listkit/config.yaml, or $LISTKIT_CONFIG), then any file passed on the
// command line, then environment variables. Each file replaces whole
// top-level sections it mentions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/listkit/internal/listmodel"
	"github.com/rshade/listkit/internal/sortspec"
	"github.com/rshade/listkit/internal/typeahead"
)

// SchemaVersion is the config schema written by `listkit config init`.
const SchemaVersion = "1.0.0"

// supportedSchema is the range of config schema versions this build reads.
const supportedSchema = ">= 1.0.0, < 2.0.0"

// Environment variables overriding config values.
const (
	EnvConfigPath = "LISTKIT_CONFIG"
	EnvHome       = "LISTKIT_HOME"
	EnvLogLevel   = "LISTKIT_LOG_LEVEL"
	EnvLogFormat  = "LISTKIT_LOG_FORMAT"
)

// ErrUnsupportedVersion is returned for config files outside supportedSchema.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config is the full listkit configuration.
type Config struct {
	Version string        `yaml:"version"`
	List    ListConfig    `yaml:"list"`
	Logging LoggingConfig `yaml:"logging"`
}

// ListConfig holds defaults for lists opened by the CLI.
type ListConfig struct {
	EnableDelete        bool          `yaml:"enable_delete"`
	TypingSensitive     bool          `yaml:"typing_sensitive"`
	TypeAheadTimeout    time.Duration `yaml:"type_ahead_timeout"`
	SingleSelection     bool          `yaml:"single_selection"`
	AvoidEmptySelection bool          `yaml:"avoid_empty_selection"`
	HideColumnTitles    bool          `yaml:"hide_column_titles"`
	UniformWidths       bool          `yaml:"uniform_widths"`
	Sort                string        `yaml:"sort"`
	Height              int           `yaml:"height"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		Version: SchemaVersion,
		List: ListConfig{
			TypingSensitive:  true,
			TypeAheadTimeout: typeahead.DefaultTimeout,
			Height:           20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, the user config file and the given
// extra files, in that order, then applies environment overrides and
// validates the result. Missing user config is not an error; missing extra
// files are.
func Load(extra ...string) (*Config, error) {
	cfg := New()

	if path, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				return nil, mergeErr
			}
		}
	}

	for _, path := range extra {
		if path == "" {
			continue
		}
		if err := ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the schema version and list settings.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	if c.List.TypeAheadTimeout < 0 {
		return fmt.Errorf("list.type_ahead_timeout must be >= 0, got %s", c.List.TypeAheadTimeout)
	}
	if c.List.Height < 0 {
		return fmt.Errorf("list.height must be >= 0, got %d", c.List.Height)
	}
	if _, err := sortspec.Parse(c.List.Sort); err != nil {
		return fmt.Errorf("list.sort: %w", err)
	}
	return nil
}

func checkVersion(raw string) error {
	if raw == "" {
		return nil
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, raw, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, v, supportedSchema)
	}
	return nil
}

// SortSpec returns the configured default sort.
func (lc ListConfig) SortSpec() sortspec.Spec {
	spec, _ := sortspec.Parse(lc.Sort)
	return spec
}

// ApplyTo copies the list defaults onto opts.
func (lc ListConfig) ApplyTo(opts *listmodel.Options) {
	opts.EnableDelete = lc.EnableDelete
	opts.EnableTypingSensitivity = lc.TypingSensitive
	opts.TypeAheadTimeout = lc.TypeAheadTimeout
	opts.SingleSelection = lc.SingleSelection
	opts.AvoidEmptySelection = lc.AvoidEmptySelection
	opts.HideColumnTitles = lc.HideColumnTitles
	opts.UniformWidths = lc.UniformWidths
}

// Save writes the configuration to path as YAML, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
