package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/fssim/internal/util"
	"gopkg.in/yaml.v3"
)

// Log verbosity values accepted from the CLI and override files.
// Higher is noisier.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultVerbose = WarnVerbose
	DefaultLogLvl  = util.WarnLevel

	// DefaultRootName is the name the root directory shows in tree output
	DefaultRootName = "root"

	// DefaultPromptPrefix is the text before the ':' in the prompt
	DefaultPromptPrefix = "fs"

	// DefaultClearLines is the number of blank lines the clear command prints
	DefaultClearLines = 50

	DefaultColor  = true
	DefaultBanner = true
)

// Config contains runtime configuration values for the shell and file system.
type Config struct {
	LogLvl       util.LogLevel // Internal log level derived from verbosity 1-5 (Default warn)
	RootName     string        // Name of the root directory (Default "root")
	PromptPrefix string        // Prompt prefix, rendered as "<prefix>:<path>$ " (Default "fs")
	ClearLines   int           // Blank lines emitted by clear (Default 50)
	Color        bool          // Whether to style prompt and errors (Default true)
	Banner       bool          // Whether to print the welcome banner (Default true)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is the log verbosity between 1 (error) and 5 (trace); values out
	// of range are clamped
	LogLvl       *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	RootName     *string `yaml:"root_name,omitempty" json:"root_name,omitempty"`
	PromptPrefix *string `yaml:"prompt_prefix,omitempty" json:"prompt_prefix,omitempty"`
	ClearLines   *int    `yaml:"clear_lines,omitempty" json:"clear_lines,omitempty"`
	Color        *bool   `yaml:"color,omitempty" json:"color,omitempty"`
	Banner       *bool   `yaml:"banner,omitempty" json:"banner,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:       DefaultLogLvl,
		RootName:     DefaultRootName,
		PromptPrefix: DefaultPromptPrefix,
		ClearLines:   DefaultClearLines,
		Color:        DefaultColor,
		Banner:       DefaultBanner,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override returns the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.RootName != nil && *override.RootName != "" {
		c.RootName = *override.RootName
	}
	if override.PromptPrefix != nil {
		c.PromptPrefix = *override.PromptPrefix
	}
	if override.ClearLines != nil && *override.ClearLines >= 0 {
		c.ClearLines = *override.ClearLines
	}
	if override.Color != nil {
		c.Color = *override.Color
	}
	if override.Banner != nil {
		c.Banner = *override.Banner
	}
}

// VerboseToLogLevel maps CLI verbosity 1 (error) through 5 (trace) to a
// [util.LogLevel], clamping out of range values.
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = min(max(verbose, ErrorVerbose), TraceVerbose)
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
