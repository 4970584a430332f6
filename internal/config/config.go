package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xolan/rfext/internal/folder"
	"github.com/xolan/rfext/internal/logging"
	"github.com/xolan/rfext/internal/osutil"
	"github.com/xolan/rfext/internal/pathnorm"
)

const (
	// AppName is the application name used for config directory
	AppName = "rfext"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultTheme is the TUI theme used when none is configured
	DefaultTheme = "dracula"
)

// Config represents the application configuration
type Config struct {
	// LogLevel is the minimum level written to stderr (trace, debug, info, warn, error)
	LogLevel string `toml:"log_level" validate:"required,oneof=trace debug info warn error"`
	// Theme is the bubbletint theme ID used by the TUI
	Theme string `toml:"theme" validate:"required"`
	// Folder holds the retry policy for folder create/delete
	Folder FolderConfig `toml:"folder"`
	// Path holds the default options for path normalization
	Path PathConfig `toml:"path"`
}

// FolderConfig configures the folder retry loops.
type FolderConfig struct {
	DeleteAttempts int      `toml:"delete_attempts" validate:"min=1,max=100"`
	CreateAttempts int      `toml:"create_attempts" validate:"min=1,max=100"`
	RetryDelay     Duration `toml:"retry_delay"`
}

// PathConfig mirrors pathnorm.Options.
type PathConfig struct {
	Windows        bool   `toml:"windows"`
	ReferencePath  string `toml:"reference_path"`
	ConsiderBlanks bool   `toml:"consider_blanks"`
	ExpandEnvVars  bool   `toml:"expand_env_vars"`
	Mask           bool   `toml:"mask"`
}

// Duration is a time.Duration that reads and writes as a string like "2s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns a Config with the defaults of the folder keywords:
// 4 delete attempts, 3 create attempts, 2 seconds between attempts, and
// environment expansion plus masking for path normalization.
func DefaultConfig() Config {
	policy := folder.DefaultPolicy()
	opts := pathnorm.DefaultOptions()
	return Config{
		LogLevel: "warn",
		Theme:    DefaultTheme,
		Folder: FolderConfig{
			DeleteAttempts: policy.DeleteAttempts,
			CreateAttempts: policy.CreateAttempts,
			RetryDelay:     Duration{policy.Delay},
		},
		Path: PathConfig{
			Windows:        opts.Windows,
			ReferencePath:  opts.ReferencePath,
			ConsiderBlanks: opts.ConsiderBlanks,
			ExpandEnvVars:  opts.ExpandEnvVars,
			Mask:           opts.Mask,
		},
	}
}

// Load reads and validates the config file at path. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config file, or returns DefaultConfig if the file
// does not exist. Any other error (permissions, parse, validation) is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// Normalize trims and lower-cases the enumerated string fields in place.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	c.Path.ReferencePath = strings.TrimSpace(c.Path.ReferencePath)
}

// Level returns the configured log level, or info if it does not parse.
func (c Config) Level() logging.Level {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.InfoLevel
	}
	return lvl
}

// FolderPolicy projects the [folder] section onto a folder.Policy.
func (c Config) FolderPolicy() folder.Policy {
	return folder.Policy{
		DeleteAttempts: c.Folder.DeleteAttempts,
		CreateAttempts: c.Folder.CreateAttempts,
		Delay:          c.Folder.RetryDelay.Duration,
	}
}

// PathOptions projects the [path] section onto pathnorm.Options.
func (c Config) PathOptions() pathnorm.Options {
	return pathnorm.Options{
		Windows:        c.Path.Windows,
		ReferencePath:  c.Path.ReferencePath,
		ConsiderBlanks: c.Path.ConsiderBlanks,
		ExpandEnvVars:  c.Path.ExpandEnvVars,
		Mask:           c.Path.Mask,
	}
}

// Marshal renders cfg as a TOML document with a header comment.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# " + AppName + " configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// GenerateSampleConfig returns a commented-out config file documenting every
// key with its default value.
func GenerateSampleConfig() string {
	return `# ` + AppName + ` configuration file
#
# Every key is optional. Uncomment a line to override its default.

# Minimum log level written to stderr: trace, debug, info, warn or error
# log_level = "warn"

# TUI color theme (any bubbletint theme ID, e.g. "dracula", "nord", "tokyo_night")
# theme = "dracula"

[folder]
# Attempts made by folder delete before giving up
# delete_attempts = 4

# Attempts made by folder create before giving up
# create_attempts = 3

# Pause between two failed attempts (Go duration, e.g. "500ms", "2s")
# retry_delay = "2s"

[path]
# Return backslash separators instead of slashes
# windows = false

# Absolute path joined in front of relative paths
# reference_path = ""

# Wrap paths containing blanks in double quotes
# consider_blanks = false

# Resolve $VAR, ${VAR} and %VAR% references
# expand_env_vars = true

# Double every backslash (only with windows = true)
# mask = true
`
}
