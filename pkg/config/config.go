package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/marmos91/posixshim/pkg/pathconv"
)

// Config represents the complete posixshim configuration.
//
// This structure captures all configurable aspects of the emulation layer:
//   - Logging configuration
//   - Path encoding mode and legacy code page
//   - Path conversion limits and POSIX mount prefixes
//   - Link dereferencing limits
//   - Native backend selection and configuration (backend-specific)
//   - Metrics exposition
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (POSIXSHIM_*)
//  3. Configuration file (YAML or TOML)
//  4. Default values (lowest priority)
//
// Backend Configuration Pattern:
// Each backend defines its own configuration type, decoded by a factory from
// the section matching the selected type (e.g., backend.badger, backend.s3).
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Encoding selects how POSIX path text is interpreted
	Encoding EncodingConfig `mapstructure:"encoding" yaml:"encoding"`

	// Paths controls path conversion
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`

	// Links controls link dereferencing
	Links LinksConfig `mapstructure:"links" yaml:"links"`

	// Backend specifies the native backend type and type-specific configuration
	Backend BackendConfig `mapstructure:"backend" yaml:"backend"`

	// Metrics controls Prometheus metrics exposition
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" yaml:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" yaml:"output" validate:"required"`
}

// EncodingConfig selects the encoding mode.
type EncodingConfig struct {
	// Mode is fixed for the lifetime of the process
	// Valid values: legacy, utf8
	Mode string `mapstructure:"mode" yaml:"mode" validate:"required,oneof=legacy utf8 ansi utf-8"`

	// LegacyCodepage is the IANA name of the single-byte code page used for
	// narrow native text (e.g., "windows-1252")
	LegacyCodepage string `mapstructure:"legacy_codepage" yaml:"legacy_codepage" validate:"required"`
}

// PathsConfig controls path conversion.
type PathsConfig struct {
	// MaxPath is the conversion buffer capacity in native units
	MaxPath int `mapstructure:"max_path" yaml:"max_path" validate:"gte=3,lte=32767"`

	// Mounts rewrites POSIX prefixes (e.g., /tmp) to native ones before
	// conversion. Longest prefix wins.
	Mounts []pathconv.Mount `mapstructure:"mounts" yaml:"mounts" validate:"dive"`
}

// LinksConfig controls link dereferencing.
type LinksConfig struct {
	// MaxHops bounds how many links one call follows. 1 follows a single
	// level, like the native runtime.
	MaxHops int `mapstructure:"max_hops" yaml:"max_hops" validate:"gte=1,lte=1024"`
}

// BackendConfig specifies the native backend.
//
// The Type field determines which backend implementation is used.
// Only the corresponding type-specific configuration section is used.
type BackendConfig struct {
	// Type specifies which backend implementation to use
	// Valid values: memory, badger, s3, host
	Type string `mapstructure:"type" yaml:"type" validate:"required,oneof=memory badger s3 host"`

	// DisableStat64 hides the backend's 64-bit metadata call, forcing the
	// narrow fallback with clamped values
	DisableStat64 bool `mapstructure:"disable_stat64" yaml:"disable_stat64"`

	// Roots lists the drive or share roots of emulated volumes
	// Only used when Type = "memory" or "badger"
	Roots []string `mapstructure:"roots" yaml:"roots"`

	// Memory contains memory-specific configuration
	// Only used when Type = "memory"
	Memory map[string]any `mapstructure:"memory" yaml:"memory"`

	// Badger contains BadgerDB-specific configuration
	// Only used when Type = "badger"
	Badger map[string]any `mapstructure:"badger" yaml:"badger"`

	// S3 contains S3-specific configuration
	// Only used when Type = "s3"
	S3 map[string]any `mapstructure:"s3" yaml:"s3"`

	// Host contains host-specific configuration
	// Only used when Type = "host"
	Host map[string]any `mapstructure:"host" yaml:"host"`
}

// MetricsConfig controls metrics exposition.
type MetricsConfig struct {
	// Enabled turns on Prometheus metrics collection and the HTTP endpoint
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Port is the HTTP port of the /metrics endpoint
	Port int `mapstructure:"port" yaml:"port" validate:"omitempty,gt=0,lte=65535"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (POSIXSHIM_*)
//  2. Configuration file
//  3. Default values
//
// Parameters:
//   - configPath: Path to config file (empty string uses default location)
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: Configuration loading or validation error
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures viper with environment variables and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the POSIXSHIM_ prefix and underscores
	// Example: POSIXSHIM_ENCODING_MODE=utf8
	v.SetEnvPrefix("POSIXSHIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper knows about.
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default location: $XDG_CONFIG_HOME/posixshim/config.{yaml,toml}
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// envKeys lists the scalar keys that can be set from the environment without
// appearing in the config file.
var envKeys = []string{
	"logging.level",
	"logging.format",
	"logging.output",
	"encoding.mode",
	"encoding.legacy_codepage",
	"paths.max_path",
	"links.max_hops",
	"backend.type",
	"backend.disable_stat64",
	"metrics.enabled",
	"metrics.port",
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		// An explicit path that does not exist is not an error either
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to current
// directory (.) if home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "posixshim")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "posixshim")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// GetConfigDir returns the configuration directory path (exposed for init command).
func GetConfigDir() string {
	return getConfigDir()
}
