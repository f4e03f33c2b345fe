package config

import (
	"strings"

	"github.com/marmos91/posixshim/pkg/pathconv"
	"github.com/marmos91/posixshim/pkg/reparse"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// This function is called after loading configuration from file and environment
// variables to fill in any missing values with sensible defaults.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
//   - Backend-specific defaults are handled by backend implementations
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyEncodingDefaults(&cfg.Encoding)
	applyPathsDefaults(&cfg.Paths)
	applyLinksDefaults(&cfg.Links)
	applyBackendDefaults(&cfg.Backend)
	applyMetricsDefaults(&cfg.Metrics)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyEncodingDefaults(cfg *EncodingConfig) {
	if cfg.Mode == "" {
		cfg.Mode = "utf8"
	}
	cfg.Mode = strings.ToLower(cfg.Mode)

	if cfg.LegacyCodepage == "" {
		cfg.LegacyCodepage = "windows-1252"
	}
}

func applyPathsDefaults(cfg *PathsConfig) {
	if cfg.MaxPath == 0 {
		cfg.MaxPath = pathconv.MaxPath
	}
	if cfg.Mounts == nil {
		cfg.Mounts = pathconv.DefaultMounts()
	}
}

func applyLinksDefaults(cfg *LinksConfig) {
	if cfg.MaxHops == 0 {
		cfg.MaxHops = reparse.DefaultMaxHops
	}
}

// applyBackendDefaults sets backend defaults.
func applyBackendDefaults(cfg *BackendConfig) {
	if cfg.Type == "" {
		cfg.Type = "memory"
	}
	if len(cfg.Roots) == 0 {
		cfg.Roots = []string{`C:\`}
	}

	// Initialize maps if nil
	if cfg.Memory == nil {
		cfg.Memory = make(map[string]any)
	}
	if cfg.Badger == nil {
		cfg.Badger = make(map[string]any)
	}
	if cfg.S3 == nil {
		cfg.S3 = make(map[string]any)
	}
	if cfg.Host == nil {
		cfg.Host = make(map[string]any)
	}
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Port == 0 {
		cfg.Port = 9464
	}
}

// GetDefaultConfig returns a Config struct with all default values applied.
//
// This is useful for:
//   - Generating sample configuration files
//   - Testing
//   - Documentation
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
