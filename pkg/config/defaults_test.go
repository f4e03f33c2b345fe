package config

import (
	"testing"

	"github.com/marmos91/posixshim/pkg/pathconv"
)

func TestApplyDefaults_Logging(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Expected default output 'stderr', got %q", cfg.Logging.Output)
	}
}

func TestApplyDefaults_NormalizesCase(t *testing.T) {
	cfg := &Config{
		Logging:  LoggingConfig{Level: "warn"},
		Encoding: EncodingConfig{Mode: "LEGACY"},
	}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected level normalized to 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Encoding.Mode != "legacy" {
		t.Errorf("Expected mode normalized to 'legacy', got %q", cfg.Encoding.Mode)
	}
}

func TestApplyDefaults_Paths(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Paths.MaxPath != pathconv.MaxPath {
		t.Errorf("Expected default max_path %d, got %d", pathconv.MaxPath, cfg.Paths.MaxPath)
	}
	if len(cfg.Paths.Mounts) != 1 || cfg.Paths.Mounts[0].Prefix != "/dev/null" {
		t.Errorf("Expected the /dev/null mount by default, got %v", cfg.Paths.Mounts)
	}
}

func TestApplyDefaults_PreservesEmptyMounts(t *testing.T) {
	cfg := &Config{Paths: PathsConfig{Mounts: []pathconv.Mount{}}}
	ApplyDefaults(cfg)

	if len(cfg.Paths.Mounts) != 0 {
		t.Errorf("Expected explicit empty mounts to be kept, got %v", cfg.Paths.Mounts)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		Links:   LinksConfig{MaxHops: 1},
		Backend: BackendConfig{Type: "badger", Roots: []string{`D:\`}},
		Metrics: MetricsConfig{Port: 9100},
	}
	ApplyDefaults(cfg)

	if cfg.Links.MaxHops != 1 {
		t.Errorf("Expected max_hops 1 to be preserved, got %d", cfg.Links.MaxHops)
	}
	if cfg.Backend.Type != "badger" {
		t.Errorf("Expected backend 'badger' to be preserved, got %q", cfg.Backend.Type)
	}
	if cfg.Backend.Roots[0] != `D:\` {
		t.Errorf("Expected roots to be preserved, got %v", cfg.Backend.Roots)
	}
	if cfg.Metrics.Port != 9100 {
		t.Errorf("Expected port 9100 to be preserved, got %d", cfg.Metrics.Port)
	}
}

func TestApplyDefaults_BackendMaps(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Backend.Memory == nil || cfg.Backend.Badger == nil || cfg.Backend.S3 == nil || cfg.Backend.Host == nil {
		t.Error("Expected all backend option maps to be initialized")
	}
}

func TestGetDefaultConfig_IsValid(t *testing.T) {
	if err := Validate(GetDefaultConfig()); err != nil {
		t.Errorf("Default config should be valid, got: %v", err)
	}
}
