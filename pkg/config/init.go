package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configHeader = `# posixshim Configuration File
#
# Generated by "posixshim init". Every value below is a default; remove what
# you do not need to change. Environment variables override this file, e.g.
# POSIXSHIM_ENCODING_MODE=legacy or POSIXSHIM_BACKEND_TYPE=badger.
#
# encoding.mode is fixed for the lifetime of the process:
#   utf8   - path text is UTF-8, native paths are wide (UTF-16)
#   legacy - path text is in encoding.legacy_codepage, native paths are narrow
#
# backend.type selects the native filesystem:
#   memory - emulated volume held in process memory
#   badger - emulated volume persisted in BadgerDB (backend.badger.db_path)
#   s3     - object storage bucket (backend.s3.bucket, backend.s3.region)
#   host   - host directories mapped to drive letters (backend.host.drives)

`

// InitConfig writes a default configuration file to the default location.
//
// Parameters:
//   - force: Overwrite an existing file
//
// Returns:
//   - string: Path of the written file
//   - error: When the file exists and force is false, or on I/O failure
func InitConfig(force bool) (string, error) {
	configPath := GetDefaultConfigPath()
	if err := InitConfigToPath(configPath, force); err != nil {
		return "", err
	}
	return configPath, nil
}

// InitConfigToPath writes a default configuration file to configPath,
// creating parent directories as needed.
func InitConfigToPath(configPath string, force bool) error {
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content, err := generateYAMLWithComments(GetDefaultConfig())
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateYAMLWithComments renders cfg as YAML behind the explanatory header.
func generateYAMLWithComments(cfg *Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	return buf.String(), nil
}
