package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags and custom rules.
//
// This function uses go-playground/validator for declarative validation
// via struct tags, with additional custom validation for complex rules
// that cannot be expressed in tags.
//
// Returns an error describing validation failures.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	if err := validateCustomRules(cfg); err != nil {
		return err
	}

	return nil
}

// validateCustomRules performs custom validation beyond struct tags.
func validateCustomRules(cfg *Config) error {
	if _, err := native.ParseMode(cfg.Encoding.Mode); err != nil {
		return fmt.Errorf("encoding.mode: %w", err)
	}
	if _, err := CodePage(cfg.Encoding.LegacyCodepage); err != nil {
		return fmt.Errorf("encoding.legacy_codepage: %w", err)
	}

	// Mount prefixes are POSIX absolute paths and must be unique
	prefixes := make(map[string]bool)
	for i, m := range cfg.Paths.Mounts {
		prefix := strings.TrimSuffix(m.Prefix, "/")
		if !strings.HasPrefix(m.Prefix, "/") || prefix == "" {
			return fmt.Errorf("paths.mounts[%d]: prefix %q must be an absolute POSIX path below /", i, m.Prefix)
		}
		if m.Target == "" {
			return fmt.Errorf("paths.mounts[%d]: target is required", i)
		}
		if prefixes[prefix] {
			return fmt.Errorf("paths.mounts[%d]: duplicate prefix %q", i, m.Prefix)
		}
		prefixes[prefix] = true
	}

	if cfg.Backend.Type == "memory" || cfg.Backend.Type == "badger" {
		for i, root := range cfg.Backend.Roots {
			b := []byte(pathconv.Clean(root))
			if !pathconv.IsAbs(b) || (!pathconv.HasDrive(b) && !pathconv.IsUNC(b)) {
				return fmt.Errorf("backend.roots[%d]: %q is not a drive or share root", i, root)
			}
		}
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
