package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/xolan/rfext/internal/pathnorm"
)

// MaxRetryDelay caps folder.retry_delay.
const MaxRetryDelay = 5 * time.Minute

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the configuration using struct tags and custom rules.
// Call Normalize first; Validate expects lower-cased enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return validateCustomRules(c)
}

// validateCustomRules performs validation that struct tags cannot express.
func validateCustomRules(c *Config) error {
	d := c.Folder.RetryDelay.Duration
	if d < 0 {
		return fmt.Errorf("folder.retry_delay: must not be negative (got %s)", d)
	}
	if d > MaxRetryDelay {
		return fmt.Errorf("folder.retry_delay: must not exceed %s (got %s)", MaxRetryDelay, d)
	}

	if ref := c.Path.ReferencePath; ref != "" && !pathnorm.IsAbs(ref) {
		return fmt.Errorf("path.reference_path: must be absolute (got %q)", ref)
	}
	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value())
	}
	return err
}
