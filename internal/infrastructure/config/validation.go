package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
)

// maxSocketPathLen is the portable sun_path limit (macOS 104, Linux 108)
const maxSocketPathLen = 104

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	// Both rules are static, registration cannot fail
	_ = v.RegisterValidation("unixsocket", validateUnixSocketPath)
	_ = v.RegisterValidation("yamlfile", validateYAMLFile)
	return v
}

// validateUnixSocketPath accepts absolute paths that fit in a sockaddr_un
func validateUnixSocketPath(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	return filepath.IsAbs(path) &&
		!strings.HasSuffix(path, "/") &&
		len(path) <= maxSocketPathLen
}

func validateYAMLFile(fl validator.FieldLevel) bool {
	switch strings.ToLower(filepath.Ext(fl.Field().String())) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ValidateConfig checks the configuration tags and reports the first violation
// as a *shared.ValidationError
func ValidateConfig(cfg *Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		e := fieldErrs[0]
		return shared.NewValidationError(e.Namespace(), describeRule(e))
	}
	return err
}

func describeRule(e validator.FieldError) string {
	switch e.Tag() {
	case "unixsocket":
		return fmt.Sprintf("%q is not an absolute socket path of at most %d bytes", e.Value(), maxSocketPathLen)
	case "yamlfile":
		return fmt.Sprintf("%q must be a .yaml or .yml file", e.Value())
	}
	if e.Param() != "" {
		return fmt.Sprintf("failed %s=%s (value: %v)", e.Tag(), e.Param(), e.Value())
	}
	return fmt.Sprintf("failed %s (value: %v)", e.Tag(), e.Value())
}
