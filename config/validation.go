package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks the loaded configuration and reports every invalid field
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if !validPort(cfg.ServerPort) {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "SHUTDOWN_TIMEOUT", Message: "must be positive"})
	}
	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_REQUESTS", Message: "must be positive"})
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_WINDOW", Message: "must be positive"})
	}
	if cfg.RedisURL == "" && cfg.RedisHost != "" && !validPort(cfg.RedisPort) {
		errs = append(errs, ValidationError{Field: "REDIS_PORT", Message: fmt.Sprintf("invalid port %q", cfg.RedisPort)})
	}
	if cfg.RedisDB < 0 {
		errs = append(errs, ValidationError{Field: "REDIS_DB", Message: "must not be negative"})
	}
	if cfg.CatalogFile != "" {
		if _, err := os.Stat(cfg.CatalogFile); err != nil {
			errs = append(errs, ValidationError{Field: "CATALOG_FILE", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validPort(p string) bool {
	n, err := strconv.Atoi(p)
	return err == nil && n > 0 && n < 65536
}
