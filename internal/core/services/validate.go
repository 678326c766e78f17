package services

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator decides whether a discovered path can be trusted.
// A valid path starts with the documentation-root prefix followed by
// one or more characters from the allowed set, and never contains a
// fragment marker.
type Validator struct {
	pattern *regexp.Regexp
}

// NewValidator builds a validator for the given documentation-root
// prefix.
func NewValidator(pathPrefix string) (*Validator, error) {
	if pathPrefix == "" {
		return nil, fmt.Errorf("path prefix must not be empty")
	}

	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(pathPrefix) + `[a-zA-Z0-9._/-]+$`)
	if err != nil {
		return nil, fmt.Errorf("compile allow-pattern: %w", err)
	}

	return &Validator{pattern: pattern}, nil
}

// Validate reports whether path matches the allow-pattern.
// Pure predicate; callers log rejections.
func (v *Validator) Validate(path string) bool {
	if strings.Contains(path, "#") {
		return false
	}
	return v.pattern.MatchString(path)
}
