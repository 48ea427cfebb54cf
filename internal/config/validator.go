package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the accepted log.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate returns every problem found in c.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.Catalog.Source) == "" {
		errs = append(errs, ValidationError{Field: "catalog.source", Value: c.Catalog.Source, Message: "must not be empty"})
	}
	if c.Catalog.Timeout <= 0 {
		errs = append(errs, ValidationError{Field: "catalog.timeout", Value: c.Catalog.Timeout, Message: "must be positive"})
	}
	if c.Feedback.Timeout <= 0 {
		errs = append(errs, ValidationError{Field: "feedback.timeout", Value: c.Feedback.Timeout, Message: "must be positive"})
	}
	if c.Feedback.Webhook != "" {
		if u, err := url.Parse(c.Feedback.Webhook); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{Field: "feedback.webhook", Value: c.Feedback.Webhook, Message: "must be an http(s) URL"})
		}
	}
	if c.Log.Level != "" && !slices.Contains(ValidLogLevels(), c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errs
}
