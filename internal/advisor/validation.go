package advisor

import (
	"fmt"
	"net/url"
	"strings"
)

// CanSubmit reports whether both fields are non-empty after trimming.
// The form uses it to enable the submit binding.
func CanSubmit(location, query string) bool {
	return strings.TrimSpace(location) != "" && strings.TrimSpace(query) != ""
}

// NewQueryInput trims both fields and returns a validation error when
// either one is empty.
func NewQueryInput(location, query string) (QueryInput, error) {
	if !CanSubmit(location, query) {
		return QueryInput{}, NewValidationError(MsgValidation)
	}
	return QueryInput{
		Location: strings.TrimSpace(location),
		Query:    strings.TrimSpace(query),
	}, nil
}

// Validate checks an already constructed input.
func (in QueryInput) Validate() error {
	if !CanSubmit(in.Location, in.Query) {
		return NewValidationError(MsgValidation)
	}
	return nil
}

// ValidateBaseURL checks that a backend base URL is absolute http(s).
func ValidateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("backend URL cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid backend URL %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend URL must use http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("backend URL %q has no host", raw)
	}

	return nil
}
