// Package errors maps failures to user-facing suggestions for the CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tessro/cadence/internal/api"
)

// Error types for common failure scenarios.
var (
	ErrNotAuthorized = errors.New("not authorized")
	ErrItemNotFound  = errors.New("item not found")
	ErrRateLimited   = errors.New("rate limited")
	ErrNetworkError  = errors.New("network error")
	ErrTimeout       = errors.New("request timeout")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CadenceError wraps an error with a user-friendly suggestion.
type CadenceError struct {
	Err        error
	Suggestion string
}

func (e *CadenceError) Error() string {
	return e.Err.Error()
}

func (e *CadenceError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &CadenceError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var cadenceErr *CadenceError
	if errors.As(err, &cadenceErr) && cadenceErr.Suggestion != "" {
		return cadenceErr.Suggestion
	}

	// API responses carry a status code worth mapping directly.
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == 401 || apiErr.Status == 403:
			return "Check your developer and user tokens with 'cadence config show'"
		case apiErr.Status == 404:
			return "The item may not be available in your storefront"
		case apiErr.Status == 429:
			return "Too many requests. Wait a moment and try again"
		case apiErr.Status >= 500:
			return "The service is having issues. Try again in a moment"
		}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrNotAuthorized) || strings.Contains(errStr, "not authorized") ||
		strings.Contains(errStr, "invalid token") || strings.Contains(errStr, "token expired") {
		return "Set your tokens via 'cadence config set service.developer_token <token>'"
	}

	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") {
		return "Too many requests. Wait a moment and try again"
	}

	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'cadence config init' to set up your configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
