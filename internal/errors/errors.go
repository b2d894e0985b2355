// Package errors defines the typed error families the Steam API client and
// the analysis session report to callers.
package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

// ErrNoData is reported by every query operation invoked before a library
// snapshot has been loaded.
var ErrNoData = stdErrors.New("no game data loaded")

// IsNoData reports whether err is the missing-data condition (even wrapped).
func IsNoData(err error) bool {
	return stdErrors.Is(err, ErrNoData)
}

// RateLimitError represents a rate limit response from the Steam API.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// NewRateLimitError creates a RateLimitError with the given message.
func NewRateLimitError(message string) *RateLimitError {
	return &RateLimitError{Message: message}
}

// IsRateLimitError checks if error is a RateLimitError.
func IsRateLimitError(err error) bool {
	var rateErr *RateLimitError
	return stdErrors.As(err, &rateErr)
}

// ProfileError represents a Steam profile access failure (private profile,
// invalid key, unknown account).
type ProfileError struct {
	Message    string
	StatusCode int
	APIMessage string // error message from the Steam API if available
}

func (e *ProfileError) Error() string {
	if e.APIMessage != "" {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Message, e.StatusCode, e.APIMessage)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// NewProfileError creates a profile access error from an API status code.
func NewProfileError(statusCode int, apiMessage string) *ProfileError {
	var message string
	apiLower := strings.ToLower(apiMessage)

	switch statusCode {
	case 403:
		if strings.Contains(apiLower, "private") {
			message = "Steam profile is private or inaccessible"
		} else {
			message = "Access forbidden - check API key and profile settings"
		}
	case 401:
		message = "Invalid Steam API key"
	default:
		message = "Steam API access error"
	}

	return &ProfileError{
		Message:    message,
		StatusCode: statusCode,
		APIMessage: apiMessage,
	}
}

// IsProfileError checks if error is a ProfileError.
func IsProfileError(err error) bool {
	var profileErr *ProfileError
	return stdErrors.As(err, &profileErr)
}
