package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthFailure indicates the API key was rejected or expired
	ErrAuthFailure = errors.New("gemini: authentication failed")

	// ErrQuotaExceeded indicates the API quota or rate limit was exhausted
	ErrQuotaExceeded = errors.New("gemini: quota exceeded")

	// ErrUnavailable indicates a transient network or service fault
	ErrUnavailable = errors.New("gemini: service unavailable")

	// ErrMalformedResponse indicates the API returned content that cannot
	// be interpreted as a reply
	ErrMalformedResponse = errors.New("gemini: malformed response")
)

// APIError wraps a non-200 API response with its HTTP status and raw body.
// The raw body is for internal logging only and must never be surfaced to
// end users.
type APIError struct {
	StatusCode int
	Body       string
	Kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// classifyStatus maps an HTTP status code to one of the sentinel errors.
func classifyStatus(code int) error {
	switch {
	case code == 401 || code == 403:
		return ErrAuthFailure
	case code == 429:
		return ErrQuotaExceeded
	default:
		return ErrUnavailable
	}
}
