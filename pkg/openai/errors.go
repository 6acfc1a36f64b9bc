package openai

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAPIKeyRequired is returned by New when no API key is configured.
var ErrAPIKeyRequired = errors.New("openai API key is required")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openai API error %d", e.StatusCode)
	}
	return fmt.Sprintf("openai API error %d: %s", e.StatusCode, e.Message)
}

// IsAuth reports whether the API rejected the credentials.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsQuota reports whether the request hit a rate limit or exhausted the quota.
func (e *APIError) IsQuota() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.Code == CodeInsufficientQuota || e.Type == CodeInsufficientQuota
}
