package confluence

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the client lacks a base URL or credentials.
var ErrNotConfigured = errors.New("confluence client is not configured")

// APIError is a non-2xx response from the Confluence REST API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("confluence %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// RemoteListingError is returned by the pagination aggregator on a non-2xx page.
type RemoteListingError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *RemoteListingError) Error() string {
	return fmt.Sprintf("listing %s failed: %d %s", e.Path, e.StatusCode, e.Body)
}

// PublishError is returned when page creation is rejected.
type PublishError struct {
	StatusCode int
	Body       string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to create confluence page: %d %s", e.StatusCode, e.Body)
}

// asListingError converts an APIError into a RemoteListingError; other errors pass through.
func asListingError(path string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &RemoteListingError{Path: path, StatusCode: apiErr.StatusCode, Body: apiErr.Body}
	}
	return err
}
