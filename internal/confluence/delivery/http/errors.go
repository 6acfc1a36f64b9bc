package http

import (
	"errors"
	"fmt"
	"net/http"

	"meeting-minutes/internal/confluence"
	pkgConfluence "meeting-minutes/pkg/confluence"
	pkgErrors "meeting-minutes/pkg/errors"
)

var (
	errInvalidBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "request body must be valid JSON")
	errNotConfigured = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Confluence integration is not configured")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, confluence.ErrTranscriptRequired),
		errors.Is(err, confluence.ErrTitleContentEmpty),
		errors.Is(err, confluence.ErrSpaceKeyRequired),
		errors.Is(err, confluence.ErrInvalidView):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, confluence.ErrNotConfigured):
		return errNotConfigured
	}

	var listingErr *pkgConfluence.RemoteListingError
	if errors.As(err, &listingErr) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway,
			fmt.Sprintf("Confluence listing failed: %d %s", listingErr.StatusCode, listingErr.Body))
	}

	var publishErr *pkgConfluence.PublishError
	if errors.As(err, &publishErr) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway,
			fmt.Sprintf("Confluence page creation failed: %d %s", publishErr.StatusCode, publishErr.Body))
	}

	var apiErr *pkgConfluence.APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway,
			fmt.Sprintf("Confluence request failed: %d %s", apiErr.StatusCode, apiErr.Body))
	}

	return pkgErrors.ErrInternalServerError
}
