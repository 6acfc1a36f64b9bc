package http

import (
	"errors"
	"fmt"
	"net/http"

	"meeting-minutes/internal/transcription"
	pkgErrors "meeting-minutes/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transcription.ErrAudioRequired),
		errors.Is(err, transcription.ErrUnsupportedAudio):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, transcription.ErrFileTooLarge):
		return pkgErrors.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s (max %d MB)", err.Error(), h.upload.MaxBytes>>20))
	case errors.Is(err, transcription.ErrProviderNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, transcription.ErrProviderNotConfigured.Error())
	case errors.Is(err, transcription.ErrUpstreamAuth):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, transcription.ErrUpstreamAuth.Error())
	case errors.Is(err, transcription.ErrUpstreamQuota):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, transcription.ErrUpstreamQuota.Error())
	case errors.Is(err, transcription.ErrUpstreamUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, transcription.ErrUpstreamUnavailable.Error())
	case errors.Is(err, transcription.ErrTranscriptionFailed),
		errors.Is(err, transcription.ErrMinutesFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
