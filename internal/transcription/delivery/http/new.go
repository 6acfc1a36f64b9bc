package http

import (
	"github.com/gin-gonic/gin"

	"meeting-minutes/internal/transcription"
	"meeting-minutes/pkg/log"
)

// Handler is the public interface for the transcription HTTP delivery layer.
type Handler interface {
	Upload(c *gin.Context)
	Health(c *gin.Context)
}

// UploadConfig controls where and how audio uploads are accepted.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

type handler struct {
	l      log.Logger
	uc     transcription.UseCase
	upload UploadConfig
}

// New creates a new HTTP handler for the transcription domain.
func New(l log.Logger, uc transcription.UseCase, upload UploadConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		upload: upload,
	}
}
