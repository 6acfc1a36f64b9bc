package http

import (
	"github.com/gin-gonic/gin"

	"meeting-minutes/internal/confluence"
	"meeting-minutes/pkg/log"
)

// Handler is the public interface for the confluence HTTP delivery layer.
type Handler interface {
	Health(c *gin.Context)
	ListSpaces(c *gin.Context)
	ListPages(c *gin.Context)
	Publish(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc confluence.UseCase
}

// New creates a new HTTP handler for the confluence domain.
func New(l log.Logger, uc confluence.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
