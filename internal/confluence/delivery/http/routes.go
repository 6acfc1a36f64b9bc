package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/health", h.Health)
	rg.GET("/spaces", h.ListSpaces)
	rg.GET("/spaces/:spaceKey/pages", h.ListPages)
	rg.POST("/upload", h.Publish)
}
