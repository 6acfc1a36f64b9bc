package http

import (
	"github.com/gin-gonic/gin"

	"meeting-minutes/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Uploads are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/upload", mw.RateLimit(), h.Upload)
	rg.GET("/health", h.Health)
}
