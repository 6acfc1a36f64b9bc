package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"meeting-minutes/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "AI Meeting Transcription Backend"
	HealthVersion = "1.0.0"
	ServiceName   = "meeting-minutes"
)

// rootInfo describes the running service.
// @Summary Service Info
// @Description Report the service name, version and current time
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is running"
// @Router / [get]
func (srv HTTPServer) rootInfo(c *gin.Context) {
	response.Success(c, gin.H{
		"message":   HealthMessage,
		"version":   HealthVersion,
		"status":    "running",
		"timestamp": time.Now().In(srv.location).Format(time.RFC3339),
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"openai":  srv.openAI != nil,
	})
}

// readyCheck reports ready once routes are mapped.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"service": ServiceName,
	})
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status": "alive",
	})
}
