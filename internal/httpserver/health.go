package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-submission-bot/pkg/response"
)

// Health response constants.
const (
	HealthVersion = "1.0.0"
	ServiceName   = "task-submission-bot"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the bot process is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Bot is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the chat gateway is connected.
// @Summary Readiness Check
// @Description Check if the bot is connected and serving commands
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Bot is ready"
// @Failure 503 {object} map[string]interface{} "Gateway not connected"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil && !srv.ready() {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "gateway not connected",
		})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Bot is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
