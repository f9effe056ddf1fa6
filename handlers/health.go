package handlers

import (
	"net/http"

	"astromarket/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last backing-service snapshot.
type HealthHandler struct{}

func (h *HealthHandler) HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	healthy := status.Redis && (status.Mongo == nil || *status.Mongo)
	code := http.StatusOK
	state := "ok"
	if !healthy {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "services": status})
}
