package handlers

import (
	"net/http"

	"geecurly/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports the latest probe results for Mongo and Redis.
func HealthCheck(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	utils.JSONData(c, code, status)
}
