package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the JSON envelope returned by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorHandler is a middleware that catches panics and returns a structured envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, APIResponse{
					Success: false,
					Error:   "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONData sends a success envelope.
func JSONData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

// JSONError sends a standardized JSON error envelope.
func JSONError(c *gin.Context, status int, message string) {
	logger := GetLogger()
	logger.Warn("request failed", zap.Int("status", status), zap.String("error", message))
	c.JSON(status, APIResponse{Success: false, Error: message})
}
