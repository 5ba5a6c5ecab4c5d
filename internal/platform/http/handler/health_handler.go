// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health returns a liveness handler for GET and HEAD. The JSON body carries
// the service name when one is given.
func Health(service string) gin.HandlerFunc {
	body := gin.H{"status": "ok"}
	if service != "" {
		body["service"] = service
	}
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		if c.Request.Method == http.MethodHead {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
