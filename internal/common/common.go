package common

import (
	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextRequestIDKey = "requestID" // Key to store the request ID in context

	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"
)

// GetRequestIDFromContext retrieves the request ID set by the request ID
// middleware. It returns "" when the middleware did not run.
func GetRequestIDFromContext(c *gin.Context) string {
	v, exists := c.Get(ContextRequestIDKey)
	if !exists {
		return ""
	}
	id, _ := v.(string)
	return id
}
