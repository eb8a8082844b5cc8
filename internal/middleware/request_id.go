package middleware

import (
	"time"

	"github.com/DhavalSuthar-24/wolvesboard/internal/common"
	"github.com/DhavalSuthar-24/wolvesboard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tags each request with an ID, taken from the incoming
// X-Request-ID header when present, and logs the request on completion.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(common.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(common.ContextRequestIDKey, requestID)
		c.Header(common.HeaderRequestID, requestID)

		start := time.Now()
		c.Next()

		logger.Printf("[%s] %s %s -> %d (%s)", requestID, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
