package middleware

import (
	"fmt"

	"blog-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, stores it in
// the gin context and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(utils.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// AccessLog écrit une ligne par requête dans le logger applicatif
func AccessLog() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output: utils.LogWriter(),
		Formatter: func(p gin.LogFormatterParams) string {
			requestID, _ := p.Keys[utils.RequestIDKey].(string)
			return fmt.Sprintf("%s %s %d %s request_id=%s",
				p.Method, p.Path, p.StatusCode, p.Latency, requestID)
		},
	})
}
