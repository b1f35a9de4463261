package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id to and from the client.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id for log correlation.
// A caller-supplied X-Request-ID is reused so ids stay stable across
// proxies; otherwise a fresh one is generated. The id is echoed on the
// response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
