package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/ratebook/internal/logger"
)

// RequestLogger logs one structured line per request once it has been
// served: method, path, status, latency and the request id set by RequestID.
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		rid, _ := c.Get(RequestIDKey)

		ev := logger.L().Info()
		if c.Writer.Status() >= 500 {
			ev = logger.L().Error()
		}
		ev.Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int("bytes_in", int(c.Request.ContentLength)).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
