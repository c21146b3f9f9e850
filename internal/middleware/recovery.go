package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/ratebook/internal/logger"
)

// RecoveryMiddleware recovers from panics in later handlers.
//
// Behavior:
//   - Logs the panic value, request id and stack trace.
//   - Aborts the request with 500 and a dto.ErrorResponse.
//
// Returns:
//   - gin.HandlerFunc: middleware to register early in the chain.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Str("request_id", c.GetString(RequestIDKey)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				AbortWithError(c, http.StatusInternalServerError, "Internal server error", fmt.Errorf("%v", r))
			}
		}()

		c.Next()
	}
}
