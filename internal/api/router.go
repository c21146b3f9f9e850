package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/ratebook/internal/metrics"
	"github.com/guttosm/ratebook/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RequestTimeout bounds the context of every request.
const RequestTimeout = 10 * time.Second

// NewRouter creates a Gin engine with the API routes and the middleware
// chain (request id, request logger, recovery, error handler, rate limiter,
// timeout). Health probes are registered by app.InitializeApp.
func NewRouter(handler *Handler, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		limiter.Middleware(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger & metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.POST("/convert", handler.Convert)
		v1.GET("/rates", handler.ListRates)
		v1.GET("/rates/summary", handler.GetRatesSummary)
		v1.GET("/rates/:date", handler.GetRate)
	}

	return router
}
