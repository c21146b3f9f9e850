package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/ratebook/config"
	"github.com/guttosm/ratebook/internal/api"
	"github.com/guttosm/ratebook/internal/ingestion"
	"github.com/guttosm/ratebook/internal/logger"
	"github.com/guttosm/ratebook/internal/middleware"
	"github.com/guttosm/ratebook/internal/service"
)

// InitializeApp wires the HTTP service from config.AppConfig.
//
// Behavior:
//   - Opens the reference source selected by RATES_SOURCE.
//   - Loads the rate table once. A table that cannot be loaded (unreadable
//     source, empty rate database) is fatal, so the service never starts
//     without rates.
//   - Builds the conversion service, handler, rate limiter and router, and
//     registers the health probes.
//
// Returns:
//   - *gin.Engine: the router, ready to serve.
//   - func(): cleanup releasing the source (closes the db for postgres).
//   - error: if the source cannot be opened or the table cannot be loaded.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	src, cleanup, err := NewReferenceSource(cfg)
	if err != nil {
		return nil, nil, err
	}

	table, err := ingestion.LoadTable(ctx, src)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load rates: %w", err)
	}
	logger.L().Info().
		Str("source", cfg.Rates.Source).
		Int("entries", table.Len()).
		Str("first", table.First().Date).
		Str("last", table.Last().Date).
		Msg("rate table loaded")

	svc := service.NewConversionService(table)
	handler := api.NewHandler(svc, cfg.Server.MaxBodyBytes)
	router := api.NewRouter(handler, middleware.NewRateLimiter(cfg.Server.RateLimit, time.Minute))

	api.NewHealthHandler(readiness(src)).Register(router)

	return router, cleanup, nil
}
