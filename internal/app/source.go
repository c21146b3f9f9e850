package app

import (
	"context"
	"fmt"

	"github.com/guttosm/ratebook/config"
	"github.com/guttosm/ratebook/internal/ingestion"
	"github.com/guttosm/ratebook/internal/storage"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// NewReferenceSource picks the reference dataset source named by
// cfg.Rates.Source. The returned cleanup releases whatever the source holds
// and is never nil when err is nil.
func NewReferenceSource(cfg config.Config) (ingestion.ReferenceSource, func(), error) {
	switch cfg.Rates.Source {
	case config.SourcePostgres:
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		src := storage.NewPostgresRateSource(db, cfg.Postgres.RatesTable)
		return src, func() { _ = db.Close() }, nil
	case config.SourceFile, "":
		return ingestion.FileSource{Path: cfg.Rates.File}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown rates source %q", cfg.Rates.Source)
	}
}

// readiness reports the source's own health when it has one.
func readiness(src ingestion.ReferenceSource) func(ctx context.Context) error {
	p, ok := src.(pinger)
	if !ok {
		return nil
	}
	return p.Ping
}
