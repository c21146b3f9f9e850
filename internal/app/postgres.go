package app

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/ratebook/config"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open.
var sqlOpener = sql.Open

// InitPostgres opens a PostgreSQL connection pool for the rate source.
//
// Parameters:
//   - cfg (config.Config): configuration holding the Postgres settings.
//
// Behavior:
//   - Builds the DSN from cfg.Postgres.
//   - Opens a handle through sqlOpener and pings it.
//   - Closes the handle again when the ping fails.
//
// Returns:
//   - *sql.DB: a live pool, safe for concurrent use.
//   - error: if opening or pinging fails.
//
// Example usage:
//
//	db, err := app.InitPostgres(config.AppConfig)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)

	// sql.Open does not connect yet
	db, err := sqlOpener("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// postgresOpener is an indirection used by NewReferenceSource; overridden in
// tests to avoid real connections.
var postgresOpener = InitPostgres
