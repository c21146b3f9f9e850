package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Rate sources accepted in RATES_SOURCE.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example .env:
//
//	RATES_SOURCE=file
//	RATES_FILE=data.csv
//	SERVER_PORT=8080
//	MAX_BODY_BYTES=1048576
//	RATE_LIMIT_PER_MINUTE=60
//	POSTGRES_HOST=localhost
//	POSTGRES_RATES_TABLE=exchange_rates
type Config struct {
	Server   ServerConfig
	Rates    RatesConfig
	Postgres PostgresConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	MaxBodyBytes int64 // cap on a POST /api/v1/convert body
	RateLimit    int   // requests per minute per client IP
}

// RatesConfig selects where the reference dataset comes from.
type RatesConfig struct {
	Source string // SourceFile or SourcePostgres
	File   string // CSV path when Source is SourceFile
}

// PostgresConfig defines connection details for PostgreSQL. Only read when
// Rates.Source is SourcePostgres.
type PostgresConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
	RatesTable string
	URL        string
}

// AppConfig is the globally accessible configuration instance, populated by
// LoadConfig.
var AppConfig Config

// LoadConfig populates AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// The returned error lists every missing or invalid key.
func LoadConfig() error {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MAX_BODY_BYTES", 1<<20)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("RATES_SOURCE", SourceFile)
	viper.SetDefault("RATES_FILE", "data.csv")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "ratebook")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
	viper.SetDefault("POSTGRES_RATES_TABLE", "exchange_rates")

	// Optional; common in local dev.
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			MaxBodyBytes: viper.GetInt64("MAX_BODY_BYTES"),
			RateLimit:    viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Rates: RatesConfig{
			Source: strings.ToLower(strings.TrimSpace(viper.GetString("RATES_SOURCE"))),
			File:   viper.GetString("RATES_FILE"),
		},
		Postgres: PostgresConfig{
			Host:       viper.GetString("POSTGRES_HOST"),
			Port:       viper.GetInt("POSTGRES_PORT"),
			User:       viper.GetString("POSTGRES_USER"),
			Password:   viper.GetString("POSTGRES_PASSWORD"),
			DBName:     viper.GetString("POSTGRES_DB"),
			SSLMode:    viper.GetString("POSTGRES_SSLMODE"),
			RatesTable: viper.GetString("POSTGRES_RATES_TABLE"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	return validateConfig(AppConfig)
}

// validateConfig reports every required key that is missing. Postgres keys
// are only required when the rates come from Postgres.
func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		missing = append(missing, "MAX_BODY_BYTES")
	}

	switch cfg.Rates.Source {
	case SourceFile:
		if cfg.Rates.File == "" {
			missing = append(missing, "RATES_FILE")
		}
	case SourcePostgres:
		if cfg.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if cfg.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if cfg.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
		if cfg.Postgres.RatesTable == "" {
			missing = append(missing, "POSTGRES_RATES_TABLE")
		}
	default:
		return fmt.Errorf("invalid RATES_SOURCE %q: want %s or %s", cfg.Rates.Source, SourceFile, SourcePostgres)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
