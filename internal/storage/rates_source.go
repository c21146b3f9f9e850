package storage

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/guttosm/ratebook/internal/ratetable"
	pq "github.com/lib/pq"
)

// DefaultRatesTable is the table read when none is configured.
const DefaultRatesTable = "exchange_rates"

// PostgresRateSource serves the reference dataset out of a Postgres table
// with rate_date and exchange_rate columns.
type PostgresRateSource struct {
	db    *sql.DB
	table string
}

func NewPostgresRateSource(db *sql.DB, table string) *PostgresRateSource {
	if table == "" {
		table = DefaultRatesTable
	}
	return &PostgresRateSource{db: db, table: table}
}

func (s *PostgresRateSource) query() string {
	return fmt.Sprintf(
		`SELECT rate_date::text, exchange_rate::text FROM %s ORDER BY rate_date`,
		pq.QuoteIdentifier(s.table),
	)
}

// Open reads every row and renders it in the same "date,exchange_rate" text
// format as the CSV file, so the table loader applies identical rules to both
// sources. Rows with a NULL column are rendered with an empty field and get
// dropped by the loader.
func (s *PostgresRateSource) Open(ctx context.Context) (io.ReadCloser, error) {
	rows, err := s.db.QueryContext(ctx, s.query())
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	var buf bytes.Buffer
	buf.WriteString(ratetable.ReferenceHeader)
	buf.WriteByte('\n')

	for rows.Next() {
		var date, rate sql.NullString
		if err := rows.Scan(&date, &rate); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		buf.WriteString(date.String)
		buf.WriteByte(',')
		buf.WriteString(rate.String)
		buf.WriteByte('\n')
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table, err)
	}

	return io.NopCloser(&buf), nil
}

// Ping checks the connection; used by the readiness probe.
func (s *PostgresRateSource) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
