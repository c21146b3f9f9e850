package ingestion

import (
	"context"
	"io"
	"os"

	"github.com/guttosm/ratebook/internal/metrics"
	"github.com/guttosm/ratebook/internal/ratetable"
)

// ReferenceSource yields the reference dataset as text in the
// "date,exchange_rate" format.
type ReferenceSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// OpenError reports a file that could not be opened. Its text is the
// diagnostic shown to the user; the cause is kept for errors.Is.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return "could not open " + e.Path }

func (e *OpenError) Unwrap() error { return e.Err }

// FileSource reads the reference dataset from a CSV file.
type FileSource struct {
	Path string
}

func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &OpenError{Path: s.Path, Err: err}
	}
	return f, nil
}

// LoadTable opens src and builds a rate table from it.
func LoadTable(ctx context.Context, src ReferenceSource) (*ratetable.Table, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	table, err := ratetable.Load(rc)
	metrics.ObserveLoad(tableLen(table), err)
	if err != nil {
		return nil, err
	}
	return table, nil
}
