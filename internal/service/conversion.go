package service

import (
	"context"
	"errors"
	"io"

	"github.com/guttosm/ratebook/internal/domain/models"
	"github.com/guttosm/ratebook/internal/ingestion"
	"github.com/guttosm/ratebook/internal/ratetable"
)

var (
	// ErrInvalidDate is returned by RateFor when the date is not a valid YYYY-MM-DD day.
	ErrInvalidDate = errors.New("invalid date")
	// ErrNoRate is returned by RateFor when the date precedes every known rate.
	ErrNoRate = errors.New("no rate available for date")
)

// Conversion is the outcome of valuing one record stream.
type Conversion struct {
	Results []models.Result
	Errors  []models.LineError
	Summary ingestion.Summary
}

// TableSummary describes the loaded rate table.
type TableSummary struct {
	Count int
	First models.RateEntry
	Last  models.RateEntry
}

// ConversionService values record streams against a rate table loaded once
// at startup. Implementations are safe for concurrent use.
type ConversionService interface {
	Convert(ctx context.Context, records io.Reader) (*Conversion, error)
	RateFor(date string) (models.RateEntry, error)
	Rates(from, to string) ([]models.RateEntry, error)
	Summary() TableSummary
}

type conversionService struct {
	table *ratetable.Table
}

func NewConversionService(table *ratetable.Table) ConversionService {
	return &conversionService{table: table}
}

func (s *conversionService) Convert(ctx context.Context, records io.Reader) (*Conversion, error) {
	sink := &ingestion.CollectSink{}
	sum, err := ingestion.Process(ctx, s.table, records, sink)
	if err != nil {
		return nil, err
	}
	return &Conversion{Results: sink.Results, Errors: sink.Errors, Summary: sum}, nil
}

func (s *conversionService) RateFor(date string) (models.RateEntry, error) {
	if !ingestion.ValidDate(date) {
		return models.RateEntry{}, ErrInvalidDate
	}
	entry, ok := s.table.Lookup(date)
	if !ok {
		return models.RateEntry{}, ErrNoRate
	}
	return entry, nil
}

// Rates lists the table entries dated from..to inclusive. Either bound may be
// empty; a non-empty bound must be a valid date.
func (s *conversionService) Rates(from, to string) ([]models.RateEntry, error) {
	for _, d := range []string{from, to} {
		if d != "" && !ingestion.ValidDate(d) {
			return nil, ErrInvalidDate
		}
	}
	return s.table.Entries(from, to), nil
}

func (s *conversionService) Summary() TableSummary {
	return TableSummary{
		Count: s.table.Len(),
		First: s.table.First(),
		Last:  s.table.Last(),
	}
}
