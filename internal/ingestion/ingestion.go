package ingestion

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/guttosm/ratebook/internal/logger"
	"github.com/guttosm/ratebook/internal/metrics"
	"github.com/guttosm/ratebook/internal/ratetable"
	"github.com/guttosm/ratebook/internal/textline"
)

// Summary counts what a run did with the record stream.
type Summary struct {
	Lines   int `json:"lines"`
	Results int `json:"results"`
	Errors  int `json:"errors"`
	Skipped int `json:"skipped"`
}

// LoadError wraps the failure to build the rate table. Run has already sent it
// to the sink when it returns one.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "load rates: " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// Run builds the rate table from reference and values every line of records
// against it.
//
// Parameters:
//   - ctx: checked between record lines.
//   - reference: the "date,exchange_rate" dataset.
//   - records: the "date | value" stream.
//   - sink: receives one result or one diagnostic per record line.
//
// Behavior:
//   - Loads the table with ratetable.Load and records the load in metrics.
//   - On a load failure, emits the failure once through sink and reads no
//     record.
//   - Otherwise hands the table to Process.
//
// Returns:
//   - Summary: outcome counts for the record stream.
//   - error: *LoadError on a load failure (already emitted), or whatever
//     Process returns.
func Run(ctx context.Context, reference, records io.Reader, sink Sink) (Summary, error) {
	table, err := ratetable.Load(reference)
	metrics.ObserveLoad(tableLen(table), err)
	if err != nil {
		logger.L().Warn().Err(err).Msg("rate table load failed")
		if emitErr := sink.EmitError(err); emitErr != nil {
			return Summary{}, fmt.Errorf("emit load failure: %w", emitErr)
		}
		return Summary{}, &LoadError{Err: err}
	}
	logger.L().Info().
		Int("entries", table.Len()).
		Str("first", table.First().Date).
		Str("last", table.Last().Date).
		Msg("rate table loaded")

	return Process(ctx, table, records, sink)
}

// Process values every line of records against table, in order.
//
// Behavior:
//   - Skips blank lines, and the first non-blank line when it is the
//     "date | value" header.
//   - Runs every other line through ParseLine and emits exactly one result or
//     one diagnostic for it. Lines of any length are read whole.
//   - A bad line never stops the loop.
//
// Returns:
//   - Summary: line, result, error and skip counts.
//   - error: only when records cannot be read, the sink fails, or ctx is done.
func Process(ctx context.Context, table *ratetable.Table, records io.Reader, sink Sink) (Summary, error) {
	start := time.Now()
	var sum Summary

	lr := textline.NewReader(records)

	headerChecked := false
	lineNumber := 0

	for lr.Next() {
		select {
		case <-ctx.Done():
			return sum, ctx.Err()
		default:
		}

		lineNumber++
		sum.Lines++
		line := lr.Text()

		trimmed := strings.Trim(line, fieldSpace)
		if trimmed == "" {
			sum.Skipped++
			metrics.LinesTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()
			continue
		}
		if !headerChecked {
			headerChecked = true
			if trimmed == RecordHeader {
				sum.Skipped++
				metrics.LinesTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()
				continue
			}
		}

		out := ParseLine(table, lineNumber, line)
		if !out.OK() {
			sum.Errors++
			metrics.LinesTotal.WithLabelValues(out.Err.Kind.String()).Inc()
			logger.L().Debug().
				Int("line", lineNumber).
				Str("kind", out.Err.Kind.String()).
				Str("input", out.Err.Input).
				Msg("line rejected")
			if err := sink.EmitError(out.Err); err != nil {
				return sum, fmt.Errorf("line %d: emit diagnostic: %w", lineNumber, err)
			}
			continue
		}

		sum.Results++
		metrics.LinesTotal.WithLabelValues(metrics.OutcomeResult).Inc()
		if err := sink.EmitResult(out.Result); err != nil {
			return sum, fmt.Errorf("line %d: emit result: %w", lineNumber, err)
		}
	}
	if err := lr.Err(); err != nil {
		return sum, fmt.Errorf("read records after line %d: %w", lineNumber, err)
	}

	logger.L().Info().
		Int("lines", sum.Lines).
		Int("results", sum.Results).
		Int("errors", sum.Errors).
		Int("skipped", sum.Skipped).
		Dur("elapsed", time.Since(start)).
		Msg("records processed")

	return sum, nil
}

func tableLen(t *ratetable.Table) int {
	if t == nil {
		return 0
	}
	return t.Len()
}
