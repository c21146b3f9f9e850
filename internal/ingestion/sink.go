package ingestion

import (
	"errors"
	"fmt"
	"io"

	"github.com/guttosm/ratebook/internal/domain/models"
)

// Sink receives the outcomes of a run, one call per emitted line.
//
// EmitError gets either a *models.LineError or the fatal load error.
type Sink interface {
	EmitResult(r *models.Result) error
	EmitError(err error) error
}

// WriterSink writes result lines to Out and "Error: ..." lines to Diag.
type WriterSink struct {
	Out  io.Writer
	Diag io.Writer
}

// NewWriterSink returns a sink writing to out and diag.
func NewWriterSink(out, diag io.Writer) *WriterSink {
	return &WriterSink{Out: out, Diag: diag}
}

func (s *WriterSink) EmitResult(r *models.Result) error {
	_, err := fmt.Fprintln(s.Out, r.String())
	return err
}

func (s *WriterSink) EmitError(err error) error {
	_, werr := fmt.Fprintln(s.Diag, FormatDiagnostic(err))
	return werr
}

// FormatDiagnostic renders err as a diagnostic line, without the newline.
func FormatDiagnostic(err error) string {
	return "Error: " + err.Error()
}

// CollectSink keeps every outcome in memory, in emission order.
type CollectSink struct {
	Results []models.Result
	Errors  []models.LineError
	// Fatal is the load error, if the run never got to the records.
	Fatal error
}

func (s *CollectSink) EmitResult(r *models.Result) error {
	s.Results = append(s.Results, *r)
	return nil
}

func (s *CollectSink) EmitError(err error) error {
	var le *models.LineError
	if errors.As(err, &le) {
		s.Errors = append(s.Errors, *le)
		return nil
	}
	s.Fatal = err
	return nil
}
