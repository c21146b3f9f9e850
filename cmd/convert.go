package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guttosm/ratebook/config"
	"github.com/guttosm/ratebook/internal/app"
	"github.com/guttosm/ratebook/internal/ingestion"
	"github.com/guttosm/ratebook/internal/logger"
	"github.com/spf13/cobra"
)

const errOpenInput = "could not open file."

func newConvertCmd() *cobra.Command {
	var ratesPath string

	cmd := &cobra.Command{
		Use:   "convert <input-file>",
		Short: "Value every record of a file and print the results",
		Long: `Reads "date | value" records from the input file and prints one line per
record: "<date> => <value> = <converted>" on stdout, or "Error: ..." on stderr.

Rates come from --rates when given, otherwise from RATES_SOURCE (the
RATES_FILE CSV by default).`,
		// The argument count is checked by runConvert so a wrong count gets
		// the same diagnostic as an unreadable file.
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{logLevelAnnotation: "error"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.AppConfig
			if ratesPath != "" {
				cfg.Rates = config.RatesConfig{Source: config.SourceFile, File: ratesPath}
			}
			if code := runConvert(cmd.Context(), cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr()); code != 0 {
				return exitCode(code)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&ratesPath, "rates", "", "reference CSV with date,exchange_rate rows")
	return cmd
}

// runConvert values the records of args[0] against the configured rates and
// returns the process exit status. Every failure is reported on diag as an
// "Error: ..." line before returning.
//
// An empty rate database is a reported outcome of the run, like a bad record
// line, and exits 0; only failures to start or finish the run exit 1.
func runConvert(ctx context.Context, cfg config.Config, args []string, stdout, diag io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(diag, "Error: "+errOpenInput)
		return 1
	}

	src, cleanup, err := app.NewReferenceSource(cfg)
	if err != nil {
		fmt.Fprintln(diag, ingestion.FormatDiagnostic(err))
		return 1
	}
	defer cleanup()

	reference, err := src.Open(ctx)
	if err != nil {
		fmt.Fprintln(diag, ingestion.FormatDiagnostic(err))
		return 1
	}
	defer func() { _ = reference.Close() }()

	records, err := os.Open(args[0])
	if err != nil {
		logger.L().Debug().Err(err).Str("path", args[0]).Msg("open input failed")
		fmt.Fprintln(diag, "Error: "+errOpenInput)
		return 1
	}
	defer func() { _ = records.Close() }()

	out := bufio.NewWriter(stdout)
	_, err = ingestion.Run(ctx, reference, records, ingestion.NewWriterSink(out, diag))
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		var loadErr *ingestion.LoadError
		if errors.As(err, &loadErr) {
			return 0
		}
		fmt.Fprintln(diag, ingestion.FormatDiagnostic(err))
		return 1
	}
	return 0
}
