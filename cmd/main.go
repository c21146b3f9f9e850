package main

//
//  @title           ratebook API
//  @version         1.0
//  @description     Values dated quantities at the exchange rate of that date, or of the closest earlier date.
//  @termsOfService  https://github.com/guttosm/ratebook
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/ratebook
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        convert
//  @tag.description Value record streams against the rate table
//
//  @tag.name        rates
//  @tag.description Rate table lookups
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/guttosm/ratebook/config"
	_ "github.com/guttosm/ratebook/docs" // swagger docs
	"github.com/guttosm/ratebook/internal/ingestion"
	"github.com/guttosm/ratebook/internal/logger"
	"github.com/spf13/cobra"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// logLevelAnnotation names the default log level of a command; LOG_LEVEL
// still wins.
const logLevelAnnotation = "log-level"

// exitCode is returned by a command that has already reported its failure
// and only needs the process to exit with the given status.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, ingestion.FormatDiagnostic(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ratebook",
		Short: "Value dated quantities at historical exchange rates",
		Long: `ratebook multiplies each "YYYY-MM-DD | quantity" record by the exchange
rate of that date, or of the closest earlier date in the reference data.

It runs as a one-shot converter (convert) or as an HTTP service (serve).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := cmd.Annotations[logLevelAnnotation]
			if level == "" {
				level = "info"
			}
			logger.Init(level)

			if err := config.LoadConfig(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
	}

	root.AddCommand(newVersionCmd(), newConvertCmd(), newServeCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// No config needed to print a version.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ratebook %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}
