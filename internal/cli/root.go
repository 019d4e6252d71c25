// Package cli implements the dqc command tree.
//
// Every command resolves its collaborators from flags: the log store
// path comes from the persistent --db flag, output goes through an
// OutputFormatter honoring --format, and errors surface as ExitError
// values carrying the process exit code.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Database string // log store path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the dqc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dqc",
		Short: "dqc - data quality checker",
		Long: `A data quality checker for CSV and Parquet files.

Each check-* command scans a data file with an embedded DuckDB engine,
reports pass or fail, and appends the outcome to a SQLite log. The run
command executes a YAML suite of checks in one invocation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			setupLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "quality_checks.db", "path to the SQLite log database")

	// Single-check commands
	cmd.AddCommand(NewCheckUniqueCommand(opts))
	cmd.AddCommand(NewCheckNotNullCommand(opts))
	cmd.AddCommand(NewCheckEnumCommand(opts))
	cmd.AddCommand(NewCheckReferencesCommand(opts))
	cmd.AddCommand(NewCheckColumnExistsCommand(opts))
	cmd.AddCommand(NewCheckBetweenCommand(opts))
	cmd.AddCommand(NewCheckRegexCommand(opts))
	cmd.AddCommand(NewCheckTypeCommand(opts))
	cmd.AddCommand(NewCheckLengthCommand(opts))
	cmd.AddCommand(NewCheckMaxCommand(opts))
	cmd.AddCommand(NewCheckMinCommand(opts))
	cmd.AddCommand(NewCheckMeanCommand(opts))
	cmd.AddCommand(NewCheckMedianCommand(opts))
	cmd.AddCommand(NewCheckDateFormatCommand(opts))
	cmd.AddCommand(NewCheckRowCountCommand(opts))
	cmd.AddCommand(NewCheckColCountCommand(opts))
	cmd.AddCommand(NewCheckNotInSetCommand(opts))
	cmd.AddCommand(NewCheckIncreasingCommand(opts))
	cmd.AddCommand(NewCheckDateParseableCommand(opts))
	cmd.AddCommand(NewCheckPairEqualCommand(opts))
	cmd.AddCommand(NewCheckDistinctInSetCommand(opts))

	// Suite and log management
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewShowLogsCommand(opts))
	cmd.AddCommand(NewCleanLogsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// setupLogging configures the default slog handler. Debug level under
// --verbose, Info otherwise; diagnostics go to stderr so JSON output on
// stdout stays parseable.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
