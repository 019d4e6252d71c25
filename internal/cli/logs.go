package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/josephmachado/data-quality-checker/internal/logstore"
)

// NewShowLogsCommand creates the show-logs command.
func NewShowLogsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show-logs",
		Short:         "Show all check outcomes from the log database",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowLogs(rootOpts, cmd)
		},
	}

	return cmd
}

func runShowLogs(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	store := logstore.New(opts.Database)

	if opts.Format == "json" {
		records, err := store.List(cmd.Context())
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read logs", err)
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(CLIResponse{Status: "ok", Data: records})
	}

	if err := store.PrintAll(cmd.Context(), formatter.Writer); err != nil {
		return WrapExitError(ExitCommandError, "failed to read logs", err)
	}
	return nil
}

// ClearResult is the payload of a successful clean-logs run.
type ClearResult struct {
	Cleared bool `json:"cleared"`
}

// NewCleanLogsCommand creates the clean-logs command.
func NewCleanLogsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clean-logs",
		Short:         "Clear all check outcomes from the log database",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanLogs(rootOpts, cmd)
		},
	}

	return cmd
}

func runCleanLogs(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	store := logstore.New(opts.Database)
	if err := store.Clear(cmd.Context()); err != nil {
		return WrapExitError(ExitCommandError, "failed to clear logs", err)
	}

	if opts.Format == "json" {
		return formatter.Success(ClearResult{Cleared: true})
	}
	return formatter.Success("✓ Logs cleared.")
}
