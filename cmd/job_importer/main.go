// Package main provides the job_importer CLI, which loads LinkedIn job feeds into
// the Fractional.Quest jobs table and inspects what is stored there.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	goerrors "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/fractionalquest/fractional-quest/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "job_importer",
	Short: "Fractional.Quest job importer",
	Long:  "job_importer filters a LinkedIn job feed down to fractional, interim and part-time roles and upserts them into the jobs table.",
	// Errors are printed by main, with a stack trace when one was captured.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Arguments and flags parsed; failures from here on are not usage errors.
		cmd.SilenceUsage = true
	},
}

func main() {
	// Load .env file if it exists
	if err := config.LoadDotEnv(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err and, for errors raised with a stack, the stack trace.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var stackErr *goerrors.Error
	if errors.As(err, &stackErr) {
		fmt.Fprintf(w, "\n%s", stackErr.Stack())
	}
}
