package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var expireCmd = &cobra.Command{
	Use:   "expire",
	Short: "Deactivate jobs that have not been seen in recent imports",
	Long: "Expire marks active jobs inactive when no import has seen them for --older-than. " +
		"Only jobs from the configured IMPORT_SOURCE are touched unless --all-sources is given.",
	Args: cobra.NoArgs,
	RunE: runExpire,
}

const defaultExpireAge = 30 * 24 * time.Hour

var (
	expireOlderThan  time.Duration
	expireAllSources bool
)

func init() {
	expireCmd.Flags().DurationVar(&expireOlderThan, "older-than", defaultExpireAge, "Deactivate jobs last seen longer ago than this")
	expireCmd.Flags().BoolVar(&expireAllSources, "all-sources", false, "Expire jobs from every source, not just IMPORT_SOURCE")

	rootCmd.AddCommand(expireCmd)
}

// expireCutoff returns the last-seen time before which jobs are expired.
func expireCutoff(now time.Time, olderThan time.Duration) (time.Time, error) {
	if olderThan < time.Hour {
		return time.Time{}, fmt.Errorf("invalid --older-than %s: must be at least 1h", olderThan)
	}
	return now.Add(-olderThan), nil
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runExpire(cmd *cobra.Command, _ []string) error {
	cutoff, err := expireCutoff(time.Now(), expireOlderThan)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	prefix := a.cfg.Import.ExternalIDPrefix()
	if expireAllSources {
		prefix = ""
	}

	n, err := a.db.DeactivateUnseen(cmd.Context(), cutoff, prefix)
	if err != nil {
		return err
	}

	a.logger.Info("expired stale jobs",
		zap.Int64("deactivated", n),
		zap.Time("cutoff", cutoff),
		zap.String("prefix", prefix))
	fmt.Fprintf(cmd.OutOrStdout(), "Deactivated %d jobs not seen since %s\n", n, cutoff.Format("2006-01-02 15:04"))
	return nil
}
