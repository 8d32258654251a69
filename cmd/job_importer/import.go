package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fractionalquest/fractional-quest/internal/importer"
	"github.com/fractionalquest/fractional-quest/internal/ingestion"
)

var importCmd = &cobra.Command{
	Use:   "import <feed.json>",
	Short: "Import a LinkedIn job feed",
	Long: "Import reads a JSON array of LinkedIn job postings, keeps fractional, interim and part-time roles, " +
		"and inserts or updates them in the jobs table. Records that fail are reported and skipped.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jobs, err := ingestion.LoadLinkedInFeed(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("starting import",
		zap.String("file", args[0]),
		zap.Int("records", len(jobs)),
		zap.String("source", a.cfg.Import.Source))

	report, err := importer.New(a.db, a.logger, a.cfg.Import).Import(ctx, jobs)
	newPrinter(cmd).PrintImportReport(report)
	if err != nil {
		return fmt.Errorf("import interrupted: %w", err)
	}
	return nil
}
