// Package importer turns a LinkedIn job feed into rows of the jobs table.
//
// Records are filtered to fractional roles, normalized, and upserted one at a
// time in source order. A failing record is recorded on the Report and the run
// moves on to the next one.
package importer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fractionalquest/fractional-quest/internal/classify"
	"github.com/fractionalquest/fractional-quest/internal/config"
	"github.com/fractionalquest/fractional-quest/internal/db"
	"github.com/fractionalquest/fractional-quest/internal/ingestion"
	"github.com/fractionalquest/fractional-quest/internal/types"
)

// Store runs fn inside one transaction, committing when fn returns nil.
// *db.DB satisfies it.
type Store interface {
	WithJobTx(ctx context.Context, fn func(db.JobWriter) error) error
}

// Importer upserts feed records into a Store.
type Importer struct {
	store  Store
	logger *zap.Logger
	cfg    config.ImportConfig

	now        func() time.Time
	slugSuffix func() string
}

// Option customizes an Importer.
type Option func(*Importer)

// WithClock overrides the time source used for posted-date defaults and seen timestamps.
func WithClock(now func() time.Time) Option {
	return func(im *Importer) { im.now = now }
}

// WithSlugSuffix overrides the random slug suffix generator.
func WithSlugSuffix(suffix func() string) Option {
	return func(im *Importer) { im.slugSuffix = suffix }
}

// New creates an Importer. A nil logger discards log output.
func New(store Store, logger *zap.Logger, cfg config.ImportConfig, opts ...Option) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	im := &Importer{
		store:      store,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
		slugSuffix: ingestion.RandomSuffix,
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Import processes jobs in order and reports what happened to each.
//
// It only returns an error when ctx is cancelled; the report then covers the
// records handled before cancellation.
func (im *Importer) Import(ctx context.Context, jobs []types.LinkedInJob) (*Report, error) {
	report := newReport(im.cfg.MaxErrors)
	report.Total = len(jobs)

	for i := range jobs {
		if err := ctx.Err(); err != nil {
			im.logger.Warn("import cancelled",
				zap.Int("processed", i),
				zap.Int("remaining", len(jobs)-i),
				zap.Error(err))
			return report, fmt.Errorf("import cancelled after %d of %d records: %w", i, len(jobs), err)
		}

		job := &jobs[i]
		if job.DecodeErr != nil {
			// An undecodable record cannot be filtered, so it counts as retained and skipped.
			report.Filtered++
			im.skip(report, i, job, fmt.Errorf("invalid record: %w", job.DecodeErr))
			continue
		}
		if !classify.IsFractionalJob(job) {
			im.logger.Debug("not fractional", zap.String("title", job.Title))
			continue
		}
		report.Filtered++

		outcome, slug, err := im.importOne(ctx, job)
		if err != nil {
			im.skip(report, i, job, err)
			continue
		}

		switch outcome {
		case outcomeInserted:
			report.Inserted++
			im.logger.Info("inserted", zap.String("title", job.Title), zap.String("company", job.Organization), zap.String("slug", slug))
		case outcomeUpdated:
			report.Updated++
			im.logger.Info("updated", zap.String("title", job.Title), zap.String("company", job.Organization), zap.String("slug", slug))
		case outcomeMerged:
			report.Updated++
			report.Merged++
			im.logger.Warn("slug collision merged into existing job",
				zap.String("title", job.Title),
				zap.String("company", job.Organization),
				zap.String("slug", slug))
		}
	}

	return report, nil
}

func (im *Importer) skip(report *Report, index int, job *types.LinkedInJob, err error) {
	report.recordError(index, job, err)
	im.logger.Warn("skipped",
		zap.Int("index", index),
		zap.String("id", job.ID.String()),
		zap.String("title", job.Title),
		zap.Error(err))
}

type outcome int

const (
	outcomeInserted outcome = iota + 1
	outcomeUpdated
	outcomeMerged
)

// importOne runs the find-then-write for one record inside a single transaction.
func (im *Importer) importOne(ctx context.Context, job *types.LinkedInJob) (outcome, string, error) {
	if err := job.Validate(); err != nil {
		return 0, "", fmt.Errorf("invalid record: %w", err)
	}

	in := BuildJobInput(job, im.cfg.Source, im.now(), im.slugSuffix)

	var result outcome
	slug := in.Slug
	err := im.store.WithJobTx(ctx, func(tx db.JobWriter) error {
		existing, err := tx.FindExistingJob(ctx, in.ExternalID, in.URL)
		if err != nil {
			return err
		}
		if existing != nil {
			slug = existing.Slug
			result = outcomeUpdated
			return tx.UpdateJob(ctx, existing.ID, in)
		}

		inserted, err := tx.InsertJob(ctx, in)
		if err != nil {
			return err
		}
		result = outcomeInserted
		if inserted.Merged {
			result = outcomeMerged
		}
		return nil
	})
	if err != nil {
		return 0, "", err
	}
	return result, slug, nil
}
