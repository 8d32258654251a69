package importer

import (
	"fmt"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

// DefaultMaxErrors bounds Report.Errors when no limit is configured.
const DefaultMaxErrors = 100

// Report summarizes one import run.
type Report struct {
	// Total is the number of records in the feed.
	Total int
	// Filtered is the number of records that passed the fractional filter, plus
	// records that could not be decoded.
	Filtered int
	Inserted int
	// Updated includes slug-collision merges.
	Updated int
	// Merged counts inserts that collided on slug and refreshed the existing row.
	Merged  int
	Skipped int

	// Errors holds the first MaxErrors per-record failures in feed order.
	Errors []RecordError
	// DroppedErrors counts failures beyond the cap.
	DroppedErrors int

	maxErrors int
}

// RecordError is one record that could not be imported.
type RecordError struct {
	// Index is the record's position in the feed.
	Index int
	ID    string
	Title string
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Title, e.ID, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}

func newReport(maxErrors int) *Report {
	if maxErrors <= 0 {
		maxErrors = DefaultMaxErrors
	}
	return &Report{maxErrors: maxErrors}
}

func (r *Report) recordError(index int, job *types.LinkedInJob, err error) {
	r.Skipped++
	if len(r.Errors) >= r.maxErrors {
		r.DroppedErrors++
		return
	}
	r.Errors = append(r.Errors, RecordError{
		Index: index,
		ID:    job.ID.String(),
		Title: job.Title,
		Err:   err,
	})
}

// Rejected is the number of records the fractional filter dropped.
func (r *Report) Rejected() int {
	return r.Total - r.Filtered
}
