// Package ingestion reads external job feeds and normalizes their free-text fields
// into the values stored on a job posting.
package ingestion

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goerrors "github.com/go-errors/errors"

	"github.com/fractionalquest/fractional-quest/internal/schemas"
	"github.com/fractionalquest/fractional-quest/internal/types"
)

// LoadLinkedInFeed reads and decodes a LinkedIn export file.
//
// Errors are fatal to an import run, so they carry a stack trace.
func LoadLinkedInFeed(path string) ([]types.LinkedInJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerrors.Wrap(fmt.Errorf("feed file not found: %w", err), 0)
		}
		return nil, goerrors.Wrap(fmt.Errorf("failed to read feed file: %w", err), 0)
	}
	return ParseLinkedInFeed(data)
}

// ParseLinkedInFeed decodes a raw feed document. Only a document that is not a
// JSON array is an error; a record that fails the schema or cannot be decoded
// is returned with DecodeErr set so the import can skip it on its own.
func ParseLinkedInFeed(data []byte) ([]types.LinkedInJob, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, goerrors.Wrap(fmt.Errorf("malformed feed: %w", err), 0)
	}

	jobs := make([]types.LinkedInJob, len(records))
	for i, record := range records {
		jobs[i] = decodeLinkedInJob(record)
	}
	return jobs, nil
}

// DecodeError is a feed record that does not match the record schema or could
// not be decoded.
type DecodeError struct {
	Detail string
	Cause  error
}

func (e *DecodeError) Error() string {
	return "failed to decode record: " + e.Detail
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func decodeLinkedInJob(record json.RawMessage) types.LinkedInJob {
	var job types.LinkedInJob
	if err := schemas.ValidateLinkedInJob(record); err != nil {
		// Best effort, so the failure can still be reported by id and title.
		_ = json.Unmarshal(record, &job)
		job.DecodeErr = newDecodeError(err)
		return job
	}
	if err := json.Unmarshal(record, &job); err != nil {
		job.DecodeErr = newDecodeError(err)
	}
	return job
}

func newDecodeError(err error) *DecodeError {
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return &DecodeError{Detail: validationErr.Summary(), Cause: err}
	}
	return &DecodeError{Detail: err.Error(), Cause: err}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFeedDate parses the date formats seen in the feed. Values without a zone are UTC.
func ParseFeedDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
