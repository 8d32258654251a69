package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a statement expected to touch a row touched none.
var ErrNotFound = errors.New("job not found")

// ErrUnavailable wraps failures that mean the database itself could not be reached.
var ErrUnavailable = errors.New("database unavailable")

// reKeyField extracts the column from a unique violation detail: "Key (field)=(value) already exists."
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// ConstraintError is a constraint violation reported by PostgreSQL.
type ConstraintError struct {
	Code       string
	Constraint string
	Field      string
	Cause      error
}

func (e *ConstraintError) Error() string {
	kind := "constraint violation"
	switch e.Code {
	case pgerrcode.UniqueViolation:
		kind = "duplicate value"
	case pgerrcode.NotNullViolation:
		kind = "missing required value"
	case pgerrcode.CheckViolation:
		kind = "invalid value"
	}
	if e.Field != "" {
		return fmt.Sprintf("%s for %s: %v", kind, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: %v", kind, e.Cause)
}

func (e *ConstraintError) Unwrap() error {
	return e.Cause
}

// MapError classifies pgx errors. Constraint violations become *ConstraintError,
// connection-level failures wrap ErrUnavailable, pgx.ErrNoRows becomes ErrNotFound,
// and anything else is returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
			return &ConstraintError{
				Code:       pgErr.Code,
				Constraint: pgErr.ConstraintName,
				Field:      violatedField(pgErr),
				Cause:      err,
			}
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgErr.Code == pgerrcode.AdminShutdown,
			pgErr.Code == pgerrcode.CannotConnectNow:
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}

	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func violatedField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		return m[1]
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Code == pgerrcode.UniqueViolation
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
