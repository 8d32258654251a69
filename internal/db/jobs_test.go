package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

// =============================================================================
// Query Builder Tests
// =============================================================================

func TestFindExistingJobQuery(t *testing.T) {
	query, args, err := findExistingJobQuery("linkedin-123", "https://example.com/apply")
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT id, slug FROM jobs")
	assert.Contains(t, query, "(external_id = $1 OR url = $2)")
	assert.Contains(t, query, "ORDER BY CASE WHEN external_id = $3 THEN 0 ELSE 1 END, created_at ASC")
	assert.Contains(t, query, "LIMIT 1")
	assert.Contains(t, query, "FOR UPDATE")
	assert.Equal(t, []any{"linkedin-123", "https://example.com/apply", "linkedin-123"}, args)
}

func TestFindExistingJobQuery_URLOnly(t *testing.T) {
	query, args, err := findExistingJobQuery("", "https://example.com/apply")
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY created_at ASC")
	assert.NotContains(t, query, "CASE")
	assert.Equal(t, []any{"https://example.com/apply"}, args)
}

func TestFindExistingJobQuery_ExternalIDOnly(t *testing.T) {
	query, args, err := findExistingJobQuery("linkedin-123", "")
	require.NoError(t, err)

	assert.NotContains(t, query, "url")
	assert.Equal(t, []any{"linkedin-123", "linkedin-123"}, args)
}

func TestFindExistingJobQuery_NoKeys(t *testing.T) {
	_, _, err := findExistingJobQuery("", "")
	assert.Error(t, err)
}

func TestListJobsQuery_Defaults(t *testing.T) {
	query, args, err := listJobsQuery(JobFilter{})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM jobs WHERE is_active = $1")
	assert.Contains(t, query, "ORDER BY posted_date DESC, id ASC")
	assert.Contains(t, query, fmt.Sprintf("LIMIT %d", DefaultListLimit))
	assert.NotContains(t, query, "OFFSET")
	assert.Equal(t, []any{true}, args)
}

func TestListJobsQuery_AllFilters(t *testing.T) {
	query, args, err := listJobsQuery(JobFilter{
		RoleCategory:   types.RoleFinance,
		ExecutiveTitle: types.TitleCFO,
		City:           "London",
		EmploymentType: types.EmploymentPartTime,
		RemoteOnly:     true,
		Query:          "50%_off",
		Limit:          10,
		Offset:         20,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "role_category = $2")
	assert.Contains(t, query, "executive_title = $3")
	assert.Contains(t, query, "city = $4")
	assert.Contains(t, query, "employment_type = $5")
	assert.Contains(t, query, "workplace_type = $6")
	assert.Contains(t, query, "(title ILIKE $7 OR company_name ILIKE $8)")
	assert.Contains(t, query, "LIMIT 10")
	assert.Contains(t, query, "OFFSET 20")
	assert.Equal(t, []any{
		true, "Finance", "CFO", "London", "Part-time", "Remote", `%50\%\_off%`, `%50\%\_off%`,
	}, args)
}

func TestListJobsQuery_IncludeInactive(t *testing.T) {
	query, args, err := listJobsQuery(JobFilter{IncludeInactive: true})
	require.NoError(t, err)

	assert.NotContains(t, query, "is_active")
	assert.Empty(t, args)
}

func TestDeactivateUnseenQuery(t *testing.T) {
	before := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := deactivateUnseenQuery(before, "linkedin-")
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE jobs SET is_active = $1, updated_date = NOW()")
	assert.Contains(t, query, "WHERE is_active = $2 AND last_seen_at < $3 AND external_id LIKE $4")
	assert.Equal(t, []any{false, true, before, "linkedin-%"}, args)
}

func TestDeactivateUnseenQuery_AllSources(t *testing.T) {
	query, args, err := deactivateUnseenQuery(time.Now(), "")
	require.NoError(t, err)

	assert.NotContains(t, query, "external_id")
	assert.Len(t, args, 3)
}

func TestJobFilter_EffectiveLimit(t *testing.T) {
	tests := []struct {
		limit    int
		expected int
	}{
		{0, DefaultListLimit},
		{-5, DefaultListLimit},
		{25, 25},
		{MaxListLimit + 1, MaxListLimit},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.limit), func(t *testing.T) {
			assert.Equal(t, tt.expected, JobFilter{Limit: tt.limit}.EffectiveLimit())
		})
	}
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	require.NotNil(t, nullable("x"))
	assert.Equal(t, "x", *nullable("x"))
}

func TestEnumPtr(t *testing.T) {
	assert.Nil(t, enumPtr[types.ExecutiveTitle](nil))

	title := types.TitleCFO
	got := enumPtr(&title)
	require.NotNil(t, got)
	assert.Equal(t, "CFO", *got)
}

func TestSchema_DeclaresUniqueSlug(t *testing.T) {
	schema := Schema()
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS jobs")
	assert.Contains(t, schema, "jobs_slug_key ON jobs (slug)")
	assert.Contains(t, schema, "jobs_external_id_key")
}

// =============================================================================
// Error Mapping Tests
// =============================================================================

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, MapError(nil))
}

func TestMapError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "jobs_external_id_key",
		Detail:         "Key (external_id)=(linkedin-1) already exists.",
	}

	err := MapError(pgErr)

	var ce *ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "external_id", ce.Field)
	assert.Equal(t, "jobs_external_id_key", ce.Constraint)
	assert.Contains(t, err.Error(), "duplicate value for external_id")
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, errors.Is(err, pgErr))
}

func TestMapError_NotNullUsesColumnName(t *testing.T) {
	err := MapError(&pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "title"})

	var ce *ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "title", ce.Field)
	assert.Contains(t, err.Error(), "missing required value for title")
	assert.False(t, IsUniqueViolation(err))
}

func TestMapError_ConnectionFailure(t *testing.T) {
	err := MapError(&pgconn.PgError{Code: pgerrcode.AdminShutdown})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMapError_NoRows(t *testing.T) {
	err := MapError(pgx.ErrNoRows)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMapError_ContextPassThrough(t *testing.T) {
	err := MapError(context.Canceled)
	assert.Equal(t, context.Canceled, err)
}

func TestMapError_UnknownPassThrough(t *testing.T) {
	orig := errors.New("boom")
	assert.Equal(t, orig, MapError(orig))
}
