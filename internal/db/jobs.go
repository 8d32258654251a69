package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tx is a JobWriter bound to one open transaction.
type Tx struct {
	tx pgx.Tx
}

var _ JobWriter = (*Tx)(nil)

var jobColumns = []string{
	"id", "external_id", "slug", "url",
	"title", "company_name", "company_domain", "location", "city", "country",
	"workplace_type", "role_category", "executive_title", "seniority_level", "employment_type",
	"compensation", "salary_min", "salary_max", "salary_currency",
	"description_snippet", "full_description", "about_company",
	"is_active", "is_fractional", "posted_date", "application_deadline",
	"first_seen_at", "last_seen_at", "updated_date", "created_at",
}

// -----------------------------------------------------------------------------
// Import statements
// -----------------------------------------------------------------------------

// FindExistingJob returns the row whose external id or URL matches, locking it for
// the rest of the transaction. An external id match wins over a URL match, since
// the update rewrites external_id and must not collide with the row that owns it.
// It returns nil when nothing matches.
func (t *Tx) FindExistingJob(ctx context.Context, externalID, url string) (*ExistingJob, error) {
	query, args, err := findExistingJobQuery(externalID, url)
	if err != nil {
		return nil, fmt.Errorf("failed to build existing job query: %w", err)
	}

	var existing ExistingJob
	err = t.tx.QueryRow(ctx, query, args...).Scan(&existing.ID, &existing.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find existing job: %w", MapError(err))
	}
	return &existing, nil
}

func findExistingJobQuery(externalID, url string) (string, []any, error) {
	match := sq.Or{}
	if externalID != "" {
		match = append(match, sq.Eq{"external_id": externalID})
	}
	if url != "" {
		match = append(match, sq.Eq{"url": url})
	}
	if len(match) == 0 {
		return "", nil, errors.New("external id or url is required")
	}

	b := psql.Select("id", "slug").
		From("jobs").
		Where(match)
	if externalID != "" {
		b = b.OrderByClause("CASE WHEN external_id = ? THEN 0 ELSE 1 END", externalID)
	}
	return b.OrderBy("created_at ASC").
		Limit(1).
		Suffix("FOR UPDATE").
		ToSql()
}

const updateJobSQL = `
UPDATE jobs SET
    external_id = $2,
    url = $3,
    title = $4,
    company_name = $5,
    company_domain = $6,
    location = $7,
    city = $8,
    country = $9,
    workplace_type = $10,
    role_category = $11,
    executive_title = $12,
    seniority_level = $13,
    employment_type = $14,
    compensation = $15,
    salary_min = $16,
    salary_max = $17,
    salary_currency = $18,
    description_snippet = $19,
    full_description = $20,
    about_company = $21,
    is_active = TRUE,
    is_fractional = $22,
    posted_date = $23,
    application_deadline = $24,
    last_seen_at = $25,
    updated_date = $25
WHERE id = $1`

// UpdateJob overwrites every mutable field of a row and marks it active.
// The slug and first_seen_at are left untouched.
func (t *Tx) UpdateJob(ctx context.Context, id uuid.UUID, in *JobInput) error {
	tag, err := t.tx.Exec(ctx, updateJobSQL,
		id, nullable(in.ExternalID), nullable(in.URL), in.Title, in.CompanyName, in.CompanyDomain,
		in.Location, nullable(in.City), in.Country,
		string(in.WorkplaceType), string(in.RoleCategory), enumPtr(in.ExecutiveTitle),
		enumPtr(in.SeniorityLevel), string(in.EmploymentType),
		in.Compensation, in.SalaryMin, in.SalaryMax, in.SalaryCurrency,
		in.DescriptionSnippet, in.FullDescription, in.AboutCompany,
		in.IsFractional, in.PostedDate, in.ApplicationDeadline, in.SeenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update job %s: %w", id, MapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update job %s: %w", id, ErrNotFound)
	}
	return nil
}

// insertJobSQL falls back to refreshing the row that already owns the slug.
// (xmax = 0) is true only for a freshly inserted tuple.
const insertJobSQL = `
INSERT INTO jobs (
    id, external_id, slug, url,
    title, company_name, company_domain, location, city, country,
    workplace_type, role_category, executive_title, seniority_level, employment_type,
    compensation, salary_min, salary_max, salary_currency,
    description_snippet, full_description, about_company,
    is_active, is_fractional, posted_date, application_deadline,
    first_seen_at, last_seen_at, updated_date
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8, $9, $10,
    $11, $12, $13, $14, $15,
    $16, $17, $18, $19,
    $20, $21, $22,
    TRUE, $23, $24, $25,
    $26, $26, $26
)
ON CONFLICT (slug) DO UPDATE SET
    title = EXCLUDED.title,
    company_name = EXCLUDED.company_name,
    is_active = TRUE,
    last_seen_at = EXCLUDED.last_seen_at
RETURNING id, (xmax = 0) AS inserted`

// InsertJob inserts a new row. On a slug conflict it refreshes the conflicting row
// instead and reports Merged.
func (t *Tx) InsertJob(ctx context.Context, in *JobInput) (InsertResult, error) {
	var result InsertResult
	var inserted bool
	err := t.tx.QueryRow(ctx, insertJobSQL,
		uuid.New(), nullable(in.ExternalID), in.Slug, nullable(in.URL),
		in.Title, in.CompanyName, in.CompanyDomain, in.Location, nullable(in.City), in.Country,
		string(in.WorkplaceType), string(in.RoleCategory), enumPtr(in.ExecutiveTitle),
		enumPtr(in.SeniorityLevel), string(in.EmploymentType),
		in.Compensation, in.SalaryMin, in.SalaryMax, in.SalaryCurrency,
		in.DescriptionSnippet, in.FullDescription, in.AboutCompany,
		in.IsFractional, in.PostedDate, in.ApplicationDeadline,
		in.SeenAt,
	).Scan(&result.ID, &inserted)
	if err != nil {
		return InsertResult{}, fmt.Errorf("failed to insert job %s: %w", in.Slug, MapError(err))
	}
	result.Merged = !inserted
	return result, nil
}

// -----------------------------------------------------------------------------
// Read and maintenance queries
// -----------------------------------------------------------------------------

// GetJobBySlug retrieves a job by its public slug. It returns nil when no row matches.
func (db *DB) GetJobBySlug(ctx context.Context, slug string) (*JobPosting, error) {
	query, args, err := psql.Select(jobColumns...).From("jobs").Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job query: %w", err)
	}

	job, err := scanJob(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %s: %w", slug, MapError(err))
	}
	return job, nil
}

// ListJobs returns one page of jobs matching the filter, newest first.
func (db *DB) ListJobs(ctx context.Context, filter JobFilter) ([]JobPosting, error) {
	return listJobs(ctx, db.pool, filter)
}

func listJobs(ctx context.Context, q querier, filter JobFilter) ([]JobPosting, error) {
	query, args, err := listJobsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", MapError(err))
	}
	defer rows.Close()

	var jobs []JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", MapError(err))
	}
	return jobs, nil
}

func listJobsQuery(filter JobFilter) (string, []any, error) {
	b := psql.Select(jobColumns...).From("jobs")

	if !filter.IncludeInactive {
		b = b.Where(sq.Eq{"is_active": true})
	}
	if filter.RoleCategory != "" {
		b = b.Where(sq.Eq{"role_category": string(filter.RoleCategory)})
	}
	if filter.ExecutiveTitle != "" {
		b = b.Where(sq.Eq{"executive_title": string(filter.ExecutiveTitle)})
	}
	if filter.City != "" {
		b = b.Where(sq.Eq{"city": filter.City})
	}
	if filter.EmploymentType != "" {
		b = b.Where(sq.Eq{"employment_type": string(filter.EmploymentType)})
	}
	if filter.RemoteOnly {
		b = b.Where(sq.Eq{"workplace_type": string(types.WorkplaceRemote)})
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"company_name": pattern},
		})
	}

	b = b.OrderBy("posted_date DESC", "id ASC").Limit(uint64(filter.EffectiveLimit()))
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}
	return b.ToSql()
}

// DeactivateUnseen marks active jobs not seen since before as inactive and returns
// how many rows changed. An empty externalIDPrefix applies to every source.
func (db *DB) DeactivateUnseen(ctx context.Context, before time.Time, externalIDPrefix string) (int64, error) {
	query, args, err := deactivateUnseenQuery(before, externalIDPrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to build deactivate query: %w", err)
	}

	tag, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate unseen jobs: %w", MapError(err))
	}
	return tag.RowsAffected(), nil
}

func deactivateUnseenQuery(before time.Time, externalIDPrefix string) (string, []any, error) {
	b := psql.Update("jobs").
		Set("is_active", false).
		Set("updated_date", sq.Expr("NOW()")).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Lt{"last_seen_at": before})
	if externalIDPrefix != "" {
		b = b.Where(sq.Like{"external_id": escapeLike(externalIDPrefix) + "%"})
	}
	return b.ToSql()
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func scanJob(row pgx.Row) (*JobPosting, error) {
	var j JobPosting
	var workplace, role, employment string
	var execTitle, seniority *string

	err := row.Scan(
		&j.ID, &j.ExternalID, &j.Slug, &j.URL,
		&j.Title, &j.CompanyName, &j.CompanyDomain, &j.Location, &j.City, &j.Country,
		&workplace, &role, &execTitle, &seniority, &employment,
		&j.Compensation, &j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency,
		&j.DescriptionSnippet, &j.FullDescription, &j.AboutCompany,
		&j.IsActive, &j.IsFractional, &j.PostedDate, &j.ApplicationDeadline,
		&j.FirstSeenAt, &j.LastSeenAt, &j.UpdatedDate, &j.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	j.WorkplaceType = types.WorkplaceType(workplace)
	j.RoleCategory = types.RoleCategory(role)
	j.EmploymentType = types.EmploymentType(employment)
	if execTitle != nil {
		t := types.ExecutiveTitle(*execTitle)
		j.ExecutiveTitle = &t
	}
	if seniority != nil {
		s := types.SeniorityLevel(*seniority)
		j.SeniorityLevel = &s
	}
	return &j, nil
}

// nullable stores empty strings as NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
