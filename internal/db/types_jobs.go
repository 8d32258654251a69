package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

// DefaultListLimit is used when a JobFilter has no limit.
const DefaultListLimit = 50

// MaxListLimit bounds a single ListJobs page.
const MaxListLimit = 500

// JobPosting is a row of the jobs table.
type JobPosting struct {
	ID         uuid.UUID `json:"id"`
	ExternalID *string   `json:"external_id,omitempty"`
	Slug       string    `json:"slug"`
	URL        *string   `json:"url,omitempty"`

	Title         string  `json:"title"`
	CompanyName   string  `json:"company_name"`
	CompanyDomain *string `json:"company_domain,omitempty"`
	Location      *string `json:"location,omitempty"`
	City          *string `json:"city,omitempty"`
	Country       *string `json:"country,omitempty"`

	WorkplaceType  types.WorkplaceType   `json:"workplace_type"`
	RoleCategory   types.RoleCategory    `json:"role_category"`
	ExecutiveTitle *types.ExecutiveTitle `json:"executive_title,omitempty"`
	SeniorityLevel *types.SeniorityLevel `json:"seniority_level,omitempty"`
	EmploymentType types.EmploymentType  `json:"employment_type"`

	Compensation   *string `json:"compensation,omitempty"`
	SalaryMin      *int    `json:"salary_min,omitempty"`
	SalaryMax      *int    `json:"salary_max,omitempty"`
	SalaryCurrency *string `json:"salary_currency,omitempty"`

	DescriptionSnippet *string `json:"description_snippet,omitempty"`
	FullDescription    *string `json:"full_description,omitempty"`
	AboutCompany       *string `json:"about_company,omitempty"`

	IsActive            bool       `json:"is_active"`
	IsFractional        bool       `json:"is_fractional"`
	PostedDate          time.Time  `json:"posted_date"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	FirstSeenAt         time.Time  `json:"first_seen_at"`
	LastSeenAt          time.Time  `json:"last_seen_at"`
	UpdatedDate         time.Time  `json:"updated_date"`
	CreatedAt           time.Time  `json:"created_at"`
}

// JobInput carries every field the importer writes. On update all of them overwrite
// the stored row; SeenAt only becomes first_seen_at on insert.
type JobInput struct {
	ExternalID string
	Slug       string
	URL        string

	Title         string
	CompanyName   string
	CompanyDomain *string
	Location      *string
	City          string
	Country       *string

	WorkplaceType  types.WorkplaceType
	RoleCategory   types.RoleCategory
	ExecutiveTitle *types.ExecutiveTitle
	SeniorityLevel *types.SeniorityLevel
	EmploymentType types.EmploymentType

	Compensation   *string
	SalaryMin      *int
	SalaryMax      *int
	SalaryCurrency *string

	DescriptionSnippet *string
	FullDescription    *string
	AboutCompany       *string

	IsFractional        bool
	PostedDate          time.Time
	ApplicationDeadline *time.Time
	SeenAt              time.Time
}

// ExistingJob identifies a stored row matched by external id or URL.
type ExistingJob struct {
	ID   uuid.UUID
	Slug string
}

// InsertResult reports what an insert did.
type InsertResult struct {
	ID uuid.UUID
	// Merged is true when the slug already existed and the insert fell back to
	// refreshing that row instead.
	Merged bool
}

// JobWriter is the set of statements one import transaction may run.
type JobWriter interface {
	FindExistingJob(ctx context.Context, externalID, url string) (*ExistingJob, error)
	UpdateJob(ctx context.Context, id uuid.UUID, in *JobInput) error
	InsertJob(ctx context.Context, in *JobInput) (InsertResult, error)
}

// JobFilter narrows ListJobs. Empty fields do not filter.
type JobFilter struct {
	RoleCategory    types.RoleCategory
	ExecutiveTitle  types.ExecutiveTitle
	City            string
	EmploymentType  types.EmploymentType
	RemoteOnly      bool
	Query           string
	IncludeInactive bool
	Limit           int
	Offset          int
}

// EffectiveLimit clamps Limit into [1, MaxListLimit], defaulting to DefaultListLimit.
func (f JobFilter) EffectiveLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	default:
		return f.Limit
	}
}
