package importer

import (
	"strings"
	"time"

	"github.com/fractionalquest/fractional-quest/internal/classify"
	"github.com/fractionalquest/fractional-quest/internal/db"
	"github.com/fractionalquest/fractional-quest/internal/ingestion"
	"github.com/fractionalquest/fractional-quest/internal/types"
)

// BuildJobInput maps one feed record onto the values stored for it. now stands
// in for a missing or unparseable posted date and stamps the record as seen.
func BuildJobInput(job *types.LinkedInJob, source string, now time.Time, slugSuffix func() string) *db.JobInput {
	title := strings.TrimSpace(job.Title)
	company := strings.TrimSpace(job.Organization)

	country := ingestion.NormalizeCountry(first(job.CountriesDerived))
	comp := ingestion.NormalizeSalary(job.Salary)

	in := &db.JobInput{
		ExternalID: externalID(source, job.ID.String()),
		Slug:       ingestion.JobSlug(title, company, slugSuffix),
		URL:        job.ApplyURL(),

		Title:         title,
		CompanyName:   company,
		CompanyDomain: companyDomain(job),
		Location:      optional(first(job.LocationsDerived)),
		City:          ingestion.NormalizeCity(job.RemoteDerived, job.CitiesDerived, country),
		Country:       country,

		WorkplaceType:  classify.WorkplaceType(title, job.RemoteDerived),
		RoleCategory:   classify.RoleCategory(title),
		ExecutiveTitle: classify.ExecutiveTitle(title),
		SeniorityLevel: classify.Seniority(job.Seniority),
		EmploymentType: classify.EmploymentType(job.EmploymentType),

		Compensation:   comp.Display,
		SalaryMin:      comp.Min,
		SalaryMax:      comp.Max,
		SalaryCurrency: comp.Currency,

		AboutCompany: optional(job.OrganizationDesc),

		IsFractional: true,
		PostedDate:   now,
		SeenAt:       now,
	}

	if desc := ingestion.DescriptionText(job.DescriptionText); desc != "" {
		snippet := ingestion.Snippet(desc)
		in.FullDescription = &desc
		in.DescriptionSnippet = &snippet
	}
	if posted, ok := ingestion.ParseFeedDate(job.DatePosted); ok {
		in.PostedDate = posted
	}
	if deadline, ok := ingestion.ParseFeedDate(job.DateValidThrough); ok {
		in.ApplicationDeadline = &deadline
	}
	return in
}

func externalID(source, id string) string {
	if id == "" {
		return ""
	}
	if source == "" {
		return id
	}
	return source + "-" + id
}

// companyDomain prefers the company website over the organization link, which is
// usually a linkedin.com company page and says nothing about the company's domain.
func companyDomain(job *types.LinkedInJob) *string {
	for _, candidate := range []string{job.OrganizationWebsite, job.OrganizationURL} {
		domain := ingestion.CompanyDomain(candidate)
		if domain == nil || isLinkedInHost(*domain) {
			continue
		}
		return domain
	}
	return nil
}

func isLinkedInHost(host string) bool {
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}

func first(values []string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
