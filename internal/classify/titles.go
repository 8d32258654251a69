package classify

import (
	"strings"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

var executiveTitleRules = []rule[types.ExecutiveTitle]{
	{terms: []string{"ceo", "chief executive officer", "chief executive"}, result: types.TitleCEO},
	{terms: []string{"cfo", "chief financial officer", "chief finance officer"}, result: types.TitleCFO},
	{terms: []string{"cto", "chief technology officer", "chief technical officer"}, result: types.TitleCTO},
	{terms: []string{"coo", "chief operating officer", "chief operations officer"}, result: types.TitleCOO},
	{terms: []string{"cmo", "chief marketing officer", "chief growth officer"}, result: types.TitleCMO},
	{terms: []string{"cpo", "chief product officer"}, result: types.TitleCPO},
	{terms: []string{"cro", "chief revenue officer"}, result: types.TitleCRO},
	{terms: []string{"chro", "chief people officer", "chief human resources officer"}, result: types.TitleCHRO},
	{terms: []string{"ciso", "chief information security officer"}, result: types.TitleCISO},
	{terms: []string{"cio", "chief information officer"}, result: types.TitleCIO},
	{terms: []string{"cdo", "chief data officer", "chief digital officer"}, result: types.TitleCDO},
	{terms: []string{"cco", "chief commercial officer", "chief customer officer"}, result: types.TitleCCO},
	{terms: []string{"general counsel"}, result: types.TitleGeneralCounsel},
	{terms: []string{"non-executive director", "non executive director", "ned"}, result: types.TitleNonExecDirector},
	{terms: []string{"managing director"}, result: types.TitleManagingDirector},
	{terms: []string{"finance director", "financial director", "director of finance"}, result: types.TitleFinanceDirector},
	{terms: []string{"marketing director", "director of marketing"}, result: types.TitleMarketingDirector},
	{terms: []string{"technology director", "technical director", "director of technology",
		"director of engineering", "engineering director", "it director"}, result: types.TitleTechnologyDirector},
	{terms: []string{"operations director", "director of operations"}, result: types.TitleOperationsDirector},
	{terms: []string{"sales director", "director of sales", "commercial director"}, result: types.TitleSalesDirector},
	{terms: []string{"hr director", "people director", "director of people", "director of hr",
		"human resources director"}, result: types.TitleHRDirector},
}

// ExecutiveTitle returns the executive title a job title advertises, or nil.
func ExecutiveTitle(title string) *types.ExecutiveTitle {
	if t, ok := firstMatch(executiveTitleRules, normalize(title)); ok {
		return &t
	}
	return nil
}

var seniorityRules = []rule[types.SeniorityLevel]{
	{terms: []string{"intern", "internship"}, result: types.SeniorityIntern},
	{terms: []string{"executive", "c-level", "chief", "vp", "vice president"}, result: types.SeniorityExecutive},
	{terms: []string{"director", "head"}, result: types.SeniorityDirector},
	{terms: []string{"senior", "lead", "principal", "staff"}, result: types.SenioritySenior},
	{terms: []string{"mid", "associate", "intermediate"}, result: types.SeniorityMid},
	{terms: []string{"junior", "entry", "graduate"}, result: types.SeniorityJunior},
}

// Seniority maps the feed's seniority string to a level.
// Empty input yields nil; anything unrecognized is Senior, since fractional
// roles are almost never junior.
func Seniority(seniority string) *types.SeniorityLevel {
	s := normalize(seniority)
	if s == "" {
		return nil
	}
	level, ok := firstMatch(seniorityRules, s)
	if !ok {
		level = types.SenioritySenior
	}
	return &level
}

var employmentTypeTags = map[string]types.EmploymentType{
	"FULL_TIME":  types.EmploymentFullTime,
	"PART_TIME":  types.EmploymentPartTime,
	"CONTRACTOR": types.EmploymentContract,
	"CONTRACT":   types.EmploymentContract,
	"TEMPORARY":  types.EmploymentTemporary,
	"INTERN":     types.EmploymentInternship,
	"INTERNSHIP": types.EmploymentInternship,
	"VOLUNTEER":  types.EmploymentOther,
	"OTHER":      types.EmploymentOther,
}

// EmploymentType maps feed tags such as "PART_TIME" to an employment type.
// The first recognized tag wins; with none recognized the posting is a contract.
func EmploymentType(tags []string) types.EmploymentType {
	for _, tag := range tags {
		key := strings.ToUpper(strings.TrimSpace(tag))
		key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
		if et, ok := employmentTypeTags[key]; ok {
			return et
		}
	}
	return types.EmploymentContract
}

// WorkplaceType decides Remote, Hybrid or On-site from the remote flag and title.
func WorkplaceType(title string, remote bool) types.WorkplaceType {
	lower := strings.ToLower(title)
	switch {
	case remote || strings.Contains(lower, "remote"):
		return types.WorkplaceRemote
	case strings.Contains(lower, "hybrid"):
		return types.WorkplaceHybrid
	default:
		return types.WorkplaceOnSite
	}
}
