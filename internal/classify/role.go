package classify

import "github.com/fractionalquest/fractional-quest/internal/types"

// roleRules is evaluated top to bottom. Functions that commonly appear as qualifiers
// ("Product Marketing", "Revenue Operations") sit above the function they qualify.
var roleRules = []rule[types.RoleCategory]{
	{terms: []string{"cfo", "chief financial officer", "chief finance officer", "finance", "financial",
		"accountant", "accounting", "controller", "fp&a", "treasury", "bookkeeper"}, result: types.RoleFinance},
	{terms: []string{"cmo", "chief marketing officer", "chief growth officer", "marketing", "growth",
		"brand", "seo", "content", "communications", "demand generation"}, result: types.RoleMarketing},
	{terms: []string{"cro", "chief revenue officer", "sales", "revenue", "business development",
		"account executive", "commercial"}, result: types.RoleSales},
	{terms: []string{"customer success", "customer experience", "client success", "customer service",
		"customer support"}, result: types.RoleCustomerSuccess},
	{terms: []string{"coo", "chief operating officer", "operations", "operating", "ops", "supply chain",
		"procurement", "logistics"}, result: types.RoleOperations},
	{terms: []string{"chro", "chief people officer", "chief human resources officer", "hr",
		"human resources", "people", "talent", "recruitment", "recruiter"}, result: types.RoleHR},
	{terms: []string{"general counsel", "legal", "counsel", "lawyer", "solicitor", "compliance"},
		result: types.RoleLegal},
	{terms: []string{"cpo", "chief product officer", "product"}, result: types.RoleProduct},
	{terms: []string{"design", "designer", "ux", "ui", "creative"}, result: types.RoleDesign},
	{terms: []string{"cdo", "chief data officer", "data", "analytics", "analyst", "machine learning", "ai"},
		result: types.RoleData},
	{terms: []string{"cto", "chief technology officer", "chief technical officer", "cio", "ciso",
		"engineer", "engineering", "developer", "software", "devops", "technical", "technology", "it",
		"infrastructure", "security", "architect"}, result: types.RoleEngineering},
	{terms: []string{"ceo", "chief executive", "managing director", "founder", "president",
		"non-executive", "non executive", "chair", "chairman", "board"}, result: types.RoleExecutive},
}

// RoleCategory maps a job title to a role category.
// Titles that match no rule are treated as general executive roles.
func RoleCategory(title string) types.RoleCategory {
	if category, ok := firstMatch(roleRules, normalize(title)); ok {
		return category
	}
	return types.RoleExecutive
}
