package types

// RoleCategory is the functional area a posting belongs to.
type RoleCategory string

// RoleCategory values
const (
	RoleEngineering     RoleCategory = "Engineering"
	RoleMarketing       RoleCategory = "Marketing"
	RoleFinance         RoleCategory = "Finance"
	RoleOperations      RoleCategory = "Operations"
	RoleSales           RoleCategory = "Sales"
	RoleHR              RoleCategory = "HR"
	RoleProduct         RoleCategory = "Product"
	RoleDesign          RoleCategory = "Design"
	RoleData            RoleCategory = "Data"
	RoleLegal           RoleCategory = "Legal"
	RoleCustomerSuccess RoleCategory = "Customer Success"
	RoleExecutive       RoleCategory = "Executive"
	RoleOther           RoleCategory = "Other"
)

// RoleCategories lists every RoleCategory value.
var RoleCategories = []RoleCategory{
	RoleEngineering, RoleMarketing, RoleFinance, RoleOperations, RoleSales, RoleHR,
	RoleProduct, RoleDesign, RoleData, RoleLegal, RoleCustomerSuccess, RoleExecutive, RoleOther,
}

// ExecutiveTitle is the C-suite or director title a posting advertises.
type ExecutiveTitle string

// ExecutiveTitle values
const (
	TitleCEO                ExecutiveTitle = "CEO"
	TitleCFO                ExecutiveTitle = "CFO"
	TitleCTO                ExecutiveTitle = "CTO"
	TitleCOO                ExecutiveTitle = "COO"
	TitleCMO                ExecutiveTitle = "CMO"
	TitleCPO                ExecutiveTitle = "CPO"
	TitleCRO                ExecutiveTitle = "CRO"
	TitleCHRO               ExecutiveTitle = "CHRO"
	TitleCIO                ExecutiveTitle = "CIO"
	TitleCISO               ExecutiveTitle = "CISO"
	TitleCDO                ExecutiveTitle = "CDO"
	TitleCCO                ExecutiveTitle = "CCO"
	TitleGeneralCounsel     ExecutiveTitle = "General Counsel"
	TitleManagingDirector   ExecutiveTitle = "Managing Director"
	TitleNonExecDirector    ExecutiveTitle = "Non-Executive Director"
	TitleFinanceDirector    ExecutiveTitle = "Finance Director"
	TitleMarketingDirector  ExecutiveTitle = "Marketing Director"
	TitleTechnologyDirector ExecutiveTitle = "Technology Director"
	TitleOperationsDirector ExecutiveTitle = "Operations Director"
	TitleSalesDirector      ExecutiveTitle = "Sales Director"
	TitleHRDirector         ExecutiveTitle = "HR Director"
)

// ExecutiveTitles lists every ExecutiveTitle value.
var ExecutiveTitles = []ExecutiveTitle{
	TitleCEO, TitleCFO, TitleCTO, TitleCOO, TitleCMO, TitleCPO, TitleCRO, TitleCHRO,
	TitleCIO, TitleCISO, TitleCDO, TitleCCO, TitleGeneralCounsel, TitleManagingDirector,
	TitleNonExecDirector, TitleFinanceDirector, TitleMarketingDirector, TitleTechnologyDirector,
	TitleOperationsDirector, TitleSalesDirector, TitleHRDirector,
}

// SeniorityLevel is the normalized seniority of a posting.
type SeniorityLevel string

// SeniorityLevel values
const (
	SeniorityExecutive SeniorityLevel = "Executive"
	SeniorityDirector  SeniorityLevel = "Director"
	SenioritySenior    SeniorityLevel = "Senior"
	SeniorityMid       SeniorityLevel = "Mid"
	SeniorityJunior    SeniorityLevel = "Junior"
	SeniorityIntern    SeniorityLevel = "Intern"
)

// SeniorityLevels lists every SeniorityLevel value.
var SeniorityLevels = []SeniorityLevel{
	SeniorityExecutive, SeniorityDirector, SenioritySenior, SeniorityMid, SeniorityJunior, SeniorityIntern,
}

// EmploymentType is the contract shape of a posting.
type EmploymentType string

// EmploymentType values
const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentTemporary  EmploymentType = "Temporary"
	EmploymentInternship EmploymentType = "Internship"
	EmploymentOther      EmploymentType = "Other"
)

// EmploymentTypes lists every EmploymentType value.
var EmploymentTypes = []EmploymentType{
	EmploymentFullTime, EmploymentPartTime, EmploymentContract,
	EmploymentTemporary, EmploymentInternship, EmploymentOther,
}

// WorkplaceType says where the work happens.
type WorkplaceType string

// WorkplaceType values
const (
	WorkplaceRemote WorkplaceType = "Remote"
	WorkplaceHybrid WorkplaceType = "Hybrid"
	WorkplaceOnSite WorkplaceType = "On-site"
)

// Pseudo-cities used when a posting does not map to a known UK city.
const (
	CityRemote        = "Remote"
	CityOtherUK       = "Other UK"
	CityInternational = "International"
)

// CountryUK is the canonical country name the site treats as domestic.
const CountryUK = "United Kingdom"
