// Package bureau is the client for the identity-data provider's credit
// bureau product. It fetches raw, vendor-shaped reports; interpreting them
// is the scoring engine's job.
package bureau

// RawReport is the vendor payload, kept loosely typed on purpose: any field
// may be absent at any nesting level and numeric values arrive as numbers or
// strings depending on the underlying bureau source. Scalars of unknown type
// are declared as `any` and coerced downstream.
type RawReport struct {
	Entity *ReportEntity `json:"entity,omitempty"`
}

// ReportEntity wraps the score block.
type ReportEntity struct {
	Score *ReportScore `json:"score,omitempty"`
}

// ReportScore carries per-bureau-source ("crc", "creditRegistry",
// "firstCentral") arrays for every reported fact.
type ReportScore struct {
	TotalNoOfActiveLoans         []SourcedValue       `json:"totalNoOfActiveLoans,omitempty"`
	TotalNoOfClosedLoans         []SourcedValue       `json:"totalNoOfClosedLoans,omitempty"`
	TotalNoOfLoans               []SourcedValue       `json:"totalNoOfLoans,omitempty"`
	TotalNoOfDelinquentFacilities []SourcedValue      `json:"totalNoOfDelinquentFacilities,omitempty"`
	TotalNoOfOverdueAccounts     []SourcedValue       `json:"totalNoOfOverdueAccounts,omitempty"`
	TotalBorrowed                []SourcedValue       `json:"totalBorrowed,omitempty"`
	TotalOutstanding             []SourcedValue       `json:"totalOutstanding,omitempty"`
	TotalOverdue                 []SourcedValue       `json:"totalOverdue,omitempty"`
	LoanHistory                  []SourcedLoans       `json:"loanHistory,omitempty"`
	LoanPerformance              []SourcedPerformance `json:"loanPerformance,omitempty"`
	CreditEnquiriesSummary       []SourcedEnquiries   `json:"creditEnquiriesSummary,omitempty"`
}

// SourcedValue is one bureau source's value for a scalar fact.
type SourcedValue struct {
	Source string `json:"source,omitempty"`
	Value  any    `json:"value,omitempty"`
}

// SourcedLoans is one bureau source's loan history list.
type SourcedLoans struct {
	Source string    `json:"source,omitempty"`
	Value  []RawLoan `json:"value,omitempty"`
}

// RawLoan is a single loan record as the vendor reports it.
type RawLoan struct {
	LoanProvider       string `json:"loanProvider,omitempty"`
	Type               string `json:"type,omitempty"`
	LoanAmount         any    `json:"loanAmount,omitempty"`
	Status             string `json:"status,omitempty"`
	PerformanceStatus  string `json:"performanceStatus,omitempty"`
	OutstandingBalance any    `json:"outstandingBalance,omitempty"`
	OverdueAmount      any    `json:"overdueAmount,omitempty"`
	DateReported       string `json:"dateReported,omitempty"`
}

// SourcedPerformance is one bureau source's per-provider performance counts.
type SourcedPerformance struct {
	Source string           `json:"source,omitempty"`
	Value  []RawPerformance `json:"value,omitempty"`
}

// RawPerformance summarizes performing vs non-performing loans at one
// institution.
type RawPerformance struct {
	LoanProvider      string `json:"loanProvider,omitempty"`
	NoOfNonPerforming any    `json:"noOfNonPerforming,omitempty"`
	NoOfPerforming    any    `json:"noOfPerforming,omitempty"`
}

// SourcedEnquiries is one bureau source's recent enquiry counts.
type SourcedEnquiries struct {
	Source string       `json:"source,omitempty"`
	Value  *RawEnquiries `json:"value,omitempty"`
}

// RawEnquiries carries recent credit-enquiry counts per window.
type RawEnquiries struct {
	Last3MonthCount  any `json:"Last3MonthCount,omitempty"`
	Last12MonthCount any `json:"Last12MonthCount,omitempty"`
	Last36MonthCount any `json:"Last36MonthCount,omitempty"`
}
