// Package score implements the credit-risk scoring engine: normalization of
// vendor-shaped bureau reports, five orthogonal sub-factor scores, weighted
// aggregation onto the published 300-850 scale, and rule-based fraud
// reasons. Everything here is a pure computation; persistence lives in the
// store subpackage.
package score

import (
	"time"

	id "credlens/pkg/domain"
)

// NormalizedReport is the fully-defaulted flat view of a vendor report.
// Every field is always present; missing vendor data is zero. Downstream
// scoring functions can assume totality.
type NormalizedReport struct {
	ActiveLoans          float64
	ClosedLoans          float64
	TotalLoans           float64
	DelinquentFacilities float64
	OverdueAccounts      float64
	TotalBorrowed        float64
	TotalOutstanding     float64
	TotalOverdue         float64
	PerformingLoans      float64
	NonPerformingLoans   float64
	Enquiries            EnquirySummary
	Loans                []Loan
}

// EnquirySummary carries recent credit-enquiry counts per lookback window.
type EnquirySummary struct {
	Last3Months  float64
	Last12Months float64
	Last36Months float64
}

// Loan is one normalized loan-history entry.
type Loan struct {
	IsActive           bool
	IsPerforming       bool
	Amount             float64
	OutstandingBalance float64
	OverdueAmount      float64
	Institution        string
	LoanType           string
	ReportedDate       time.Time
}

// FactorScore wraps a single sub-factor score, always in [0,100].
type FactorScore struct {
	Score float64 `json:"score"`
}

// ScoreFactors is the factor breakdown published with every result. The
// five factors are orthogonal: each is computed from the normalized report
// alone, never from another factor.
type ScoreFactors struct {
	PaymentHistory      FactorScore `json:"paymentHistory"`
	CreditUtilization   FactorScore `json:"creditUtilization"`
	CreditHistoryLength FactorScore `json:"creditHistoryLength"`
	CreditMix           FactorScore `json:"creditMix"`
	NewCredit           FactorScore `json:"newCredit"`
}

// CreditScoreResult is the aggregate scoring outcome for one invocation.
type CreditScoreResult struct {
	Score            int            `json:"score"`
	AccountType      id.AccountType `json:"accountType"`
	LastUpdated      time.Time      `json:"lastUpdated"`
	ScoreChange      int            `json:"scoreChange"`
	Factors          ScoreFactors   `json:"factors"`
	FraudReasons     []string       `json:"fraudReasons"`
	IsFraudSuspected bool           `json:"isFraudSuspected"`
}

// HistoryEntry is an immutable snapshot appended on every scoring
// invocation. Entries are never mutated or deleted; the current score is
// always the latest entry by CreatedAt.
type HistoryEntry struct {
	Score     int          `json:"score"`
	Factors   ScoreFactors `json:"factors"`
	CreatedAt time.Time    `json:"createdAt"`
}
