package score

import "fmt"

// Fraud reason texts are part of the API surface: admins filter on them.
const (
	reasonMultipleActiveLoans = "Multiple active loans (high risk)"
	reasonDelinquent          = "Has delinquent facilities"
	reasonOverdue             = "Has overdue accounts"
	reasonRecentEnquiries     = "Multiple recent credit enquiries"
)

// deriveFraudReasons evaluates each rule independently against the
// normalized report and returns the triggered reasons in fixed rule order.
// The rules are separate from the weighted score on purpose: a high scorer
// with six active loans still gets flagged for review.
func deriveFraudReasons(n NormalizedReport, cfg FraudConfig) []string {
	reasons := []string{}
	if n.ActiveLoans > cfg.MaxActiveLoans {
		reasons = append(reasons, reasonMultipleActiveLoans)
	}
	if n.DelinquentFacilities > 0 {
		reasons = append(reasons, reasonDelinquent)
	}
	if n.OverdueAccounts > 0 {
		reasons = append(reasons, reasonOverdue)
	}
	if n.Enquiries.Last3Months > cfg.MaxRecentEnquiries {
		reasons = append(reasons, reasonRecentEnquiries)
	}
	if n.NonPerformingLoans > 0 {
		reasons = append(reasons, fmt.Sprintf("%d non-performing loans detected", int(n.NonPerformingLoans)))
	}
	return reasons
}
