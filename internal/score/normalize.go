package score

import (
	"strconv"
	"strings"
	"time"

	"credlens/internal/bureau"
)

// Normalize flattens a vendor-shaped report into a fully-defaulted
// NormalizedReport. It never fails: absent arrays yield empty lists, absent
// or unparsable scalars yield zero. All defensive access against the
// vendor's optional nesting lives here and nowhere else.
//
// When multiple bureau sources report the same scalar fact, the maximum
// across sources is taken: the sources describe the same borrower, and the
// most complete source gives the most conservative risk view. Loan-history
// lists are concatenated across sources.
func Normalize(raw *bureau.RawReport) NormalizedReport {
	var n NormalizedReport
	if raw == nil || raw.Entity == nil || raw.Entity.Score == nil {
		return n
	}
	s := raw.Entity.Score

	n.ActiveLoans = maxSourced(s.TotalNoOfActiveLoans)
	n.ClosedLoans = maxSourced(s.TotalNoOfClosedLoans)
	n.TotalLoans = maxSourced(s.TotalNoOfLoans)
	n.DelinquentFacilities = maxSourced(s.TotalNoOfDelinquentFacilities)
	n.OverdueAccounts = maxSourced(s.TotalNoOfOverdueAccounts)
	n.TotalBorrowed = maxSourced(s.TotalBorrowed)
	n.TotalOutstanding = maxSourced(s.TotalOutstanding)
	n.TotalOverdue = maxSourced(s.TotalOverdue)

	// Some sources omit the total; derive it rather than report zero loans
	// for a borrower with visible activity.
	if n.TotalLoans == 0 {
		n.TotalLoans = n.ActiveLoans + n.ClosedLoans
	}

	for _, sourced := range s.LoanHistory {
		for _, rawLoan := range sourced.Value {
			n.Loans = append(n.Loans, normalizeLoan(rawLoan))
		}
	}

	n.PerformingLoans, n.NonPerformingLoans = performanceCounts(s.LoanPerformance)

	for _, sourced := range s.CreditEnquiriesSummary {
		if sourced.Value == nil {
			continue
		}
		n.Enquiries.Last3Months = maxFloat(n.Enquiries.Last3Months, coerce(sourced.Value.Last3MonthCount))
		n.Enquiries.Last12Months = maxFloat(n.Enquiries.Last12Months, coerce(sourced.Value.Last12MonthCount))
		n.Enquiries.Last36Months = maxFloat(n.Enquiries.Last36Months, coerce(sourced.Value.Last36MonthCount))
	}

	return n
}

func normalizeLoan(raw bureau.RawLoan) Loan {
	status := strings.ToLower(strings.TrimSpace(raw.Status))
	perf := strings.ToLower(strings.TrimSpace(raw.PerformanceStatus))

	loan := Loan{
		IsActive:           status == "open" || status == "active",
		IsPerforming:       perf == "" || perf == "performing",
		Amount:             coerce(raw.LoanAmount),
		OutstandingBalance: coerce(raw.OutstandingBalance),
		OverdueAmount:      coerce(raw.OverdueAmount),
		Institution:        strings.TrimSpace(raw.LoanProvider),
		LoanType:           strings.ToLower(strings.TrimSpace(raw.Type)),
	}
	if raw.DateReported != "" {
		if t, err := time.Parse("2006-01-02", raw.DateReported); err == nil {
			loan.ReportedDate = t
		}
	}
	return loan
}

// performanceCounts sums per-institution counts within each source, then
// takes the maximum across sources.
func performanceCounts(sourced []bureau.SourcedPerformance) (performing, nonPerforming float64) {
	for _, source := range sourced {
		var p, np float64
		for _, entry := range source.Value {
			p += coerce(entry.NoOfPerforming)
			np += coerce(entry.NoOfNonPerforming)
		}
		performing = maxFloat(performing, p)
		nonPerforming = maxFloat(nonPerforming, np)
	}
	return performing, nonPerforming
}

func maxSourced(values []bureau.SourcedValue) float64 {
	var max float64
	for _, v := range values {
		max = maxFloat(max, coerce(v.Value))
	}
	return max
}

// coerce converts any vendor scalar to float64, defaulting to 0. Numeric
// strings ("5", "7.25", with stray commas or whitespace) parse; anything
// else is neutral.
func coerce(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
		if cleaned == "" {
			return 0
		}
		if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return parsed
		}
		return 0
	default:
		return 0
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
