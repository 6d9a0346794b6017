package score

// The five sub-factor scoring functions. Each is total over any normalized
// report, deterministic, and bounded to [0,100]. Factors never read each
// other's output.

// paymentHistoryScore starts at 100 and subtracts a fixed penalty per
// delinquent facility, overdue account, and non-performing loan.
func paymentHistoryScore(n NormalizedReport, cfg PaymentHistoryConfig) float64 {
	score := 100.0
	score -= n.DelinquentFacilities * cfg.DelinquentFacilityPenalty
	score -= n.OverdueAccounts * cfg.OverdueAccountPenalty
	score -= n.NonPerformingLoans * cfg.NonPerformingLoanPenalty
	return clamp(score)
}

// creditUtilizationScore maps the outstanding-to-borrowed ratio onto a
// monotonic decreasing staircase. Zero borrowed means zero utilization
// risk, which scores 100; the explicit check also keeps the ratio total.
func creditUtilizationScore(n NormalizedReport, cfg UtilizationConfig) float64 {
	if n.TotalBorrowed == 0 {
		return 100
	}
	ratio := n.TotalOutstanding / n.TotalBorrowed
	for _, band := range cfg.Bands {
		if ratio <= band.MaxRatio {
			return clamp(band.Score)
		}
	}
	return clamp(cfg.FloorScore)
}

// creditHistoryLengthScore grows capped-linearly with total loan count. A
// borrower with no history sits at the neutral floor: unknown risk, not
// proven bad risk.
func creditHistoryLengthScore(n NormalizedReport, cfg HistoryLengthConfig) float64 {
	count := n.ActiveLoans + n.ClosedLoans
	if count == 0 {
		count = n.TotalLoans
	}
	if count == 0 {
		return clamp(cfg.NeutralFloor)
	}
	return clamp(cfg.NeutralFloor + count*cfg.PerLoan)
}

// creditMixScore rewards distinct institutions and loan types in the loan
// history, saturating at the configured caps.
func creditMixScore(n NormalizedReport, cfg MixConfig) float64 {
	institutions := make(map[string]struct{})
	loanTypes := make(map[string]struct{})
	for _, loan := range n.Loans {
		if loan.Institution != "" {
			institutions[loan.Institution] = struct{}{}
		}
		if loan.LoanType != "" {
			loanTypes[loan.LoanType] = struct{}{}
		}
	}

	instCount := len(institutions)
	if instCount > cfg.InstitutionCap {
		instCount = cfg.InstitutionCap
	}
	typeCount := len(loanTypes)
	if typeCount > cfg.LoanTypeCap {
		typeCount = cfg.LoanTypeCap
	}

	return clamp(cfg.Base + float64(instCount)*cfg.PerInstitution + float64(typeCount)*cfg.PerLoanType)
}

// newCreditScore starts at 100 and penalizes recent enquiries, weighted
// toward the most recent window.
func newCreditScore(n NormalizedReport, cfg NewCreditConfig) float64 {
	score := 100.0
	score -= n.Enquiries.Last3Months * cfg.Last3MonthPenalty
	score -= n.Enquiries.Last12Months * cfg.Last12MonthPenalty
	score -= n.Enquiries.Last36Months * cfg.Last36MonthPenalty
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
