package bureau

import (
	"context"
	"time"

	id "credlens/pkg/domain"
)

// MockClient serves deterministic reports keyed on the BVN's last digit,
// with a configurable latency to mimic real-world vendor calls. Selected via
// config when no vendor credentials are available.
type MockClient struct {
	Latency time.Duration
}

// FetchCreditReport returns a fixed report profile: BVNs ending 0-5 get a
// clean borrower, 6-7 a moderately leveraged one, and 8-9 a delinquent one.
// The same BVN always yields the same report.
func (c MockClient) FetchCreditReport(_ context.Context, bvn id.BVN) (*RawReport, error) {
	time.Sleep(c.Latency)

	last := byte('0')
	if s := bvn.String(); s != "" {
		last = s[len(s)-1]
	}

	switch {
	case last >= '8':
		return mockDelinquentReport(), nil
	case last >= '6':
		return mockLeveragedReport(), nil
	default:
		return mockCleanReport(), nil
	}
}

func mockCleanReport() *RawReport {
	return &RawReport{Entity: &ReportEntity{Score: &ReportScore{
		TotalNoOfActiveLoans: []SourcedValue{{Source: "crc", Value: 1}},
		TotalNoOfClosedLoans: []SourcedValue{{Source: "crc", Value: 4}},
		TotalNoOfLoans:       []SourcedValue{{Source: "crc", Value: 5}},
		TotalBorrowed:        []SourcedValue{{Source: "crc", Value: 2_500_000}},
		TotalOutstanding:     []SourcedValue{{Source: "crc", Value: 300_000}},
		LoanHistory: []SourcedLoans{{Source: "crc", Value: []RawLoan{
			{LoanProvider: "Sterling Bank", Type: "personal", LoanAmount: 500_000, Status: "closed", PerformanceStatus: "performing", OutstandingBalance: 0, OverdueAmount: 0, DateReported: "2021-06-14"},
			{LoanProvider: "Kuda MFB", Type: "overdraft", LoanAmount: 200_000, Status: "closed", PerformanceStatus: "performing", OutstandingBalance: 0, OverdueAmount: 0, DateReported: "2022-02-01"},
			{LoanProvider: "Access Bank", Type: "auto", LoanAmount: 1_800_000, Status: "open", PerformanceStatus: "performing", OutstandingBalance: 300_000, OverdueAmount: 0, DateReported: "2024-09-20"},
		}}},
		LoanPerformance: []SourcedPerformance{{Source: "crc", Value: []RawPerformance{
			{LoanProvider: "Sterling Bank", NoOfNonPerforming: 0, NoOfPerforming: 2},
			{LoanProvider: "Access Bank", NoOfNonPerforming: 0, NoOfPerforming: 1},
		}}},
		CreditEnquiriesSummary: []SourcedEnquiries{{Source: "crc", Value: &RawEnquiries{
			Last3MonthCount: 0, Last12MonthCount: 1, Last36MonthCount: 3,
		}}},
	}}}
}

func mockLeveragedReport() *RawReport {
	return &RawReport{Entity: &ReportEntity{Score: &ReportScore{
		TotalNoOfActiveLoans: []SourcedValue{{Source: "firstCentral", Value: 3}},
		TotalNoOfClosedLoans: []SourcedValue{{Source: "firstCentral", Value: 2}},
		TotalNoOfLoans:       []SourcedValue{{Source: "firstCentral", Value: 5}},
		TotalBorrowed:        []SourcedValue{{Source: "firstCentral", Value: 4_000_000}},
		TotalOutstanding:     []SourcedValue{{Source: "firstCentral", Value: 2_100_000}},
		LoanHistory: []SourcedLoans{{Source: "firstCentral", Value: []RawLoan{
			{LoanProvider: "GTBank", Type: "personal", LoanAmount: 1_000_000, Status: "open", PerformanceStatus: "performing", OutstandingBalance: 600_000, OverdueAmount: 0, DateReported: "2024-01-11"},
			{LoanProvider: "Carbon", Type: "payday", LoanAmount: 500_000, Status: "open", PerformanceStatus: "performing", OutstandingBalance: 400_000, OverdueAmount: 0, DateReported: "2025-03-02"},
			{LoanProvider: "FairMoney", Type: "payday", LoanAmount: 2_500_000, Status: "open", PerformanceStatus: "performing", OutstandingBalance: 1_100_000, OverdueAmount: 0, DateReported: "2025-07-18"},
		}}},
		CreditEnquiriesSummary: []SourcedEnquiries{{Source: "firstCentral", Value: &RawEnquiries{
			Last3MonthCount: 2, Last12MonthCount: 5, Last36MonthCount: 9,
		}}},
	}}}
}

func mockDelinquentReport() *RawReport {
	return &RawReport{Entity: &ReportEntity{Score: &ReportScore{
		TotalNoOfActiveLoans:          []SourcedValue{{Source: "creditRegistry", Value: "7"}},
		TotalNoOfClosedLoans:          []SourcedValue{{Source: "creditRegistry", Value: "1"}},
		TotalNoOfLoans:                []SourcedValue{{Source: "creditRegistry", Value: "8"}},
		TotalNoOfDelinquentFacilities: []SourcedValue{{Source: "creditRegistry", Value: "2"}},
		TotalNoOfOverdueAccounts:      []SourcedValue{{Source: "creditRegistry", Value: "3"}},
		TotalBorrowed:                 []SourcedValue{{Source: "creditRegistry", Value: "3000000"}},
		TotalOutstanding:              []SourcedValue{{Source: "creditRegistry", Value: "2700000"}},
		TotalOverdue:                  []SourcedValue{{Source: "creditRegistry", Value: "900000"}},
		LoanHistory: []SourcedLoans{{Source: "creditRegistry", Value: []RawLoan{
			{LoanProvider: "Branch", Type: "payday", LoanAmount: "300000", Status: "open", PerformanceStatus: "non-performing", OutstandingBalance: "350000", OverdueAmount: "350000", DateReported: "2025-05-09"},
			{LoanProvider: "Palmcredit", Type: "payday", LoanAmount: "250000", Status: "open", PerformanceStatus: "non-performing", OutstandingBalance: "310000", OverdueAmount: "310000", DateReported: "2025-06-22"},
		}}},
		LoanPerformance: []SourcedPerformance{{Source: "creditRegistry", Value: []RawPerformance{
			{LoanProvider: "Branch", NoOfNonPerforming: "1", NoOfPerforming: "0"},
			{LoanProvider: "Palmcredit", NoOfNonPerforming: "1", NoOfPerforming: "0"},
		}}},
		CreditEnquiriesSummary: []SourcedEnquiries{{Source: "creditRegistry", Value: &RawEnquiries{
			Last3MonthCount: "7", Last12MonthCount: "11", Last36MonthCount: "15",
		}}},
	}}}
}
