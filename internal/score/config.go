package score

import "fmt"

// Config consolidates every weight, penalty, and band threshold the engine
// uses. All scoring constants live here so property tests can override them
// without touching scoring logic.
type Config struct {
	// Weights combine the five factor scores into the overall score. They
	// must sum to 1.0.
	Weights Weights

	PaymentHistory PaymentHistoryConfig
	Utilization    UtilizationConfig
	HistoryLength  HistoryLengthConfig
	Mix            MixConfig
	NewCredit      NewCreditConfig
	Fraud          FraudConfig

	// ScaleMin/ScaleMax define the published score range. Internal factor
	// scores are always [0,100]; the weighted sum is mapped linearly onto
	// [ScaleMin, ScaleMax].
	ScaleMin int
	ScaleMax int
}

// Weights for the five factors, mirroring the conventional FICO-style split.
type Weights struct {
	PaymentHistory      float64
	CreditUtilization   float64
	CreditHistoryLength float64
	CreditMix           float64
	NewCredit           float64
}

// PaymentHistoryConfig holds per-incident penalties subtracted from 100.
type PaymentHistoryConfig struct {
	DelinquentFacilityPenalty float64
	OverdueAccountPenalty     float64
	NonPerformingLoanPenalty  float64
}

// UtilizationBand maps a utilization ratio ceiling to a factor score.
type UtilizationBand struct {
	MaxRatio float64
	Score    float64
}

// UtilizationConfig is a monotonic decreasing staircase over the
// outstanding-to-borrowed ratio. Bands must be ordered by ascending
// MaxRatio; ratios above the last band score FloorScore.
type UtilizationConfig struct {
	Bands      []UtilizationBand
	FloorScore float64
}

// HistoryLengthConfig scores total loan count with capped-linear growth.
// Zero loans gets NeutralFloor: an unscored borrower is unknown risk, not
// bad risk.
type HistoryLengthConfig struct {
	NeutralFloor float64
	PerLoan      float64
}

// MixConfig rewards diversity of institutions and loan types, saturating at
// the caps.
type MixConfig struct {
	Base           float64
	PerInstitution float64
	InstitutionCap int
	PerLoanType    float64
	LoanTypeCap    int
}

// NewCreditConfig penalizes recent enquiries, weighted toward the most
// recent window.
type NewCreditConfig struct {
	Last3MonthPenalty  float64
	Last12MonthPenalty float64
	Last36MonthPenalty float64
}

// FraudConfig holds thresholds for the rule-based fraud reasons.
type FraudConfig struct {
	MaxActiveLoans     float64
	MaxRecentEnquiries float64
}

// DefaultConfig returns the documented production constants.
//
// Published scale: 300-850. Factor weights: payment history 35%, credit
// utilization 30%, history length 15%, credit mix 10%, new credit 10%.
// An all-empty report scores factors {100, 100, 50, 40, 100}, a weighted
// 86.5, and a published score of 776 - the neutral no-history baseline.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			PaymentHistory:      0.35,
			CreditUtilization:   0.30,
			CreditHistoryLength: 0.15,
			CreditMix:           0.10,
			NewCredit:           0.10,
		},
		PaymentHistory: PaymentHistoryConfig{
			DelinquentFacilityPenalty: 15,
			OverdueAccountPenalty:     10,
			NonPerformingLoanPenalty:  5,
		},
		Utilization: UtilizationConfig{
			Bands: []UtilizationBand{
				{MaxRatio: 0.10, Score: 100},
				{MaxRatio: 0.30, Score: 90},
				{MaxRatio: 0.45, Score: 70},
				{MaxRatio: 0.60, Score: 50},
				{MaxRatio: 0.80, Score: 30},
			},
			FloorScore: 15,
		},
		HistoryLength: HistoryLengthConfig{
			NeutralFloor: 50,
			PerLoan:      7,
		},
		Mix: MixConfig{
			Base:           40,
			PerInstitution: 15,
			InstitutionCap: 3,
			PerLoanType:    5,
			LoanTypeCap:    3,
		},
		NewCredit: NewCreditConfig{
			Last3MonthPenalty:  12,
			Last12MonthPenalty: 4,
			Last36MonthPenalty: 1,
		},
		Fraud: FraudConfig{
			MaxActiveLoans:     5,
			MaxRecentEnquiries: 5,
		},
		ScaleMin: 300,
		ScaleMax: 850,
	}
}

// Validate rejects configurations the engine cannot score with.
func (c Config) Validate() error {
	sum := c.Weights.PaymentHistory + c.Weights.CreditUtilization +
		c.Weights.CreditHistoryLength + c.Weights.CreditMix + c.Weights.NewCredit
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("factor weights must sum to 1.0, got %.4f", sum)
	}
	if c.ScaleMax <= c.ScaleMin {
		return fmt.Errorf("scale max %d must exceed scale min %d", c.ScaleMax, c.ScaleMin)
	}
	var prev float64
	for i, band := range c.Utilization.Bands {
		if i > 0 && band.MaxRatio <= prev {
			return fmt.Errorf("utilization bands must have ascending ratios")
		}
		prev = band.MaxRatio
	}
	return nil
}
