package score

import (
	"math"
	"time"

	"credlens/internal/bureau"
	id "credlens/pkg/domain"
	domainerrors "credlens/pkg/domain-errors"
)

// Engine turns a raw bureau report into a CreditScoreResult. It is
// stateless and safe for concurrent use; all tunables live in Config.
type Engine struct {
	cfg Config
}

// NewEngine validates the configuration up front so a bad deployment fails
// at startup rather than on the first scoring request.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "invalid scoring configuration")
	}
	return &Engine{cfg: cfg}, nil
}

// Calculate normalizes the raw report, scores the five factors, derives
// fraud reasons, and publishes the weighted sum onto the configured scale.
// previousScore, when non-nil, is the borrower's latest stored score and
// feeds ScoreChange; nil means a first-time calculation and ScoreChange 0.
//
// The same report at the same instant always yields the same result.
func (e *Engine) Calculate(raw *bureau.RawReport, accountType id.AccountType, previousScore *int, now time.Time) (*CreditScoreResult, error) {
	if raw == nil {
		return nil, domainerrors.New(domainerrors.CodeUpstreamUnavailable, "no credit report available")
	}

	n := Normalize(raw)

	factors := ScoreFactors{
		PaymentHistory:      FactorScore{Score: paymentHistoryScore(n, e.cfg.PaymentHistory)},
		CreditUtilization:   FactorScore{Score: creditUtilizationScore(n, e.cfg.Utilization)},
		CreditHistoryLength: FactorScore{Score: creditHistoryLengthScore(n, e.cfg.HistoryLength)},
		CreditMix:           FactorScore{Score: creditMixScore(n, e.cfg.Mix)},
		NewCredit:           FactorScore{Score: newCreditScore(n, e.cfg.NewCredit)},
	}

	published := e.publish(e.weighted(factors))

	change := 0
	if previousScore != nil {
		change = published - *previousScore
	}

	reasons := deriveFraudReasons(n, e.cfg.Fraud)

	return &CreditScoreResult{
		Score:            published,
		AccountType:      accountType,
		LastUpdated:      now.UTC(),
		ScoreChange:      change,
		Factors:          factors,
		FraudReasons:     reasons,
		IsFraudSuspected: len(reasons) > 0,
	}, nil
}

// weighted collapses the factor breakdown to a single number in [0,100].
func (e *Engine) weighted(f ScoreFactors) float64 {
	w := e.cfg.Weights
	return f.PaymentHistory.Score*w.PaymentHistory +
		f.CreditUtilization.Score*w.CreditUtilization +
		f.CreditHistoryLength.Score*w.CreditHistoryLength +
		f.CreditMix.Score*w.CreditMix +
		f.NewCredit.Score*w.NewCredit
}

// publish maps a weighted [0,100] score linearly onto the published scale.
func (e *Engine) publish(weighted float64) int {
	span := float64(e.cfg.ScaleMax - e.cfg.ScaleMin)
	return e.cfg.ScaleMin + int(math.Round(weighted/100*span))
}
