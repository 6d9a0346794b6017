package handler

import (
	"time"

	"credlens/internal/score"
)

// ScoreResponse is the HTTP response for score calculation and retrieval.
type ScoreResponse struct {
	Score            int                `json:"score"`
	AccountType      string             `json:"accountType"`
	LastUpdated      time.Time          `json:"lastUpdated"`
	ScoreChange      int                `json:"scoreChange"`
	Factors          score.ScoreFactors `json:"factors"`
	FraudReasons     []string           `json:"fraudReasons"`
	IsFraudSuspected bool               `json:"isFraudSuspected"`
}

// FromResult converts a domain result to an HTTP response.
func FromResult(result *score.CreditScoreResult) *ScoreResponse {
	reasons := result.FraudReasons
	if reasons == nil {
		reasons = []string{}
	}
	return &ScoreResponse{
		Score:            result.Score,
		AccountType:      result.AccountType.String(),
		LastUpdated:      result.LastUpdated,
		ScoreChange:      result.ScoreChange,
		Factors:          result.Factors,
		FraudReasons:     reasons,
		IsFraudSuspected: result.IsFraudSuspected,
	}
}

// HistoryResponse is the HTTP response for GET /score/history.
type HistoryResponse struct {
	History []score.HistoryEntry `json:"history"`
}

// FromHistory converts history entries to an HTTP response. Entries are
// never null in the JSON, even for users with no history.
func FromHistory(entries []score.HistoryEntry) *HistoryResponse {
	if entries == nil {
		entries = []score.HistoryEntry{}
	}
	return &HistoryResponse{History: entries}
}
