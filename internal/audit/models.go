// Package audit captures who did what to whose credit data. Events are
// emitted from domain logic, buffered through a channel, and persisted by a
// background worker; emission never blocks or fails a scoring request.
package audit

import (
	"time"

	id "credlens/pkg/domain"
)

// Action identifies the audited operation.
type Action string

const (
	ActionScoreCalculated Action = "score_calculated"
	ActionScoreViewed     Action = "score_viewed"
	ActionHistoryViewed   Action = "score_history_viewed"
	ActionBVNEnrolled     Action = "bvn_enrolled"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    id.UserID `json:"userId"`
	Action    Action    `json:"action"`
	// Subject is the masked identifier the action concerned, e.g. a masked
	// BVN. Never a raw identifier.
	Subject   string `json:"subject,omitempty"`
	Decision  string `json:"decision,omitempty"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	Device    string `json:"device,omitempty"`
}
