// Package store persists credit-score results. Implementations keep two
// views per user: the mutable current result, overwritten on every
// calculation, and an append-only history of score snapshots.
package store

import (
	"context"

	"credlens/internal/score"
	id "credlens/pkg/domain"
	domainerrors "credlens/pkg/domain-errors"
)

// ErrNotFound is returned when no result exists for the user yet.
var ErrNotFound = domainerrors.New(domainerrors.CodeNotFound, "credit score not found")

// Store is interface-driven to keep the scoring service testable and to
// allow in-memory and PostgreSQL persistence behind the same wiring.
type Store interface {
	// SaveResult upserts the user's current result.
	SaveResult(ctx context.Context, userID id.UserID, result *score.CreditScoreResult) error

	// FindLatest returns the user's current result, or ErrNotFound.
	FindLatest(ctx context.Context, userID id.UserID) (*score.CreditScoreResult, error)

	// AppendHistory records an immutable snapshot of one calculation.
	AppendHistory(ctx context.Context, userID id.UserID, entry score.HistoryEntry) error

	// ListHistory returns the user's snapshots ordered oldest first. A user
	// with no history gets an empty slice, not an error.
	ListHistory(ctx context.Context, userID id.UserID) ([]score.HistoryEntry, error)
}
