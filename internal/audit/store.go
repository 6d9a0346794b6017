package audit

import (
	"context"

	id "credlens/pkg/domain"
)

// Store persists audit events. Append-only: no update or delete.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID id.UserID) ([]Event, error)
}
