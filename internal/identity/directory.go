// Package identity resolves the BVN enrolled for a user. Scoring never
// accepts a BVN from the request; the directory is the only source, so a
// caller cannot score an arbitrary third party.
package identity

import (
	"context"

	id "credlens/pkg/domain"
	domainerrors "credlens/pkg/domain-errors"
)

// ErrNoBVN is returned when the user has not enrolled a BVN yet.
var ErrNoBVN = domainerrors.New(domainerrors.CodeInvalidInput, "bvn is required")

// BVNDirectory maps users to their enrolled BVN.
type BVNDirectory interface {
	// Lookup returns the user's BVN, or ErrNoBVN.
	Lookup(ctx context.Context, userID id.UserID) (id.BVN, error)

	// Enroll records the user's BVN, replacing any previous value.
	Enroll(ctx context.Context, userID id.UserID, bvn id.BVN) error
}
