// Package domain holds value types shared across services. IDs are distinct
// uuid wrappers so the compiler rejects cross-type assignment.
package domain

import (
	"github.com/google/uuid"

	dErrors "credlens/pkg/domain-errors"
)

// UserID identifies an onboarded end user. It is the opaque identifier the
// session provider authenticates; nothing in this service mints user IDs.
type UserID uuid.UUID

// RequestID identifies a single API request for log correlation.
type RequestID string

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be the nil UUID")
	}
	return parsed, nil
}

// ParseUserID validates and converts a string into a UserID.
func ParseUserID(s string) (UserID, error) {
	parsed, err := parseUUID(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(parsed), nil
}

// NewUserID mints a fresh random UserID. Used by tests and seeders only.
func NewUserID() UserID {
	return UserID(uuid.New())
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero value.
func (id UserID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// MarshalText renders the ID as its canonical UUID string so JSON payloads
// carry "d0a7…", not a byte array.
func (id UserID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the canonical UUID string form.
func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := ParseUserID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
