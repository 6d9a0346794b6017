package domain

import (
	dErrors "credlens/pkg/domain-errors"
)

// BVN is a Bank Verification Number, the Nigerian national identifier used
// as the credit-bureau lookup key. Always exactly 11 digits.
type BVN string

// ParseBVN validates a raw string into a BVN. A missing BVN is the one
// precondition the scoring flow refuses to proceed without.
func ParseBVN(s string) (BVN, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "bvn is required")
	}
	if len(s) != 11 {
		return "", dErrors.New(dErrors.CodeInvalidInput, "bvn must be exactly 11 digits")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", dErrors.New(dErrors.CodeInvalidInput, "bvn must contain only digits")
		}
	}
	return BVN(s), nil
}

func (b BVN) String() string {
	return string(b)
}

// IsNil reports whether the BVN is unset.
func (b BVN) IsNil() bool {
	return b == ""
}

// Masked returns the BVN with all but the last four digits hidden, for logs.
func (b BVN) Masked() string {
	if len(b) < 4 {
		return "*******"
	}
	return "*******" + string(b[len(b)-4:])
}
