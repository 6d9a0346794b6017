package bureau

import (
	"errors"
	"fmt"
)

// ErrorCategory defines the normalized failure taxonomy for bureau calls.
type ErrorCategory string

const (
	// ErrorTimeout indicates the vendor took too long to respond.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the vendor returned a payload that could not be
	// decoded at all. Sparse-but-decodable reports are not errors; the
	// normalizer degrades them to neutral defaults.
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates API key or permission issues.
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorProviderOutage indicates the vendor is unavailable.
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorNotFound indicates no bureau record exists for the BVN.
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests.
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorInternal indicates an unexpected internal error.
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps vendor failures with normalized categorization.
type ProviderError struct {
	Category   ErrorCategory
	Message    string
	Underlying error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("bureau [%s]: %s: %v", e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("bureau [%s]: %s", e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// NewProviderError creates a normalized provider error. Timeouts, outages,
// and rate limits are marked retryable.
func NewProviderError(category ErrorCategory, message string, underlying error) *ProviderError {
	retryable := category == ErrorTimeout ||
		category == ErrorProviderOutage ||
		category == ErrorRateLimited

	return &ProviderError{
		Category:   category,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error.
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}
