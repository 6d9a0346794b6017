// Package domainerrors defines the code-based error taxonomy shared by all
// domain services. Handlers translate codes to HTTP statuses through
// pkg/platform/httputil; services never import net/http.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure. Codes are part of the public API:
// they appear verbatim in JSON error envelopes.
type Code string

const (
	// CodeInvalidInput marks precondition failures on caller-supplied data,
	// e.g. a missing or malformed BVN before a bureau lookup.
	CodeInvalidInput Code = "invalid_input"

	// CodeBadRequest marks malformed request bodies or parameters.
	CodeBadRequest Code = "bad_request"

	// CodeUnauthorized marks missing or invalid authentication.
	CodeUnauthorized Code = "unauthorized"

	// CodeNotFound marks lookups for records that do not exist.
	CodeNotFound Code = "not_found"

	// CodeUpstreamUnavailable marks failures of the credit-bureau provider
	// that could not be degraded to neutral defaults.
	CodeUpstreamUnavailable Code = "upstream_unavailable"

	// CodeInternal is the catch-all for unexpected failures. Its description
	// is never surfaced to clients.
	CodeInternal Code = "internal_error"
)

// Error carries a code plus a human-readable description.
type Error struct {
	Code        Code
	Description string
	cause       error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Description, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a domain error with the given code and description.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// Wrap creates a domain error that preserves an underlying cause for logs
// while exposing only code and description to clients.
func Wrap(cause error, code Code, description string) *Error {
	return &Error{Code: code, Description: description, cause: cause}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code onto an HTTP status for the transport layer.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput, CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
