// Package httputil centralizes JSON response writing and request decoding so
// handlers stay thin and error envelopes stay consistent.
package httputil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "credlens/pkg/domain-errors"
)

// errorResponse is the JSON envelope for all error responses.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope.
// Internal errors never leak their description to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	resp := errorResponse{Error: string(code)}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if ok := asDomainError(err, &de); ok {
			resp.ErrorDescription = de.Description
		}
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), resp)
}

func asDomainError(err error, target **dErrors.Error) bool {
	for err != nil {
		if de, ok := err.(*dErrors.Error); ok {
			*target = de
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// DecodeAndPrepare decodes the request body into T and runs its Prepare hook
// when present. On failure it writes a bad_request envelope and returns
// ok=false; handlers simply return.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (T, bool) {
	var req T
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if logger != nil {
				logger.WarnContext(ctx, "failed to decode request body",
					"request_id", requestID,
					"error", err,
				)
			}
			WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON body"))
			return req, false
		}
	}
	if p, ok := any(&req).(interface{ Prepare() error }); ok {
		if err := p.Prepare(); err != nil {
			WriteError(w, err)
			return req, false
		}
	}
	return req, true
}
