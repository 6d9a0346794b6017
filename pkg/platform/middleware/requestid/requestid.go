// Package requestid assigns every request a correlation ID, honoring one
// supplied by an upstream proxy.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"credlens/pkg/requestcontext"
)

// HeaderName is the canonical request ID header.
const HeaderName = "X-Request-Id"

// RequestID injects a request ID into the context and echoes it on the
// response so clients can correlate failures with server logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderName)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderName, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
