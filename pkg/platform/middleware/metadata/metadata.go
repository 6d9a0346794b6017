// Package metadata extracts client IP, User-Agent, and a normalized device
// summary from incoming requests for use in audit events and logs.
package metadata

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"credlens/pkg/requestcontext"
)

// ClientMetadata extracts client metadata from the request and adds it to
// the context. Apply early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIPFromRequest(r)
		ua := r.Header.Get("User-Agent")
		ctx := requestcontext.WithClientMetadata(r.Context(), ip, ua, DeviceSummary(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DeviceSummary reduces a raw User-Agent to "Browser Version / OS" for audit
// records, so raw UA strings never need to be stored.
func DeviceSummary(rawUA string) string {
	if rawUA == "" {
		return "unknown"
	}
	ua := useragent.New(rawUA)
	name, version := ua.Browser()
	os := ua.OS()
	switch {
	case name == "" && os == "":
		return "unknown"
	case name == "":
		return os
	case os == "":
		return strings.TrimSpace(name + " " + version)
	}
	return strings.TrimSpace(name+" "+version) + " / " + os
}

// ClientIPFromRequest extracts the real client IP, handling proxies and
// load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs; the first is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" (IPv4) or "[::1]:port" (IPv6).
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return strings.Trim(addr[:idx], "[]")
		}
		return addr
	}
	return ""
}
