package handler

import (
	"net"
	"net/http"
	"strings"
)

// clientIP extracts the client address for submission metadata and chat
// logs. Behind the site's proxy the first X-Forwarded-For entry is the
// caller; otherwise fall back to the connection's remote address. This is
// recorded for reference, not used for any security decision.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
