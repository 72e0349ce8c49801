package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Resolver finds the client address of a request. Forwarding headers are
// consulted only when listed in Headers, in order; the connection address
// is the fallback.
type Resolver struct {
	Headers []string
}

// Resolve returns the normalized client IP, or "" when none is valid.
// Comma-separated header values (X-Forwarded-For) yield their first valid
// address.
func (res Resolver) Resolve(r *http.Request) string {
	for _, name := range res.Headers {
		for part := range strings.SplitSeq(r.Header.Get(name), ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Middleware stores the resolved client IP in the request context.
func (res Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.Resolve(r))))
	})
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
