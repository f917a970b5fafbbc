package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders lists the proxy headers checked by default, by priority.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the normalized client address of r, or "" when none
// of the candidates is a valid IP. X-Forwarded-For style lists yield their
// first valid entry.
func FromRequest(r *http.Request, headers ...string) string {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	for _, h := range headers {
		for candidate := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := parse(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
