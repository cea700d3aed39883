package middleware

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/habits"
)

const unknownIP = "0.0.0.0"

// forwardingHeaders are searched, in order, for the client's address.
var forwardingHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

// IANA non-public ranges not covered by netip.Addr.IsPrivate.
var nonPublic = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress stores the address of the client making the request, per ClientIP,
// in the request context under habits.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), habits.IpAddrKey, ClientIP(r))
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// ClientIP returns the public address forwarded in the request headers, per GetIPAddress,
// falling back to the host the request came from.
func ClientIP(r *http.Request) string {
	if ip := GetIPAddress(r.Header); ip != unknownIP {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return unknownIP
	}

	return host
}

// GetIPAddress searches the "X-Forwarded-For" then the "X-Real-Ip" header for the client's address.
// Each header is read right to left, skipping non-public addresses,
// so the address found is the one right before the proxies in front of the habits API.
//
// If none is found, GetIPAddress returns "0.0.0.0".
func GetIPAddress(hm http.Header) string {
	for _, h := range forwardingHeaders {
		addresses := strings.Split(hm.Get(h), ",")
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			if addr, err := netip.ParseAddr(ip); err == nil && isPublic(addr) {
				return ip
			}
		}
	}

	return unknownIP
}

func isPublic(addr netip.Addr) bool {
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range nonPublic {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
