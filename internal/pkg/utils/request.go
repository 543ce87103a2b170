package utils

import (
	"net"
	"net/http"
	"strings"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

// TrustedProxies are the networks allowed to report the client address
// through forwarding headers.
type TrustedProxies []*net.IPNet

// ParseTrustedProxies accepts plain IPs and CIDRs. Invalid entries are
// skipped.
func ParseTrustedProxies(entries []string) TrustedProxies {
	proxies := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				continue
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			proxies = append(proxies, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			continue
		}
		proxies = append(proxies, network)
	}
	return proxies
}

func (t TrustedProxies) Contains(rawIP string) bool {
	ip := net.ParseIP(rawIP)
	if ip == nil {
		return false
	}
	for _, network := range t {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// GetClientIP returns the connection address unless the connection comes from
// a trusted proxy. Then X-Forwarded-For is read right to left and the first
// hop outside trusted is the client; hops to its left are client supplied and
// ignored. X-Real-IP is used when a trusted proxy sends no X-Forwarded-For.
func GetClientIP(r *http.Request, trusted TrustedProxies) string {
	remoteIP := remoteHost(r)
	if !trusted.Contains(remoteIP) {
		return remoteIP
	}

	if forwarded := r.Header.Get(constvars.HeaderXForwardedFor); forwarded != "" {
		hops := strings.Split(forwarded, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if net.ParseIP(hop) == nil {
				// a malformed hop cannot be attributed; stop at the last known proxy
				return remoteIP
			}
			if !trusted.Contains(hop) {
				return hop
			}
		}
		return remoteIP
	}
	if realIP := strings.TrimSpace(r.Header.Get(constvars.HeaderXRealIP)); net.ParseIP(realIP) != nil {
		return realIP
	}
	return remoteIP
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
