package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	trusted := ParseTrustedProxies([]string{"10.0.0.0/8", "192.0.2.10"})

	testCases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		trusted    TrustedProxies
		expected   string
	}{
		{name: "Remote Address", remoteAddr: "192.0.2.1:54321", expected: "192.0.2.1"},
		{name: "Headers Ignored Without Trusted Proxies", remoteAddr: "203.0.113.9:1000", forwarded: "198.51.100.1", realIP: "198.51.100.2", expected: "203.0.113.9"},
		{name: "Headers Ignored From Untrusted Peer", remoteAddr: "203.0.113.9:1000", forwarded: "198.51.100.1", trusted: trusted, expected: "203.0.113.9"},
		{name: "Right Most Untrusted Hop", remoteAddr: "10.0.0.1:1000", forwarded: "1.1.1.1, 198.51.100.7, 10.0.0.2", trusted: trusted, expected: "198.51.100.7"},
		{name: "Single Proxy IP", remoteAddr: "192.0.2.10:1000", forwarded: "198.51.100.8", trusted: trusted, expected: "198.51.100.8"},
		{name: "Malformed Hop Falls Back To Peer", remoteAddr: "10.0.0.1:1000", forwarded: "198.51.100.7, not-an-ip", trusted: trusted, expected: "10.0.0.1"},
		{name: "Real IP From Trusted Proxy", remoteAddr: "10.0.0.1:1000", realIP: "198.51.100.4", trusted: trusted, expected: "198.51.100.4"},
		{name: "Only Trusted Hops", remoteAddr: "10.0.0.1:1000", forwarded: "10.0.0.3", trusted: trusted, expected: "10.0.0.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set(constvars.HeaderXForwardedFor, tc.forwarded)
			}
			if tc.realIP != "" {
				req.Header.Set(constvars.HeaderXRealIP, tc.realIP)
			}
			assert.Equal(t, tc.expected, GetClientIP(req, tc.trusted))
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	proxies := ParseTrustedProxies([]string{" 10.0.0.0/8 ", "192.0.2.10", "2001:db8::1", "", "bogus", "300.0.0.0/8"})

	assert.Len(t, proxies, 3)
	assert.True(t, proxies.Contains("10.1.2.3"))
	assert.True(t, proxies.Contains("192.0.2.10"))
	assert.False(t, proxies.Contains("192.0.2.11"))
	assert.True(t, proxies.Contains("2001:db8::1"))
	assert.False(t, proxies.Contains("not-an-ip"))
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.True(t, strings.HasPrefix(first, constvars.REQUEST_ID_PREFIX))
	assert.NotEqual(t, first, second)
}

func TestGenerateConsentFormSchemaCacheKey(t *testing.T) {
	assert.Equal(t, "consent_form_schema:abc:42", GenerateConsentFormSchemaCacheKey("abc", 42))
}
