package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPLimiterDisabled(t *testing.T) {
	assert.Nil(t, newIPLimiter(RateLimitOptions{}))
	assert.Nil(t, newIPLimiter(RateLimitOptions{RPS: -1, Burst: 5}))
}

func TestIPLimiterEvictsIdleVisitors(t *testing.T) {
	l := newIPLimiter(RateLimitOptions{RPS: 1, Burst: 1, VisitorTTL: time.Minute})
	require.NotNil(t, l)
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	l.lastSweep = now

	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))
	assert.Equal(t, 2, l.size())

	now = now.Add(2 * time.Minute)
	assert.True(t, l.allow("10.0.0.3"))
	assert.Equal(t, 1, l.size())
	// a dropped visitor starts with a full bucket
	assert.True(t, l.allow("10.0.0.1"))
}

func TestClientIP(t *testing.T) {
	trusted, err := ParseTrustedProxies(" 10.0.0.0/8, 192.0.2.10 ")
	require.NoError(t, err)
	l := newIPLimiter(RateLimitOptions{RPS: 1, TrustedProxies: trusted})
	require.NotNil(t, l)
	testCases := []struct {
		Desc       string
		RemoteAddr string
		Forwarded  string
		Expected   string
	}{
		{Desc: "direct client", RemoteAddr: "198.51.100.2:5555", Expected: "198.51.100.2"},
		{Desc: "header from untrusted peer ignored", RemoteAddr: "198.51.100.2:5555", Forwarded: "203.0.113.1", Expected: "198.51.100.2"},
		{Desc: "trusted proxy", RemoteAddr: "192.0.2.10:443", Forwarded: "203.0.113.1", Expected: "203.0.113.1"},
		{Desc: "spoofed leading hop ignored", RemoteAddr: "192.0.2.10:443", Forwarded: "1.2.3.4, 203.0.113.1", Expected: "203.0.113.1"},
		{Desc: "proxy chain skipped", RemoteAddr: "10.1.1.1:443", Forwarded: "203.0.113.1, 10.2.2.2 , 192.0.2.10", Expected: "203.0.113.1"},
		{Desc: "only proxies", RemoteAddr: "10.1.1.1:443", Forwarded: "10.2.2.2", Expected: "10.2.2.2"},
		{Desc: "trusted proxy without header", RemoteAddr: "192.0.2.10:443", Expected: "192.0.2.10"},
		{Desc: "no port", RemoteAddr: "unix", Expected: "unix"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.RemoteAddr
			if tc.Forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.Forwarded)
			}
			assert.Equal(t, tc.Expected, l.clientIP(r))
		})
	}
}

func TestClientIPWithoutTrustedProxies(t *testing.T) {
	l := newIPLimiter(RateLimitOptions{RPS: 1})
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	for _, fwd := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		r.Header.Set("X-Forwarded-For", fwd)
		assert.Equal(t, "192.0.2.10", l.clientIP(r))
	}
}

func TestParseTrustedProxies(t *testing.T) {
	prefixes, err := ParseTrustedProxies("")
	assert.NoError(t, err)
	assert.Empty(t, prefixes)

	prefixes, err = ParseTrustedProxies("172.16.0.0/12,::1")
	require.NoError(t, err)
	require.Len(t, prefixes, 2)
	assert.Equal(t, "172.16.0.0/12", prefixes[0].String())
	assert.Equal(t, "::1/128", prefixes[1].String())

	_, err = ParseTrustedProxies("10.0.0.0/8,proxy.local")
	assert.Error(t, err)
	_, err = ParseTrustedProxies("10.0.0.0/40")
	assert.Error(t, err)
}
