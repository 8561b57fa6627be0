package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndpoint(t *testing.T) {
	ep, err := NewEndpoint("https", "reports.example.com", 8443, "Default/v6/CodeCheckerService")

	require.NoError(t, err)
	assert.Equal(t, "/Default/v6/CodeCheckerService", ep.Path)
	assert.Equal(t, "https://reports.example.com:8443/Default/v6/CodeCheckerService", ep.URL())
	assert.Equal(t, ep.URL(), ep.String())
}

func TestNewEndpoint_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		scheme string
		host   string
		port   int
	}{
		{"bad scheme", "ftp", "localhost", 8001},
		{"empty host", "http", "", 8001},
		{"zero port", "http", "localhost", 0},
		{"port too large", "http", "localhost", 70000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEndpoint(tt.scheme, tt.host, tt.port, "/")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestEndpoint_IPv6(t *testing.T) {
	ep, err := NewEndpoint("http", "::1", 8001, "/x")

	require.NoError(t, err)
	assert.Equal(t, "http://[::1]:8001/x", ep.URL())
}

func TestParseProductURL(t *testing.T) {
	tests := []struct {
		raw  string
		want ProductURL
	}{
		{"", ProductURL{"http", "localhost", 8001, "Default"}},
		{"localhost:8001/Default", ProductURL{"http", "localhost", 8001, "Default"}},
		{"http://server:9000/MyProduct", ProductURL{"http", "server", 9000, "MyProduct"}},
		{"https://server/MyProduct", ProductURL{"https", "server", 443, "MyProduct"}},
		{"server", ProductURL{"http", "server", 8001, "Default"}},
		{"server/", ProductURL{"http", "server", 8001, "Default"}},
		{"HTTP://server:1234/p_1", ProductURL{"http", "server", 1234, "p_1"}},
		{"http://[::1]:8001/Default", ProductURL{"http", "::1", 8001, "Default"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseProductURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProductURL_Invalid(t *testing.T) {
	for _, raw := range []string{
		"ftp://server/Default",
		"http://server:notaport/Default",
		"http://server:0/Default",
		"http://server/a/b",
		"http://server/bad-name",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseProductURL(raw)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestProductURL_Endpoints(t *testing.T) {
	p, err := ParseProductURL("https://server:8443/Prod")
	require.NoError(t, err)

	assert.Equal(t, "https://server:8443/Prod", p.String())
	assert.Equal(t, "https://server:8443/Prod/v6/CodeCheckerService", p.ReportEndpoint().URL())
	assert.Equal(t, "https://server:8443/v6/Authentication", p.AuthEndpoint().URL())
}
