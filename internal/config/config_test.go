package config

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:5000", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.True(t, cfg.Headless)
	require.Equal(t, time.Duration(0), cfg.SlowMo)
	require.Equal(t, ".", cfg.OutDir)
	require.Empty(t, cfg.Report)
	require.Equal(t, ":5000", cfg.StubAddr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VERIFY_BASE_URL", "http://localhost:9999")
	t.Setenv("VERIFY_TIMEOUT", "5s")
	t.Setenv("VERIFY_HEADLESS", "false")
	t.Setenv("VERIFY_OUT_DIR", "/tmp/evidence")
	t.Setenv("VERIFY_REPORT", "run.json")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:9999", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.False(t, cfg.Headless)
	require.Equal(t, "/tmp/evidence", cfg.OutDir)
	require.Equal(t, "run.json", cfg.Report)
}

func TestReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.True(t, Reachable(srv.URL))
}

func TestReachableDownTarget(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	require.False(t, Reachable(url))
}

func TestReachableBadURL(t *testing.T) {
	require.False(t, Reachable("://not-a-url"))
}

func TestProbeAddr(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"http://localhost:5000", "localhost:5000"},
		{"http://example.com", "example.com:80"},
		{"https://example.com", "example.com:443"},
		{"https://example.com:8443", "example.com:8443"},
	}
	for _, tc := range cases {
		u, err := url.Parse(tc.base)
		require.NoError(t, err)
		require.Equal(t, tc.want, probeAddr(u), "base %s", tc.base)
	}
}
