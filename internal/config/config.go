package config

import (
	"bufio"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all settings for a verification run. With nothing set in the
// environment, the defaults reproduce the fixed smoke-flow contract:
// localhost:5000, headless, screenshots in the invocation directory.
type Config struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Headless bool          `mapstructure:"headless"`
	SlowMo   time.Duration `mapstructure:"slow_mo"`
	OutDir   string        `mapstructure:"out_dir"`
	Report   string        `mapstructure:"report"`
	StubAddr string        `mapstructure:"stub_addr"`
}

var loadOnce sync.Once

// loadDotEnv loads simple KEY=VALUE lines from .env if present.
// Existing environment variables take precedence and are not overwritten.
func loadDotEnv() {
	f, err := os.Open(".env")
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") { // skip comments/empty
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		val := strings.TrimSpace(line[i+1:])
		if key == "" || val == "" {
			continue
		}
		// Strip optional surrounding quotes
		if len(val) >= 2 && ((val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'')) {
			val = val[1 : len(val)-1]
		}
		if os.Getenv(key) == "" { // don't override existing
			_ = os.Setenv(key, val)
		}
	}
}

// Load builds the configuration: defaults, then .env, then VERIFY_* environment
// variables. Called fresh per run; only the .env read is cached.
func Load() (*Config, error) {
	loadOnce.Do(loadDotEnv)

	v := viper.New()
	v.SetDefault("base_url", "http://localhost:5000")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("headless", true)
	v.SetDefault("slow_mo", time.Duration(0))
	v.SetDefault("out_dir", ".")
	v.SetDefault("report", "")
	v.SetDefault("stub_addr", ":5000")

	v.SetEnvPrefix("VERIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// probeAddr returns the host:port to dial for a base URL, defaulting the
// port from the scheme when the URL carries none.
func probeAddr(u *url.URL) string {
	host := u.Host
	if strings.Contains(host, ":") {
		return host
	}
	if u.Scheme == "https" {
		return host + ":443"
	}
	return host + ":80"
}

// Reachable reports whether a base URL answers on its TCP port and serves
// either /healthz or /. Used for preflight diagnostics only; the run itself
// surfaces unreachable targets as navigation failures.
func Reachable(base string) bool {
	u, err := url.Parse(base)
	if err != nil {
		return false
	}
	d := net.Dialer{Timeout: 250 * time.Millisecond}
	conn, err := d.Dial("tcp", probeAddr(u))
	if err != nil {
		return false
	}
	_ = conn.Close()
	client := &http.Client{Timeout: 800 * time.Millisecond}
	for _, path := range []string{"/healthz", "/"} {
		req, _ := http.NewRequest("GET", base+path, nil)
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			return true
		}
	}
	return false
}
