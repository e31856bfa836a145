package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(envOf(nil))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("UpstreamTimeout = %v, want 10s", cfg.UpstreamTimeout)
	}
	if cfg.Supabase.Configured() {
		t.Error("Supabase should not be configured without env values")
	}
	if cfg.RateLimit.Enabled() {
		t.Error("rate limiting should be disabled without REDIS_ADDR")
	}
}

func TestLoadFromSupabase(t *testing.T) {
	cases := []struct {
		name       string
		env        map[string]string
		configured bool
		wantURL    string
	}{
		{"both set", map[string]string{"SUPABASE_URL": "https://x.supabase.co", "SUPABASE_ANON_KEY": "k"}, true, "https://x.supabase.co"},
		{"trailing slash trimmed", map[string]string{"SUPABASE_URL": "https://x.supabase.co/", "SUPABASE_ANON_KEY": "k"}, true, "https://x.supabase.co"},
		{"missing key", map[string]string{"SUPABASE_URL": "https://x.supabase.co"}, false, "https://x.supabase.co"},
		{"missing url", map[string]string{"SUPABASE_ANON_KEY": "k"}, false, ""},
		{"blank key", map[string]string{"SUPABASE_URL": "https://x.supabase.co", "SUPABASE_ANON_KEY": "  "}, false, "https://x.supabase.co"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadFrom(envOf(tc.env))
			if err != nil {
				t.Fatalf("LoadFrom: %v", err)
			}
			if got := cfg.Supabase.Configured(); got != tc.configured {
				t.Errorf("Configured() = %v, want %v", got, tc.configured)
			}
			if cfg.Supabase.URL != tc.wantURL {
				t.Errorf("URL = %q, want %q", cfg.Supabase.URL, tc.wantURL)
			}
		})
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(envOf(map[string]string{
		"PORT":             "3000",
		"LOG_LEVEL":        "DEBUG",
		"UPSTREAM_TIMEOUT": "2s",
		"REDIS_ADDR":       "localhost:6379",
		"RATE_LIMIT":       "5",
		"RATE_WINDOW":      "30s",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Port != 3000 || cfg.LogLevel != "debug" || cfg.UpstreamTimeout != 2*time.Second {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.RateLimit.Enabled() || cfg.RateLimit.Limit != 5 || cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"non-numeric port":  {"PORT": "eighty"},
		"port out of range": {"PORT": "70000"},
		"unknown log level": {"LOG_LEVEL": "loud"},
		"bad timeout":       {"UPSTREAM_TIMEOUT": "soon"},
		"negative timeout":  {"UPSTREAM_TIMEOUT": "-1s"},
		"bad rate limit":    {"RATE_LIMIT": "many"},
		"zero window":       {"RATE_WINDOW": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFrom(envOf(env)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn")

	if log.GetLevel() != logrus.WarnLevel {
		t.Fatalf("level = %v, want warn", log.GetLevel())
	}

	log.Info("dropped")
	log.WithField("k", "v").Warn("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "kept" || entry["k"] != "v" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	if got := newLogger(&bytes.Buffer{}, "nope").GetLevel(); got != logrus.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
}
