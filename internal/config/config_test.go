package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "familytree.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.Cache.Backend != CacheNone || cfg.Store.Backend != StoreMemory {
		t.Errorf("backends = %q/%q", cfg.Cache.Backend, cfg.Store.Backend)
	}
	if cfg.Render.Layout.BoxWidth != 120 {
		t.Errorf("BoxWidth = %g, want 120", cfg.Render.Layout.BoxWidth)
	}
	if cfg.Level() != log.InfoLevel {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
addr = "127.0.0.1:8080"
log_level = "debug"
cors_origins = ["https://example.com"]
request_timeout = "5s"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl = "1h"

[store]
backend = "mongo"
mongo_uri = "mongodb://localhost:27017"

[render]
style = "print"

[render.layout]
box_width = 160
box_height = 70
h_gap = 20
v_gap = 60
origin_x = 10
origin_y = 10
margin = 10
corner_radius = 0
name_baseline = 30
detail_baseline = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" || cfg.Level() != log.DebugLevel {
		t.Errorf("addr/level = %q/%v", cfg.Addr, cfg.Level())
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.RequestTimeout != 5*time.Second || cfg.Cache.TTL != time.Hour {
		t.Errorf("durations = %v/%v", cfg.RequestTimeout, cfg.Cache.TTL)
	}
	if cfg.Store.Database != "familytree" {
		t.Errorf("unset keys should keep defaults, Database = %q", cfg.Store.Database)
	}
	if cfg.Render.Style != "print" || cfg.Render.Layout.BoxWidth != 160 {
		t.Errorf("render = %+v", cfg.Render)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `addr = ":4000"`)
	t.Setenv("FAMILYTREE_ADDR", ":5000")
	t.Setenv("FAMILYTREE_CORS_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("FAMILYTREE_CACHE_BACKEND", "file")
	t.Setenv("FAMILYTREE_CACHE_TTL", "90m")
	t.Setenv("FAMILYTREE_METRICS", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Addr != ":5000" {
		t.Errorf("env should win over file, Addr = %q", cfg.Addr)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.test" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.Cache.Backend != CacheFile || cfg.Cache.TTL != 90*time.Minute {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Metrics {
		t.Error("Metrics should be disabled by env")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "syntax", content: `addr = `},
		{name: "unknown key", content: `adress = ":3000"`},
		{name: "bad log level", content: `log_level = "loud"`},
		{name: "bad cache backend", content: "[cache]\nbackend = \"memcached\""},
		{name: "redis without addr", content: "[cache]\nbackend = \"redis\""},
		{name: "mongo without uri", content: "[store]\nbackend = \"mongo\""},
		{name: "bad style", content: "[render]\nstyle = \"neon\""},
		{name: "bad geometry", content: "[render.layout]\nbox_width = -1"},
		{name: "bad addr", content: `addr = "nope"`},
		{name: "bad env bool", env: map[string]string{"FAMILYTREE_METRICS": "maybe"}},
		{name: "bad env duration", env: map[string]string{"FAMILYTREE_CACHE_TTL": "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.content != "" {
				path = writeConfig(t, tt.content)
			}
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitList() = %v", got)
	}
}
