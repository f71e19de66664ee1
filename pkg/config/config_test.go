package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/readmefeed/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Document != "README.md" || cfg.Timeout != 20*time.Second || cfg.Concurrency != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Keys.NASA != "DEMO_KEY" {
		t.Errorf("Keys.NASA = %q, want DEMO_KEY", cfg.Keys.NASA)
	}

	want := []string{"arxiv_ticker", "arxiv_list", "apod", "usgs", "swpc", "neo"}
	if len(cfg.Regions) != len(want) {
		t.Fatalf("got %d regions, want %d", len(cfg.Regions), len(want))
	}
	for i, name := range want {
		if cfg.Regions[i].Name != name {
			t.Errorf("Regions[%d] = %q, want %q", i, cfg.Regions[i].Name, name)
		}
	}
}

func TestRegionDelimiters(t *testing.T) {
	tests := []struct {
		region     Region
		start, end string
	}{
		{Region{Name: "apod"}, "<!-- APOD_START -->", "<!-- APOD_END -->"},
		{Region{Name: "arxiv-list"}, "<!-- ARXIV_LIST_START -->", "<!-- ARXIV_LIST_END -->"},
		{Region{Name: "x", Start: "<!--S-->", End: "<!--E-->"}, "<!--S-->", "<!--E-->"},
		{Region{Name: "y", Start: "[[y]]"}, "[[y]]", "<!-- Y_END -->"},
	}
	for _, tt := range tests {
		start, end := tt.region.Delimiters()
		if start != tt.start || end != tt.end {
			t.Errorf("%s: Delimiters() = (%q, %q), want (%q, %q)", tt.region.Name, start, end, tt.start, tt.end)
		}
	}
}

func TestRegionKindAndParam(t *testing.T) {
	r := Region{Name: "usgs"}
	if r.Kind() != "usgs" {
		t.Errorf("Kind() = %q, want usgs", r.Kind())
	}
	r = Region{Name: "quakes", Source: "usgs", Params: map[string]string{"min": "5", "empty": ""}}
	if r.Kind() != "usgs" {
		t.Errorf("Kind() = %q, want usgs", r.Kind())
	}
	if got := r.Param("min", "4.5"); got != "5" {
		t.Errorf("Param(min) = %q", got)
	}
	if got := r.Param("empty", "d"); got != "d" {
		t.Errorf("Param(empty) = %q, want default", got)
	}
	if got := r.Param("missing", "d"); got != "d" {
		t.Errorf("Param(missing) = %q, want default", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "readmefeed.toml", `
document = "docs/INDEX.md"
timeout = "5s"
concurrency = 4

[cache]
backend = "none"

[[region]]
name = "quakes"
source = "usgs"
start = "<!-- QUAKES -->"
end = "<!-- /QUAKES -->"
fallback = "_resting_"

[[region]]
name = "papers"
source = "pubmed"
params = { term = "seismology" }
`)
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Document != "docs/INDEX.md" || cfg.Timeout != 5*time.Second || cfg.Concurrency != 4 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default kept", cfg.UserAgent)
	}
	if cfg.Cache.Backend != "none" || cfg.Cache.TTL != DefaultCacheTTL {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if len(cfg.Regions) != 2 {
		t.Fatalf("got %d regions, want 2 (file replaces defaults)", len(cfg.Regions))
	}
	if cfg.Regions[0].Fallback != "_resting_" || cfg.Regions[1].Param("term", "") != "seismology" {
		t.Errorf("Regions = %+v", cfg.Regions)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Setenv(EnvGitHubToken, "")
	t.Setenv(EnvNASAKey, "")
	path := writeFile(t, "readmefeed.yaml", `
document: docs/INDEX.md
timeout: 7s
keys:
  github: ghp_test
cache:
  backend: memory
region:
  - name: quakes
    source: usgs
    params:
      min: "5.0"
`)
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Document != "docs/INDEX.md" || cfg.Timeout != 7*time.Second {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Keys.GitHub != "ghp_test" || cfg.Keys.NASA != DefaultNASAKey {
		t.Errorf("Keys = %+v, want github set and NASA default kept", cfg.Keys)
	}
	if cfg.Cache.Backend != "memory" || cfg.Cache.TTL != DefaultCacheTTL {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if len(cfg.Regions) != 1 || cfg.Regions[0].Param("min", "") != "5.0" {
		t.Errorf("Regions = %+v", cfg.Regions)
	}
}

func TestLoadYAMLUnknownKey(t *testing.T) {
	path := writeFile(t, "c.yml", "document: x.md\ncolour: blue\n")
	if _, err := Load(path, true); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(missing, false)
	if err != nil {
		t.Fatalf("Load(implicit) error = %v", err)
	}
	if len(cfg.Regions) != len(DefaultRegions()) {
		t.Errorf("expected default regions")
	}

	if _, err := Load(missing, true); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(explicit) error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := map[string]string{
		"syntax":      `document = `,
		"unknown key": `colour = "blue"`,
		"same delims": "[[region]]\nname = \"a\"\nstart = \"x\"\nend = \"x\"",
		"duplicate":   "[[region]]\nname = \"a\"\n[[region]]\nname = \"a\"",
		"bad backend": "[cache]\nbackend = \"memcached\"",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeFile(t, "c.toml", body), true); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvNASAKey:     "nasa-secret",
		EnvGitHubToken: "gh-token",
		EnvRedisURL:    "redis://cache:6379/1",
		EnvNCBIKey:     "",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if cfg.Keys.NASA != "nasa-secret" || cfg.Keys.GitHub != "gh-token" {
		t.Errorf("Keys = %+v", cfg.Keys)
	}
	if cfg.Keys.NCBI != "" {
		t.Errorf("empty env value should be ignored, got %q", cfg.Keys.NCBI)
	}
	if cfg.Cache.RedisURL != "redis://cache:6379/1" {
		t.Errorf("RedisURL = %q", cfg.Cache.RedisURL)
	}

	cfg = Default()
	cfg.ApplyEnv(noEnv)
	if cfg.Keys.NASA != DefaultNASAKey {
		t.Errorf("Keys.NASA = %q, want default", cfg.Keys.NASA)
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, ".env", "READMEFEED_TEST_VALUE=from-file\n")
	t.Setenv("READMEFEED_TEST_VALUE", "")
	os.Unsetenv("READMEFEED_TEST_VALUE")

	if err := LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("READMEFEED_TEST_VALUE"); got != "from-file" {
		t.Errorf("READMEFEED_TEST_VALUE = %q, want from-file", got)
	}

	t.Setenv("READMEFEED_TEST_VALUE", "from-env")
	if err := LoadEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("READMEFEED_TEST_VALUE"); got != "from-env" {
		t.Errorf("LoadEnv overrode existing variable: %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr errors.Code
	}{
		{"ok", func(*Config) {}, ""},
		{"empty document", func(c *Config) { c.Document = " " }, errors.ErrCodeInvalidConfig},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, errors.ErrCodeInvalidConfig},
		{"negative concurrency", func(c *Config) { c.Concurrency = -1 }, errors.ErrCodeInvalidConfig},
		{"bad name", func(c *Config) { c.Regions = []Region{{Name: "Bad Name"}} }, errors.ErrCodeInvalidRegion},
		{"same delimiters", func(c *Config) { c.Regions = []Region{{Name: "a", Start: "<!--X-->", End: "<!--X-->"}} }, errors.ErrCodeInvalidRegion},
		{"duplicate", func(c *Config) { c.Regions = append(c.Regions, Region{Name: "apod"}) }, errors.ErrCodeInvalidRegion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %s", err, tt.wantErr)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	cfg := Default()

	all, err := cfg.Select(nil)
	if err != nil || len(all) != len(cfg.Regions) {
		t.Fatalf("Select(nil) = %d, %v", len(all), err)
	}

	got, err := cfg.Select([]string{"neo", "apod"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "apod" || got[1].Name != "neo" {
		t.Errorf("Select() = %+v, want configured order apod, neo", got)
	}

	if _, err := cfg.Select([]string{"nope"}); !errors.Is(err, errors.ErrCodeInvalidRegion) {
		t.Errorf("Select(nope) error = %v", err)
	}
}
