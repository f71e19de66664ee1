// Package config loads readmefeed's run configuration.
//
// Configuration comes from three layers, later layers winning:
//
//  1. Built-in defaults ([Default]), which reproduce the classic README layout
//  2. An optional TOML file (readmefeed.toml), or YAML when the file name
//     ends in .yaml or .yml
//  3. Environment variables, optionally seeded from a .env file
//
// Sources never read the environment themselves; API keys and base settings
// reach them through the [Config] value built here.
//
// # File format
//
//	document = "README.md"
//	timeout = "20s"
//	concurrency = 4
//
//	[cache]
//	backend = "file"
//	ttl = "30m"
//
//	[[region]]
//	name = "apod"
//
//	[[region]]
//	name = "quakes"
//	source = "usgs"
//	start = "<!-- QUAKES -->"
//	end = "<!-- /QUAKES -->"
//	fallback = "_Earthquake feed is taking a break._"
//
//	[[region]]
//	name = "papers"
//	source = "pubmed"
//	params = { term = "seismology" }
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/readmefeed/pkg/cache"
	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/inject"
)

// Defaults.
const (
	DefaultFile        = "readmefeed.toml"
	DefaultDocument    = "README.md"
	DefaultTimeout     = 20 * time.Second
	DefaultUserAgent   = "github-readme-updater/2.0"
	DefaultConcurrency = 1
	DefaultCacheTTL    = 30 * time.Minute
	DefaultNASAKey     = "DEMO_KEY"
)

// Environment variables read by [Config.ApplyEnv].
const (
	EnvNASAKey     = "NASA_API_KEY"
	EnvGitHubToken = "GITHUB_TOKEN"
	EnvNCBIKey     = "NCBI_API_KEY"
	EnvRedisURL    = "READMEFEED_REDIS_URL"
	EnvCacheDir    = "READMEFEED_CACHE_DIR"
)

// Config is the complete configuration of one run.
type Config struct {
	Document    string        `toml:"document" yaml:"document"`
	Timeout     time.Duration `toml:"timeout" yaml:"timeout"`
	UserAgent   string        `toml:"user_agent" yaml:"user_agent"`
	Concurrency int           `toml:"concurrency" yaml:"concurrency"`
	Keys        Keys          `toml:"keys" yaml:"keys"`
	Cache       Cache         `toml:"cache" yaml:"cache"`
	Regions     []Region      `toml:"region" yaml:"region"`
}

// Keys holds API credentials. All are optional.
type Keys struct {
	NASA   string `toml:"nasa" yaml:"nasa"`
	GitHub string `toml:"github" yaml:"github"`
	NCBI   string `toml:"ncbi" yaml:"ncbi"`
}

// Cache configures the response cache.
type Cache struct {
	Backend  string        `toml:"backend" yaml:"backend"`
	TTL      time.Duration `toml:"ttl" yaml:"ttl"`
	Dir      string        `toml:"dir" yaml:"dir"`
	RedisURL string        `toml:"redis_url" yaml:"redis_url"`
}

// Region binds a marker region of the document to a source.
type Region struct {
	Name     string            `toml:"name" yaml:"name"`
	Source   string            `toml:"source" yaml:"source"`
	Start    string            `toml:"start" yaml:"start"`
	End      string            `toml:"end" yaml:"end"`
	Fallback string            `toml:"fallback" yaml:"fallback"`
	Params   map[string]string `toml:"params" yaml:"params"`
}

// Kind returns the source kind rendering this region. It defaults to the
// region name, so `name = "apod"` alone is a complete entry.
func (r Region) Kind() string {
	if r.Source != "" {
		return r.Source
	}
	return r.Name
}

// Delimiters returns the start and end markers. Missing markers default to
// <!-- NAME_START --> and <!-- NAME_END --> with NAME upper-cased.
func (r Region) Delimiters() (start, end string) {
	marker := strings.ToUpper(strings.ReplaceAll(r.Name, "-", "_"))
	start, end = r.Start, r.End
	if start == "" {
		start = "<!-- " + marker + "_START -->"
	}
	if end == "" {
		end = "<!-- " + marker + "_END -->"
	}
	return start, end
}

// Inject returns the region as an [inject.Region].
func (r Region) Inject() inject.Region {
	start, end := r.Delimiters()
	return inject.Region{Name: r.Name, Start: start, End: end}
}

// Param returns a source parameter or def when unset.
func (r Region) Param(key, def string) string {
	if v, ok := r.Params[key]; ok && v != "" {
		return v
	}
	return def
}

// Default returns the built-in configuration with the six regions of the
// classic README. A timestamp region must be configured explicitly.
func Default() *Config {
	return &Config{
		Document:    DefaultDocument,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		Concurrency: DefaultConcurrency,
		Keys:        Keys{NASA: DefaultNASAKey},
		Cache: Cache{
			Backend: cache.BackendFile,
			TTL:     DefaultCacheTTL,
		},
		Regions: DefaultRegions(),
	}
}

// DefaultRegions returns the built-in region list.
func DefaultRegions() []Region {
	return []Region{
		{Name: "arxiv_ticker", Source: "arxiv", Params: map[string]string{"view": "ticker"}},
		{Name: "arxiv_list", Source: "arxiv", Params: map[string]string{"view": "table"}},
		{Name: "apod", Fallback: "_NASA APOD unavailable — check NASA_API_KEY secret._"},
		{Name: "usgs"},
		{Name: "swpc"},
		{Name: "neo", Fallback: "_NASA NEO unavailable — check NASA_API_KEY secret._"},
	}
}

// Load builds a configuration from defaults, the TOML file at path and the
// environment. A missing file is only an error when explicit is true.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.decode(path, data); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
			}
		case os.IsNotExist(err) && !explicit:
		default:
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays the file data on c, picking the format from the file
// extension. Regions listed in the file replace the default region list as a
// whole.
func (c *Config) decode(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return c.decodeYAML(data)
	default:
		return c.decodeTOML(data)
	}
}

func (c *Config) decodeTOML(data []byte) error {
	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys: %v", undecoded)
	}
	c.overlay(&file, md.IsDefined)
	return nil
}

func (c *Config) decodeYAML(data []byte) error {
	var file Config
	if err := yaml.UnmarshalWithOptions(data, &file, yaml.Strict()); err != nil {
		return err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.overlay(&file, func(keys ...string) bool { return defined(raw, keys) })
	return nil
}

// defined reports whether the nested key path exists in m.
func defined(m map[string]any, keys []string) bool {
	for i, k := range keys {
		v, ok := m[k]
		if !ok {
			return false
		}
		if i == len(keys)-1 {
			return true
		}
		if m, ok = v.(map[string]any); !ok {
			return false
		}
	}
	return false
}

// overlay copies every field of file that isDefined reports as present.
func (c *Config) overlay(file *Config, isDefined func(keys ...string) bool) {
	if isDefined("document") {
		c.Document = file.Document
	}
	if isDefined("timeout") {
		c.Timeout = file.Timeout
	}
	if isDefined("user_agent") {
		c.UserAgent = file.UserAgent
	}
	if isDefined("concurrency") {
		c.Concurrency = file.Concurrency
	}
	if isDefined("keys", "nasa") {
		c.Keys.NASA = file.Keys.NASA
	}
	if isDefined("keys", "github") {
		c.Keys.GitHub = file.Keys.GitHub
	}
	if isDefined("keys", "ncbi") {
		c.Keys.NCBI = file.Keys.NCBI
	}
	if isDefined("cache", "backend") {
		c.Cache.Backend = file.Cache.Backend
	}
	if isDefined("cache", "ttl") {
		c.Cache.TTL = file.Cache.TTL
	}
	if isDefined("cache", "dir") {
		c.Cache.Dir = file.Cache.Dir
	}
	if isDefined("cache", "redis_url") {
		c.Cache.RedisURL = file.Cache.RedisURL
	}
	if isDefined("region") {
		c.Regions = file.Regions
	}
}

// ApplyEnv overrides credentials and cache settings from the environment.
// lookup is usually os.LookupEnv; empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvNASAKey, &c.Keys.NASA)
	set(EnvGitHubToken, &c.Keys.GitHub)
	set(EnvNCBIKey, &c.Keys.NCBI)
	set(EnvRedisURL, &c.Cache.RedisURL)
	set(EnvCacheDir, &c.Cache.Dir)
}

// LoadEnv seeds the process environment from .env-style files. Variables
// that are already set are left alone and missing files are skipped.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", f)
		}
	}
	return nil
}

// Validate checks the configuration for errors that would make a run
// meaningless: bad regions, duplicate names, unknown cache backends.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Document) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "document path cannot be empty")
	}
	if c.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout must be positive, got %s", c.Timeout)
	}
	if c.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency cannot be negative")
	}
	switch c.Cache.Backend {
	case "", cache.BackendFile, cache.BackendMemory, cache.BackendRedis, cache.BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}

	seen := make(map[string]bool, len(c.Regions))
	for _, r := range c.Regions {
		start, end := r.Delimiters()
		if err := errors.ValidateRegion(r.Name, start, end); err != nil {
			return err
		}
		if seen[r.Name] {
			return errors.New(errors.ErrCodeInvalidRegion, "duplicate region %q", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

// Select returns the regions whose names are listed in names, in configured
// order. An empty list selects every region.
func (c *Config) Select(names []string) ([]Region, error) {
	if len(names) == 0 {
		return c.Regions, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Region
	for _, r := range c.Regions {
		if want[r.Name] {
			out = append(out, r)
			delete(want, r.Name)
		}
	}
	for n := range want {
		return nil, errors.New(errors.ErrCodeInvalidRegion, "no region named %q", n)
	}
	return out, nil
}
