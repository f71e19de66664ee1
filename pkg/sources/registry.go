package sources

import (
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/readmefeed/pkg/cache"
	"github.com/matzehuels/readmefeed/pkg/config"
	"github.com/matzehuels/readmefeed/pkg/errors"
)

// Factory builds a source from the run environment and region parameters.
type Factory func(env Env, params Params) (Source, error)

// Kind describes a source type.
type Kind struct {
	Name        string  // registry name, used as region `source`
	Title       string  // human name used in the unavailable placeholder
	Description string  // one line for `readmefeed sources`
	API         string  // upstream host, empty for offline sources
	New         Factory // constructor
}

// Env is everything a source may depend on. Sources never read the process
// environment; credentials and base settings arrive through Config.
type Env struct {
	Config *config.Config
	Cache  cache.Cache
	Now    func() time.Time
	Memo   *Memo
}

// Clock returns the environment clock, defaulting to time.Now.
func (e Env) Clock() func() time.Time {
	if e.Now != nil {
		return e.Now
	}
	return time.Now
}

// Settings returns the configuration, falling back to defaults.
func (e Env) Settings() *config.Config {
	if e.Config != nil {
		return e.Config
	}
	return config.Default()
}

// Client creates a [Client] configured from the environment: the shared
// cache scoped to namespace, the configured TTL, timeout and User-Agent.
// extra headers are added to the defaults.
func (e Env) Client(namespace string, extra map[string]string) *Client {
	cfg := e.Settings()
	headers := map[string]string{"User-Agent": cfg.UserAgent}
	for k, v := range extra {
		headers[k] = v
	}
	return NewClient(e.Cache, namespace+":", cfg.Cache.TTL, headers).WithTimeout(cfg.Timeout)
}

// Registry maps kind names to their descriptions.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*Kind
}

// NewRegistry creates a registry holding kinds. It panics on duplicate
// names, which is a programming error.
func NewRegistry(kinds ...*Kind) *Registry {
	r := &Registry{kinds: make(map[string]*Kind, len(kinds))}
	for _, k := range kinds {
		if err := r.Register(k); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a kind.
func (r *Registry) Register(k *Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.kinds[k.Name]; dup {
		return errors.New(errors.ErrCodeInternal, "source kind %q registered twice", k.Name)
	}
	r.kinds[k.Name] = k
	return nil
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (*Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[name]
	return k, ok
}

// Kinds returns all registered kinds sorted by name.
func (r *Registry) Kinds() []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// New builds a source of the named kind. Unknown kinds yield an
// UNKNOWN_SOURCE error.
func (r *Registry) New(env Env, name string, params Params) (Source, error) {
	k, ok := r.Lookup(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownSource, "unknown source kind %q", name)
	}
	src, err := k.New(env, params)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "source %s", name)
	}
	return src, nil
}
