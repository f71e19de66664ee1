package sources

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/readmefeed/pkg/cache"
	"github.com/matzehuels/readmefeed/pkg/observability"
)

// Defaults for [NewClient].
const (
	DefaultHTTPTimeout = 20 * time.Second
	DefaultAttempts    = 3
	DefaultRetryDelay  = time.Second

	// DefaultRate allows a short burst, then two requests per second.
	DefaultRate  = rate.Limit(2)
	DefaultBurst = 4
)

// maxBody caps how much of a response is read.
const maxBody = 16 << 20

// Client provides shared HTTP functionality for all source API clients.
// It handles caching, retries, rate limiting and common request headers.
//
// All methods are safe for concurrent use.
type Client struct {
	http       *http.Client
	cache      cache.Cache
	namespace  string
	ttl        time.Duration
	headers    map[string]string
	limiter    *rate.Limiter
	attempts   int
	retryDelay time.Duration
}

// NewClient creates a Client whose cache keys are prefixed with namespace.
// Headers are applied to every request; pass nil if none are needed.
// A nil backend disables caching.
func NewClient(backend cache.Cache, namespace string, ttl time.Duration, headers map[string]string) *Client {
	return &Client{
		http:       NewHTTPClient(DefaultHTTPTimeout),
		cache:      cache.Scoped(backend, namespace),
		namespace:  strings.TrimSuffix(namespace, ":"),
		ttl:        ttl,
		headers:    headers,
		limiter:    rate.NewLimiter(DefaultRate, DefaultBurst),
		attempts:   DefaultAttempts,
		retryDelay: DefaultRetryDelay,
	}
}

// NewHTTPClient creates an HTTP client with the given request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// WithTimeout sets the per-request HTTP timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.http = NewHTTPClient(d)
	}
	return c
}

// WithRetry sets the number of attempts and the initial backoff delay.
func (c *Client) WithRetry(attempts int, delay time.Duration) *Client {
	c.attempts = max(attempts, 1)
	c.retryDelay = delay
	return c
}

// WithRate replaces the request rate limiter. A zero limit disables it.
func (c *Client) WithRate(limit rate.Limit, burst int) *Client {
	if limit == 0 {
		c.limiter = nil
		return c
	}
	c.limiter = rate.NewLimiter(limit, max(burst, 1))
	return c
}

// Namespace returns the cache namespace of this client.
func (c *Client) Namespace() string { return c.namespace }

// Cached retrieves v from the cache or runs fetch and caches the result.
// If refresh is true, the cache is bypassed and fetch is always called.
// fetch must populate v; it is retried while it returns retryable errors.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	hooks := observability.Cache()
	if !refresh {
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			if json.Unmarshal(data, v) == nil {
				hooks.OnCacheHit(ctx, c.namespace)
				return nil
			}
		}
		hooks.OnCacheMiss(ctx, c.namespace)
	}

	if err := cache.Retry(ctx, c.attempts, c.retryDelay, fetch); err != nil {
		return err
	}

	if data, err := json.Marshal(v); err == nil {
		if c.cache.Set(ctx, key, data, c.ttl) == nil {
			hooks.OnCacheSet(ctx, c.namespace, len(data))
		}
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	return c.GetWithHeaders(ctx, rawURL, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with
// defaults. Request-specific headers override client defaults.
func (c *Client) GetWithHeaders(ctx context.Context, rawURL string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, rawURL, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := json.NewDecoder(io.LimitReader(body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", redact(rawURL), err)
	}
	return nil
}

// GetXML performs an HTTP GET request and XML-decodes the response into v.
func (c *Client) GetXML(ctx context.Context, rawURL string, v any) error {
	body, err := c.doRequest(ctx, rawURL, nil)
	if err != nil {
		return err
	}
	defer body.Close()
	if err := xml.NewDecoder(io.LimitReader(body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", redact(rawURL), err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, cache.Retryable(fmt.Errorf("%w: %v", cache.ErrNetwork, redactErr(err)))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", host, err)
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return cache.ErrNotFound
	case code == http.StatusTooManyRequests:
		return cache.Retryable(fmt.Errorf("%w: status %d", cache.ErrRateLimited, code))
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", cache.ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", cache.ErrNetwork, code)
	}
}

// secretParams are query parameters never echoed in errors or logs.
var secretParams = []string{"api_key", "token", "key"}

// redact strips credentials from a URL before it appears in an error.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// redactErr rewrites *url.Error values so the URL they carry is redacted.
func redactErr(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return &url.Error{Op: ue.Op, URL: redact(ue.URL), Err: ue.Err}
	}
	return err
}
