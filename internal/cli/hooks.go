package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/readmefeed/pkg/observability"
)

// logHooks reports pipeline, HTTP and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func registerHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetHTTPHooks(h)
	observability.SetCacheHooks(h)
}

func (h *logHooks) OnRunStart(_ context.Context, runID, document string, regions int) {
	h.logger.Debug("run started", "run", runID, "document", document, "regions", regions)
}

func (h *logHooks) OnRunComplete(_ context.Context, runID string, d time.Duration, err error) {
	h.logger.Debug("run finished", "run", runID, "duration", d, "err", err)
}

func (h *logHooks) OnStepStart(context.Context, string, string) {}

func (h *logHooks) OnStepComplete(_ context.Context, region, outcome string, d time.Duration, err error) {
	h.logger.Debug("step finished", "region", region, "outcome", outcome, "duration", d.Round(time.Millisecond), "err", err)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, _, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "host", host, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, _, host, path string, err error) {
	h.logger.Debug("http error", "host", host, "path", path, "err", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, ns string) {
	h.logger.Debug("cache hit", "namespace", ns)
}

func (h *logHooks) OnCacheMiss(_ context.Context, ns string) {
	h.logger.Debug("cache miss", "namespace", ns)
}

func (h *logHooks) OnCacheSet(_ context.Context, ns string, size int) {
	h.logger.Debug("cache set", "namespace", ns, "bytes", size)
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.HTTPHooks     = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
)
