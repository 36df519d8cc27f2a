package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to Logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// Install registers h for pipeline, cache and HTTP events.
func (h LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h LogHooks) done(msg string, duration time.Duration, err error, kv ...any) {
	kv = append(kv, "took", duration.Round(time.Millisecond))
	if err != nil {
		h.Logger.Debug(msg+" failed", append(kv, "err", err)...)
		return
	}
	h.Logger.Debug(msg, kv...)
}

func (h LogHooks) OnAcquireStart(_ context.Context, source string) {
	h.Logger.Debug("acquiring image", "source", source)
}

func (h LogHooks) OnAcquireComplete(_ context.Context, source string, size int, d time.Duration, err error) {
	h.done("acquired image", d, err, "source", source, "bytes", size)
}

func (h LogHooks) OnComposeStart(_ context.Context, preset string) {
	h.Logger.Debug("composing", "preset", preset)
}

func (h LogHooks) OnComposeComplete(_ context.Context, preset string, d time.Duration, err error) {
	h.done("composed", d, err, "preset", preset)
}

func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("rendering", "formats", formats)
}

func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("rendered", d, err, "formats", formats)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.Logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.Logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.Logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
