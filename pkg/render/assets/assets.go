// Package assets resolves the raster images behind the picture background
// presets.
//
// A [Provider] loads every picture once through a [Loader], converts it to a
// data URL, and serves it read-only afterwards. Until a picture is loaded,
// [Provider.Href] returns its static relative URL so documents still
// reference something a browser can resolve.
package assets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gabriel-vasile/mimetype"

	"github.com/younextz/screenshot-styler/pkg/cache"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

var staticURLs = map[preset.ID]string{
	preset.PictureDark:  "/backgrounds/bg-dark-bubbles.png",
	preset.PictureLight: "/backgrounds/bg-light-bubbles.png",
}

// StaticURL returns the relative URL of a picture preset's image.
func StaticURL(id preset.ID) (string, bool) {
	u, ok := staticURLs[id]
	return u, ok
}

// IDs lists the presets backed by an image, sorted.
func IDs() []preset.ID {
	ids := make([]preset.ID, 0, len(staticURLs))
	for id := range staticURLs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Loader fetches the bytes behind a static URL such as
// "/backgrounds/bg-dark-bubbles.png".
type Loader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// Provider caches picture backgrounds as data URLs. It is safe for
// concurrent use.
type Provider struct {
	loader Loader
	store  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger

	once    sync.Once
	loadErr error

	mu   sync.RWMutex
	urls map[preset.ID]string
}

// Option configures a Provider.
type Option func(*Provider)

// WithCache persists loaded images so later processes skip the loader.
func WithCache(c cache.Cache, k cache.Keyer) Option {
	return func(p *Provider) {
		p.store = c
		if k != nil {
			p.keyer = k
		}
	}
}

// WithLogger sets the logger used for load failures.
func WithLogger(l *log.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// NewProvider returns a provider reading through loader. A nil loader yields
// a provider that only ever serves static URLs.
func NewProvider(loader Loader, opts ...Option) *Provider {
	p := &Provider{
		loader: loader,
		store:  cache.NewNullCache(),
		keyer:  cache.NewDefaultKeyer(),
		logger: log.Default(),
		urls:   make(map[preset.ID]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Preload loads every picture. Only the first call does work; later calls
// return its result. A failed picture keeps its static URL and its error is
// included in the returned error.
func (p *Provider) Preload(ctx context.Context) error {
	p.once.Do(func() {
		p.loadErr = p.preload(ctx)
	})
	return p.loadErr
}

func (p *Provider) preload(ctx context.Context) error {
	if p.loader == nil {
		return nil
	}
	var errs []error
	for _, id := range IDs() {
		if err := ctx.Err(); err != nil {
			return err
		}
		u, err := p.load(ctx, id)
		if err != nil {
			p.logger.Warn("background image unavailable", "preset", id, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		p.mu.Lock()
		p.urls[id] = u
		p.mu.Unlock()
	}
	return errors.Join(errs...)
}

func (p *Provider) load(ctx context.Context, id preset.ID) (string, error) {
	key := p.keyer.AssetKey(string(id))
	if data, ok, _ := p.store.Get(ctx, key); ok {
		return string(data), nil
	}
	raw, err := p.loader.Load(ctx, staticURLs[id])
	if err != nil {
		return "", err
	}
	u, err := DataURL(raw)
	if err != nil {
		return "", err
	}
	_ = p.store.Set(ctx, key, []byte(u), cache.TTLAsset)
	return u, nil
}

// Get returns the data URL for id once it has been loaded.
func (p *Provider) Get(id preset.ID) (string, bool) {
	if p == nil {
		return "", false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	u, ok := p.urls[id]
	return u, ok
}

// Has reports whether id has a loaded image.
func (p *Provider) Has(id preset.ID) bool {
	_, ok := p.Get(id)
	return ok
}

// Href returns the loaded data URL, else the static URL, else "".
func (p *Provider) Href(id preset.ID) string {
	if u, ok := p.Get(id); ok {
		return u
	}
	u, _ := StaticURL(id)
	return u
}

// DataURL base64-encodes an image, sniffing its MIME type.
func DataURL(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image")
	}
	mt := mimetype.Detect(data)
	if !mt.Is("image/png") && !mt.Is("image/jpeg") && !mt.Is("image/webp") && !mt.Is("image/svg+xml") {
		return "", fmt.Errorf("unsupported background type %s", mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURL reverses [DataURL], returning the raw bytes and MIME type.
func DecodeDataURL(u string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(u, "data:")
	if !ok {
		return nil, "", errors.New("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", errors.New("data URL has no payload")
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, "", fmt.Errorf("data URL is not base64: %s", meta)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode data URL: %w", err)
	}
	return data, mime, nil
}
