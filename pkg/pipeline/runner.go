package pipeline

import (
	"context"
	"encoding/json"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younextz/screenshot-styler/pkg/acquire"
	"github.com/younextz/screenshot-styler/pkg/cache"
	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/integrations/twitter"
	"github.com/younextz/screenshot-styler/pkg/observability"
	"github.com/younextz/screenshot-styler/pkg/render/code"
	"github.com/younextz/screenshot-styler/pkg/render/sink"
	"github.com/younextz/screenshot-styler/pkg/render/tweet"
)

// Runner executes the pipeline with artifact caching. It holds no per-run
// state, so one Runner serves concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching; a nil keyer uses
// the default key layout.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute acquires the screenshot, composes it and renders every format in
// opts.Formats.
func (r *Runner) Execute(ctx context.Context, in Input, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	result := &Result{Artifacts: make(map[string][]byte, len(opts.Formats))}

	// Stage 1: Acquire
	source := in.Source()
	start := time.Now()
	hooks.OnAcquireStart(ctx, source)
	img, err := Acquire(ctx, in)
	var size int
	if img != nil {
		size = int(img.Size)
	}
	hooks.OnAcquireComplete(ctx, source, size, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	result.Stats.AcquireTime = time.Since(start)
	result.Stats.ImageWidth, result.Stats.ImageHeight, result.Stats.ImageSize = img.Width, img.Height, img.Size
	result.ImageHash = cache.Hash(img.Data)

	r.Logger.Debug("acquired image",
		"source", source,
		"width", img.Width,
		"height", img.Height,
		"bytes", img.Size)

	// Stage 2: Compose
	start = time.Now()
	hooks.OnComposeStart(ctx, opts.Preset)
	so := opts.SinkOptions(img.DataURL, img.Width, img.Height)
	result.Geometry = sink.Layout(so)
	result.Stats.ComposeTime = time.Since(start)
	hooks.OnComposeComplete(ctx, opts.Preset, result.Stats.ComposeTime, nil)

	// Stage 3: Render
	start = time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	var shot image.Image
	err = r.renderAll(ctx, result, opts, func(format string) ([]byte, error) {
		if shot == nil && format != FormatSVG && format != FormatPDF {
			m, err := img.Decode()
			if err != nil {
				return nil, err
			}
			shot = m
		}
		return Render(ctx, format, so, shot, &opts)
	})
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered screenshot",
		"preset", opts.Preset,
		"palette", opts.Palette,
		"width", result.Geometry.Width,
		"height", result.Geometry.Height,
		"formats", opts.Formats,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// renderAll fills result.Artifacts, serving each format from the cache when
// possible.
func (r *Runner) renderAll(ctx context.Context, result *Result, opts Options, produce func(string) ([]byte, error)) error {
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(result.ImageHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.Artifacts[format] = data
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		data, err := produce(format)
		if err != nil {
			return err
		}
		result.Artifacts[format] = data
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	result.CacheInfo.RenderHit = len(result.CacheInfo.Hits) == len(opts.Formats)
	return nil
}

// ExecuteTweet fetches the tweet at url, draws it as a card width pixels
// wide and styles the card like any screenshot.
func (r *Runner) ExecuteTweet(ctx context.Context, client *twitter.Client, url string, width int, opts Options) (*Result, error) {
	t, err := client.Fetch(ctx, url, opts.Refresh)
	if err != nil {
		return nil, err
	}
	card, err := tweet.Render(t, width)
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeRender, err, "draw tweet card")
	}
	img, err := acquire.FromBytes(card.PNG, "tweet.png")
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("drew tweet card", "author", t.Author, "width", card.Width, "height", card.Height)
	return r.Execute(ctx, Input{Image: img}, opts)
}

// CodeInput is a snippet and its highlighting options.
type CodeInput struct {
	Code      string  `json:"code"`
	Theme     string  `json:"theme,omitempty"`
	Language  string  `json:"language,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`
	EmbedFont bool    `json:"embed_font,omitempty"`
}

// ExecuteCode renders a highlighted snippet on a code background. Only
// opts.Preset, Palette, AspectRatio, Formats and Refresh apply.
func (r *Runner) ExecuteCode(ctx context.Context, in CodeInput, opts Options) (*Result, error) {
	if opts.Preset == "" {
		opts.Preset = code.DefaultPreset
	}
	codePreset := opts.Preset
	opts.Preset = ""
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	opts.Preset = codePreset
	if err := code.ValidatePreset(codePreset); err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidPreset, err, "unknown code preset %q", codePreset)
	}
	if in.Theme == "" {
		in.Theme = code.DefaultThemeID
	}
	if err := code.ValidateTheme(in.Theme); err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidTheme, err, "unknown theme %q", in.Theme)
	}
	if in.Language == "" {
		in.Language = code.DefaultLanguageID
	}
	if err := code.ValidateLanguage(in.Language); err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidLanguage, err, "unknown language %q", in.Language)
	}
	if in.Code == "" {
		in.Code = code.LanguageOrDefault(in.Language).Sample
	}

	co := code.Options{
		Preset:      codePreset,
		Palette:     opts.resolved.palette,
		AspectRatio: opts.resolved.aspectRatio,
		Code:        in.Code,
		Theme:       in.Theme,
		Language:    in.Language,
		FontSize:    in.FontSize,
		EmbedFont:   in.EmbedFont,
	}
	size := code.CanvasSize(co)
	result := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		ImageHash: hashCode(in),
		Geometry:  sink.Geometry{Width: size.Width, Height: size.Height},
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	err := r.renderAll(ctx, result, opts, func(format string) ([]byte, error) {
		return RenderCode(ctx, format, co)
	})
	result.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered code",
		"preset", codePreset,
		"theme", in.Theme,
		"language", in.Language,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return result, nil
}

func hashCode(in CodeInput) string {
	data, _ := json.Marshal(in)
	return cache.Hash(data)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
