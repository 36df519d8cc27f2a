// Package pipeline runs the screenshot styling flow shared by the CLI and the
// HTTP service.
//
// # Stages
//
//  1. Acquire: load and validate the screenshot (file, reader, clipboard,
//     tweet card or pre-acquired image)
//  2. Compose: resolve preset, palette and frame options into sink options
//  3. Render: produce each requested format (svg, png, png4k, pdf)
//
// Rendered artifacts are cached per format, keyed by the image hash and every
// option that changes the output bytes.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Input{Path: "shot.png"}, pipeline.Options{
//	    Preset:  "gradient-sunset",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younextz/screenshot-styler/pkg/cache"
	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/assets"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
	"github.com/younextz/screenshot-styler/pkg/render/sink"
)

// Output formats.
const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPNG4K = "png4k"
	FormatPDF   = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPNG4K: true,
	FormatPDF:   true,
}

// MIME returns the content type of a format.
func MIME(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG, FormatPNG4K:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Extension returns the file extension of a format, without the dot.
func Extension(format string) string {
	if format == FormatPNG4K {
		return "png"
	}
	return format
}

// Options configures a render. The zero value renders an SVG with the
// default preset and palette.
type Options struct {
	Preset        string            `json:"preset,omitempty"`
	Palette       string            `json:"palette,omitempty"`
	TitleBar      string            `json:"title_bar,omitempty"`
	AspectRatio   string            `json:"aspect_ratio,omitempty"`
	FrameStyle    string            `json:"frame_style,omitempty"`
	Animation     *animation.Config `json:"animation,omitempty"`
	ReducedMotion bool              `json:"reduced_motion,omitempty"`
	Formats       []string          `json:"formats,omitempty"`
	Refresh       bool              `json:"refresh,omitempty"`

	// PreferRSVG renders PNG and 4K PNG through rsvg-convert when installed.
	PreferRSVG bool `json:"-"`

	// Runtime collaborators (not serialized)
	Logger   *log.Logger       `json:"-"`
	Palettes *palette.Registry `json:"-"`
	Assets   *assets.Provider  `json:"-"`
	resolved *resolvedOptions  `json:"-"`
}

type resolvedOptions struct {
	preset      preset.ID
	palette     palette.Palette
	titleBar    frame.TitleBar
	aspectRatio render.AspectRatio
	frameStyle  frame.StyleID
}

// Result holds the outputs of a run.
type Result struct {
	// Artifacts maps each requested format to its bytes.
	Artifacts map[string][]byte
	Geometry  sink.Geometry
	ImageHash string
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds stage timings.
type Stats struct {
	ImageWidth  int
	ImageHeight int
	ImageSize   int64
	AcquireTime time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo records which formats came from the cache.
type CacheInfo struct {
	Hits      []string
	RenderHit bool // every format was cached
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return styerr.New(styerr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, png4k, pdf)", format)
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated list, dropping blanks and duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// ValidateAndSetDefaults fills empty fields with defaults and rejects unknown
// ids. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.resolved != nil {
		return nil
	}
	if o.Preset == "" {
		o.Preset = string(preset.DefaultID)
	}
	if o.Palette == "" {
		o.Palette = palette.DefaultID
	}
	if o.TitleBar == "" {
		o.TitleBar = string(frame.TitleBarNone)
	}
	if o.AspectRatio == "" {
		o.AspectRatio = string(render.DefaultAspectRatio)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	var r resolvedOptions
	var ok bool
	if r.preset, ok = preset.Parse(o.Preset); !ok {
		return styerr.Wrap(styerr.ErrCodeInvalidPreset, preset.Validate(o.Preset), "unknown preset %q", o.Preset)
	}
	if r.palette, ok = o.lookupPalette(o.Palette); !ok {
		return styerr.New(styerr.ErrCodeInvalidPalette, "unknown palette %q", o.Palette)
	}
	if r.titleBar, ok = frame.ParseTitleBar(o.TitleBar); !ok {
		return styerr.New(styerr.ErrCodeInvalidTitleBar, "invalid title bar: %q (must be one of: none, macos, windows)", o.TitleBar)
	}
	if r.aspectRatio, ok = render.ParseAspectRatio(o.AspectRatio); !ok {
		return styerr.Wrap(styerr.ErrCodeInvalidAspectRatio, render.ValidateAspectRatio(o.AspectRatio), "unknown aspect ratio %q", o.AspectRatio)
	}
	if o.FrameStyle != "" {
		if r.frameStyle, ok = frame.ParseStyle(o.FrameStyle); !ok {
			return styerr.New(styerr.ErrCodeInvalidFrameStyle, "unknown frame style %q", o.FrameStyle)
		}
	}
	if o.Animation != nil {
		if err := o.Animation.Validate(); err != nil {
			return styerr.Wrap(styerr.ErrCodeInvalidAnimation, err, "invalid animation")
		}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.resolved = &r
	return nil
}

func (o *Options) lookupPalette(id string) (palette.Palette, bool) {
	if o.Palettes != nil {
		return o.Palettes.Lookup(id)
	}
	return palette.Lookup(id)
}

// SinkOptions returns the composer input for img. ValidateAndSetDefaults must
// have succeeded.
func (o *Options) SinkOptions(dataURL string, width, height int) sink.Options {
	r := o.resolved
	return sink.Options{
		Preset:      r.preset,
		Palette:     r.palette,
		TitleBar:    r.titleBar,
		AspectRatio: r.aspectRatio,
		ImageData:   dataURL,
		ImageWidth:  width,
		ImageHeight: height,
		Animation:   o.Animation,
	}
}

// SVGOptions returns the composer options derived from o.
func (o *Options) SVGOptions() []sink.SVGOption {
	var opts []sink.SVGOption
	if o.Assets != nil {
		opts = append(opts, sink.WithAssets(o.Assets))
	}
	if o.ReducedMotion {
		opts = append(opts, sink.WithReducedMotion(true))
	}
	if o.resolved != nil && o.resolved.frameStyle != "" {
		opts = append(opts, sink.WithFrameStyle(o.resolved.frameStyle))
	}
	return opts
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:        format,
		Preset:        o.Preset,
		Palette:       o.Palette,
		TitleBar:      o.TitleBar,
		AspectRatio:   o.AspectRatio,
		FrameStyle:    o.FrameStyle,
		ReducedMotion: o.ReducedMotion,
	}
	if o.resolved != nil {
		k.Swatches = o.resolved.palette.Swatches
	}
	if a := o.Animation; a != nil && a.Enabled {
		k.Animation = string(a.Type) + "/" + string(a.Speed)
	}
	if id := preset.ID(o.Preset); id.IsPicture() {
		k.Background = cache.Hash([]byte(o.Assets.Href(id)))
	}
	return k
}
