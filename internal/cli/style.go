package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younextz/screenshot-styler/pkg/export"
	"github.com/younextz/screenshot-styler/pkg/pipeline"
	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/settings"
)

// styleFlags holds the flags shared by every rendering command. Empty
// values fall back to remembered settings, then to the config defaults.
type styleFlags struct {
	preset        string
	palette       string
	titleBar      string
	aspect        string
	frameStyle    string
	animate       bool
	animation     string
	speed         string
	reducedMotion bool
	formats       string
	output        string
	copy          bool
	noCache       bool
	refresh       bool
	remember      bool
}

func (f *styleFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.preset, "preset", "p", "", "background preset (see `styler presets`)")
	fl.StringVar(&f.palette, "palette", "", "colour palette (see `styler palettes`)")
	fl.StringVar(&f.titleBar, "title-bar", "", "browser title bar: none, macos, windows")
	fl.StringVarP(&f.aspect, "aspect", "a", "", "aspect ratio: auto, 1:1, 16:9, 4:3, 9:16, 1200x630")
	fl.StringVar(&f.frameStyle, "frame-style", "", "frame style (see `styler frames`)")
	fl.BoolVar(&f.animate, "animate", false, "animate the background (SVG only)")
	fl.StringVar(&f.animation, "animation", "", "animation type: flow, pulse, rotate, wave, shimmer")
	fl.StringVar(&f.speed, "speed", "", "animation speed: slow, medium, fast")
	fl.BoolVar(&f.reducedMotion, "reduced-motion", false, "never animate, even with --animate")
	fl.StringVarP(&f.formats, "format", "f", "", "output format(s): svg, png, png4k, pdf (comma-separated)")
	fl.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	fl.BoolVarP(&f.copy, "copy", "c", false, "copy to the clipboard, saving a file when that fails")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	fl.BoolVar(&f.refresh, "refresh", false, "re-render even when a cached artifact exists")
	fl.BoolVar(&f.remember, "remember", false, "remember these choices for later runs")
}

// options resolves f against remembered settings and the config defaults.
func (c *CLI) options(ctx context.Context, f *styleFlags, e *env) (pipeline.Options, error) {
	d := c.Config.Defaults
	saved := c.loadSettings(ctx)

	pick := func(flag, remembered, def string) string {
		switch {
		case flag != "":
			return flag
		case remembered != "":
			return remembered
		}
		return def
	}

	titleBar := pick(f.titleBar, saved.TitleBar, d.TitleBar)
	if tb := c.Config.TitleBar(frame.TitleBar(titleBar)); string(tb) != titleBar {
		if f.titleBar != "" {
			loggerFromContext(ctx).Warn("title bars are disabled; enable features.title_bar in the config", "requested", f.titleBar)
		}
		titleBar = string(tb)
	}

	formats := pipeline.ParseFormats(f.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return pipeline.Options{}, err
	}
	if len(formats) == 0 {
		formats = []string{d.Format}
	}

	opts := pipeline.Options{
		Preset:        pick(f.preset, saved.PresetID, d.Preset),
		Palette:       pick(f.palette, saved.PaletteID, d.Palette),
		TitleBar:      titleBar,
		AspectRatio:   pick(f.aspect, saved.AspectRatio, d.AspectRatio),
		FrameStyle:    pick(f.frameStyle, saved.FrameStyle, d.FrameStyle),
		ReducedMotion: f.reducedMotion || d.ReducedMotion,
		Formats:       formats,
		Refresh:       f.refresh,
		PreferRSVG:    c.Config.PreferRSVG(),
		Logger:        c.Logger,
		Palettes:      e.palettes,
		Assets:        e.assets,
	}

	anim := d.Animation
	if saved.AnimationsEnabled != nil {
		anim.Enabled = *saved.AnimationsEnabled
	}
	if f.animate {
		anim.Enabled = true
	}
	if f.animation != "" {
		anim = animation.DefaultConfig(animation.Type(f.animation), true)
	}
	if f.speed != "" {
		anim.Speed = animation.Speed(f.speed)
	}
	if anim.Enabled {
		opts.Animation = &anim
	}
	return opts, nil
}

// loadSettings returns the remembered choices, or none when the store is
// unavailable.
func (c *CLI) loadSettings(ctx context.Context) settings.Settings {
	store, err := settings.Open(ctx, c.Config.Settings, c.Config.Cache.RedisURL)
	if err != nil {
		c.Logger.Debug("settings unavailable", "err", err)
		return settings.Settings{}
	}
	defer store.Close()
	s, err := store.Load(ctx)
	if err != nil {
		c.Logger.Debug("settings unavailable", "err", err)
		return settings.Settings{}
	}
	return s.Sanitize()
}

// remember saves the choices of a successful render.
func (c *CLI) remember(ctx context.Context, opts pipeline.Options) error {
	store, err := settings.Open(ctx, c.Config.Settings, c.Config.Cache.RedisURL)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(ctx, settings.Settings{
		PresetID:          opts.Preset,
		PaletteID:         opts.Palette,
		TitleBar:          opts.TitleBar,
		AspectRatio:       opts.AspectRatio,
		FrameStyle:        opts.FrameStyle,
		AnimationsEnabled: settings.Bool(opts.Animation != nil && opts.Animation.Enabled),
	})
}

// deliver writes or copies every artifact of res.
func (c *CLI) deliver(ctx context.Context, f *styleFlags, res *pipeline.Result, formats []string) error {
	if f.copy {
		if len(formats) != 1 {
			return fmt.Errorf("--copy needs exactly one format, got %d", len(formats))
		}
		format := formats[0]
		out, err := export.CopyOrDownload(ctx, res.Artifacts[format], pipeline.MIME(format), c.Config.Export.Dir)
		if err != nil {
			return err
		}
		if out.Result == export.Copied {
			printSuccess("Copied %s to clipboard", strings.ToUpper(format))
			return nil
		}
		printWarning("Clipboard unavailable, saved instead")
		printFile(out.Path)
		return nil
	}

	paths := outputPaths(f.output, c.Config.Export.Dir, formats)
	for _, format := range formats {
		if err := export.WriteFile(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
		printFile(paths[format])
	}
	return nil
}

// outputPaths picks a file per format. A single format writes to output as
// given; several formats share output's base name with their own
// extensions. Without output, files get fresh names in dir.
func outputPaths(output, dir string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output == "" {
		for _, f := range formats {
			paths[f] = filepath.Join(dir, export.FileName(pipeline.MIME(f)))
		}
		return paths
	}
	if len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	for _, f := range formats {
		suffix := "." + pipeline.Extension(f)
		if f == pipeline.FormatPNG4K {
			suffix = "-4k" + suffix
		}
		paths[f] = base + suffix
	}
	return paths
}
