// Package cli implements the styler command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younextz/screenshot-styler/pkg/buildinfo"
	"github.com/younextz/screenshot-styler/pkg/cache"
	"github.com/younextz/screenshot-styler/pkg/config"
	"github.com/younextz/screenshot-styler/pkg/integrations"
	"github.com/younextz/screenshot-styler/pkg/observability"
	"github.com/younextz/screenshot-styler/pkg/pipeline"
	"github.com/younextz/screenshot-styler/pkg/render/assets"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level. At debug level pipeline, cache and
// HTTP events are logged too.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.LogHooks{Logger: c.Logger}.Install()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "styler",
		Short: "Styler turns screenshots into presentation-ready images",
		Long: `Styler places a screenshot, code snippet or tweet on a styled background:
gradients, meshes, patterns, browser and device frames, with optional SVG
animation. Output is SVG, PNG, 4K PNG or PDF.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+appName+"/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.clipboardCommand())
	root.AddCommand(c.codeCommand())
	root.AddCommand(c.tweetCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.palettesCommand())
	root.AddCommand(c.framesCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// env bundles what a rendering command needs. Close releases the cache.
type env struct {
	runner   *pipeline.Runner
	cache    cache.Cache
	palettes *palette.Registry
	assets   *assets.Provider
}

func (e *env) Close() error { return e.runner.Close() }

// newEnv builds the runner, palette registry and picture loader from the
// loaded configuration.
func (c *CLI) newEnv(ctx context.Context, noCache bool) (*env, error) {
	palettes, err := c.Config.PaletteRegistry()
	if err != nil {
		return nil, err
	}
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	opts := []assets.Option{assets.WithCache(ch, nil), assets.WithLogger(c.Logger)}
	return &env{
		runner:   pipeline.NewRunner(ch, nil, c.Logger),
		cache:    ch,
		palettes: palettes,
		assets:   assets.NewProvider(c.assetLoader(ch), opts...),
	}, nil
}

// newCache opens the configured cache backend. A file cache whose directory
// cannot be resolved degrades to no caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || cfg.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	if cfg.Backend == "redis" {
		return cache.NewRedisCache(ctx, cfg.RedisURL, cfg.Prefix)
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return config.CacheDir()
}

// assetLoader returns the loader for picture backgrounds, or nil when none
// is configured and pictures keep their static URLs.
func (c *CLI) assetLoader(ch cache.Cache) assets.Loader {
	a := c.Config.Assets
	switch {
	case a.Dir != "":
		return assets.DirLoader{Root: a.Dir}
	case a.BaseURL != "":
		return assets.HTTPLoader{
			BaseURL: a.BaseURL,
			Client:  integrations.NewClient(ch, "assets", cache.TTLAsset, nil),
		}
	}
	return nil
}
