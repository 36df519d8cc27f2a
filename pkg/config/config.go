// Package config loads the styler configuration file.
//
// The file lives at $XDG_CONFIG_HOME/screenshot-styler/config.toml (falling
// back to ~/.config) and may also be YAML when its extension is .yaml or
// .yml. Every field is optional: values missing from the file keep their
// defaults, environment overrides are applied last, and the result is
// validated before it is returned.
package config

import (
	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/code"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
	"github.com/younextz/screenshot-styler/pkg/render/raster"
)

// AppName names the config and cache directories.
const AppName = "screenshot-styler"

// Config is the whole configuration file.
type Config struct {
	Defaults Defaults          `toml:"defaults" yaml:"defaults"`
	Features Features          `toml:"features" yaml:"features"`
	Palettes []palette.Palette `toml:"palettes" yaml:"palettes" validate:"dive"`
	Cache    Cache             `toml:"cache" yaml:"cache"`
	Settings Settings          `toml:"settings" yaml:"settings"`
	Server   Server            `toml:"server" yaml:"server"`
	Assets   Assets            `toml:"assets" yaml:"assets"`
	Export   Export            `toml:"export" yaml:"export"`
}

// Defaults seed every render that does not set a value explicitly.
type Defaults struct {
	Preset        string           `toml:"preset" yaml:"preset" validate:"omitempty,preset"`
	Palette       string           `toml:"palette" yaml:"palette"`
	TitleBar      string           `toml:"title_bar" yaml:"title_bar" validate:"omitempty,title_bar"`
	AspectRatio   string           `toml:"aspect_ratio" yaml:"aspect_ratio" validate:"omitempty,aspect_ratio"`
	FrameStyle    string           `toml:"frame_style" yaml:"frame_style" validate:"omitempty,frame_style"`
	Format        string           `toml:"format" yaml:"format" validate:"omitempty,oneof=svg png png4k pdf"`
	Animation     animation.Config `toml:"animation" yaml:"animation"`
	ReducedMotion bool             `toml:"reduced_motion" yaml:"reduced_motion"`
	CodeTheme     string           `toml:"code_theme" yaml:"code_theme" validate:"omitempty,code_theme"`
	CodeLanguage  string           `toml:"code_language" yaml:"code_language" validate:"omitempty,code_language"`
}

// Features toggles optional behaviour.
type Features struct {
	// TitleBar exposes the title bar option. When false every render uses
	// title bar "none".
	TitleBar bool `toml:"title_bar" yaml:"title_bar"`
}

// Cache selects where rendered artifacts and HTTP responses are kept.
type Cache struct {
	Backend  string `toml:"backend" yaml:"backend" validate:"oneof=file redis none"`
	Dir      string `toml:"dir" yaml:"dir"`
	RedisURL string `toml:"redis_url" yaml:"redis_url" validate:"omitempty,url"`
	Prefix   string `toml:"prefix" yaml:"prefix"`
}

// Settings selects where remembered UI choices are stored.
type Settings struct {
	Backend       string `toml:"backend" yaml:"backend" validate:"oneof=file redis mongo"`
	Profile       string `toml:"profile" yaml:"profile" validate:"required,max=64"`
	Path          string `toml:"path" yaml:"path"`
	RedisURL      string `toml:"redis_url" yaml:"redis_url" validate:"omitempty,url"`
	MongoURI      string `toml:"mongo_uri" yaml:"mongo_uri" validate:"omitempty,url"`
	MongoDatabase string `toml:"mongo_database" yaml:"mongo_database"`
}

// Server configures `styler serve`.
type Server struct {
	Addr          string `toml:"addr" yaml:"addr" validate:"required"`
	MaxUploadSize int64  `toml:"max_upload_size" yaml:"max_upload_size" validate:"min=1"`
}

// Assets locates the picture backgrounds. At most one of Dir and BaseURL is
// used; Dir wins.
type Assets struct {
	Dir     string `toml:"dir" yaml:"dir"`
	BaseURL string `toml:"base_url" yaml:"base_url" validate:"omitempty,url"`
}

// Export configures where downloads are written and how PNGs are drawn.
type Export struct {
	Dir string `toml:"dir" yaml:"dir"`
	// Rasterizer is "auto" (rsvg-convert when installed), "rsvg" or
	// "builtin" (always the in-process renderer).
	Rasterizer string `toml:"rasterizer" yaml:"rasterizer" validate:"oneof=auto rsvg builtin"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			Preset:      string(preset.DefaultID),
			Palette:     palette.DefaultID,
			TitleBar:    string(frame.TitleBarNone),
			AspectRatio: string(render.DefaultAspectRatio),
			FrameStyle:  string(frame.StyleNone),
			Format:      "svg",
			Animation:   animation.DefaultConfig(animation.Flow, false),
			CodeTheme:   code.DefaultThemeID,
		},
		Cache:    Cache{Backend: "file", Prefix: AppName + ":"},
		Settings: Settings{Backend: "file", Profile: "default", MongoDatabase: "screenshot_styler"},
		Server:   Server{Addr: "127.0.0.1:8080", MaxUploadSize: 10 << 20},
		Export:   Export{Dir: ".", Rasterizer: RasterizerAuto},
	}
}

// PaletteRegistry returns the built-in palettes plus the configured ones.
func (c *Config) PaletteRegistry() (*palette.Registry, error) {
	return palette.NewRegistry(c.Palettes...)
}

// Rasterizer choices.
const (
	RasterizerAuto    = "auto"
	RasterizerRSVG    = "rsvg"
	RasterizerBuiltin = "builtin"
)

// PreferRSVG reports whether PNG export should go through rsvg-convert.
// Without the binary the in-process renderer is used whatever the setting.
func (c *Config) PreferRSVG() bool {
	if c.Export.Rasterizer == RasterizerBuiltin {
		return false
	}
	return raster.RSVGAvailable()
}

// TitleBar returns the title bar to render given the feature flag.
func (c *Config) TitleBar(requested frame.TitleBar) frame.TitleBar {
	if !c.Features.TitleBar {
		return frame.TitleBarNone
	}
	return requested
}
