package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/raster"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) = %v", err)
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvReducedMotion, "")
	t.Setenv(EnvEnableTitleBar, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Preset != "gradient-sunset" || cfg.Cache.Backend != "file" {
		t.Errorf("unexpected defaults: %+v", cfg.Defaults)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !styerr.Is(err, styerr.ErrCodeFileNotFound) {
		t.Fatalf("Load = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[defaults]
preset = "mesh-neon"
palette = "brand"
aspect_ratio = "16:9"
frame_style = "arc"

[defaults.animation]
type = "pulse"
speed = "slow"
enabled = true

[features]
title_bar = true

[[palettes]]
id = "brand"
label = "Brand"
swatches = ["#101010", "#ff0066", "#00ccff"]

[cache]
backend = "redis"
redis_url = "redis://localhost:6379/0"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Preset != "mesh-neon" || cfg.Defaults.AspectRatio != "16:9" {
		t.Errorf("defaults not decoded: %+v", cfg.Defaults)
	}
	if !cfg.Defaults.Animation.Enabled || cfg.Defaults.Animation.Type != "pulse" {
		t.Errorf("animation not decoded: %+v", cfg.Defaults.Animation)
	}
	// Untouched values keep their defaults.
	if cfg.Server.Addr != "127.0.0.1:8080" || cfg.Settings.Backend != "file" {
		t.Errorf("defaults lost: %+v %+v", cfg.Server, cfg.Settings)
	}
	reg, err := cfg.PaletteRegistry()
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := reg.Lookup("brand"); !ok || p.Swatch(1) != "#ff0066" {
		t.Errorf("custom palette = %+v, %v", p, ok)
	}
	if got := cfg.TitleBar(frame.TitleBarMacOS); got != frame.TitleBarMacOS {
		t.Errorf("TitleBar = %s, want macos with the feature on", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
defaults:
  preset: card-elevated
  title_bar: windows
settings:
  backend: mongo
  mongo_uri: mongodb://localhost:27017
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Preset != "card-elevated" || cfg.Settings.Backend != "mongo" {
		t.Errorf("yaml not decoded: %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	for name, content := range map[string]string{
		"config.toml": "[defaults]\nprest = \"x\"\n",
		"config.yml":  "defaults:\n  prest: x\n",
	} {
		_, err := Load(writeFile(t, name, content))
		if !styerr.Is(err, styerr.ErrCodeInvalidConfig) {
			t.Errorf("%s: Load = %v, want INVALID_CONFIG", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"bad preset", func(c *Config) { c.Defaults.Preset = "glass" }, "defaults.preset"},
		{"bad title bar", func(c *Config) { c.Defaults.TitleBar = "linux" }, "defaults.titlebar"},
		{"bad aspect", func(c *Config) { c.Defaults.AspectRatio = "3:2" }, "defaults.aspectratio"},
		{"bad frame style", func(c *Config) { c.Defaults.FrameStyle = "neon" }, "defaults.framestyle"},
		{"bad format", func(c *Config) { c.Defaults.Format = "gif" }, "defaults.format"},
		{"bad theme", func(c *Config) { c.Defaults.CodeTheme = "monokai" }, "defaults.codetheme"},
		{"bad animation", func(c *Config) { c.Defaults.Animation.Type = "spin" }, "defaults.animation.type"},
		{"bad cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, "cache.backend"},
		{"redis without url", func(c *Config) { c.Cache.Backend = "redis" }, "cache.redis_url"},
		{"mongo without uri", func(c *Config) { c.Settings.Backend = "mongo" }, "settings.mongo_uri"},
		{"empty profile", func(c *Config) { c.Settings.Profile = "" }, "settings.profile"},
		{"bad rasterizer", func(c *Config) { c.Export.Rasterizer = "cairo" }, "export.rasterizer"},
		{"bad swatch", func(c *Config) {
			c.Palettes = append(c.Palettes, paletteOf("x", "red"))
		}, "palettes[0].swatches[0]"},
		{"duplicate palette", func(c *Config) {
			c.Palettes = append(c.Palettes, paletteOf("x", "#000000"), paletteOf("x", "#ffffff"))
		}, "duplicate palette"},
		{"unknown default palette", func(c *Config) { c.Defaults.Palette = "nope" }, "defaults.palette"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if !styerr.Is(err, styerr.ErrCodeInvalidConfig) {
				t.Fatalf("Validate = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(styerr.UserMessage(err), tt.wantMsg) {
				t.Errorf("message %q does not mention %q", styerr.UserMessage(err), tt.wantMsg)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvReducedMotion, "true")
	t.Setenv(EnvEnableTitleBar, "1")
	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if !cfg.Defaults.ReducedMotion || !cfg.Features.TitleBar {
		t.Errorf("env not applied: %+v %+v", cfg.Defaults, cfg.Features)
	}

	t.Setenv(EnvReducedMotion, "sometimes")
	if err := ApplyEnv(Default()); !styerr.Is(err, styerr.ErrCodeInvalidConfig) {
		t.Errorf("ApplyEnv = %v, want INVALID_CONFIG", err)
	}
}

func TestTitleBarFeatureOff(t *testing.T) {
	cfg := Default()
	if got := cfg.TitleBar(frame.TitleBarMacOS); got != frame.TitleBarNone {
		t.Errorf("TitleBar = %s, want none with the feature off", got)
	}
}

func TestPreferRSVG(t *testing.T) {
	cfg := Default()
	if got, want := cfg.PreferRSVG(), raster.RSVGAvailable(); got != want {
		t.Errorf("auto: PreferRSVG = %v, want %v (rsvg-convert installed = %v)", got, want, want)
	}

	cfg.Export.Rasterizer = RasterizerBuiltin
	if cfg.PreferRSVG() {
		t.Error("builtin: PreferRSVG = true")
	}
}

func TestDirs(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	if dir, _ := CacheDir(); dir != "/tmp/xdg-cache/screenshot-styler" {
		t.Errorf("CacheDir = %s", dir)
	}
	if p, _ := DefaultPath(); p != "/tmp/xdg-config/screenshot-styler/config.toml" {
		t.Errorf("DefaultPath = %s", p)
	}
}

func paletteOf(id string, swatches ...string) palette.Palette {
	return palette.Palette{ID: id, Swatches: swatches}
}
