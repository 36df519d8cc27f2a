package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/younextz/screenshot-styler/pkg/config"
	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
	"github.com/younextz/screenshot-styler/pkg/render/raster"
	"github.com/younextz/screenshot-styler/pkg/settings"
)

// newTestCLI returns a CLI whose cache, settings and exports live in a
// temp dir.
func newTestCLI(t *testing.T) (*CLI, *env) {
	t.Helper()
	dir := t.TempDir()
	c := New(io.Discard, LogInfo)
	c.Config.Cache.Dir = filepath.Join(dir, "cache")
	c.Config.Settings.Path = filepath.Join(dir, "settings")
	c.Config.Export.Dir = filepath.Join(dir, "exports")
	reg, err := c.Config.PaletteRegistry()
	if err != nil {
		t.Fatal(err)
	}
	return c, &env{palettes: reg}
}

// writeConfig writes a config file rooted at dir and returns its path.
func writeConfig(t *testing.T, dir, extra string) string {
	t.Helper()
	cfg := `[cache]
dir = "` + filepath.ToSlash(filepath.Join(dir, "cache")) + `"

[settings]
path = "` + filepath.ToSlash(filepath.Join(dir, "settings")) + `"
profile = "test"

[export]
dir = "` + filepath.ToSlash(filepath.Join(dir, "exports")) + `"
` + extra
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestOptionsDefaults(t *testing.T) {
	c, e := newTestCLI(t)

	opts, err := c.options(context.Background(), &styleFlags{}, e)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Preset != string(preset.DefaultID) || opts.Palette != "sunset-warm" {
		t.Errorf("preset/palette = %q/%q", opts.Preset, opts.Palette)
	}
	if opts.TitleBar != "none" || opts.AspectRatio != "auto" || opts.FrameStyle != "none" {
		t.Errorf("title bar/aspect/frame = %q/%q/%q", opts.TitleBar, opts.AspectRatio, opts.FrameStyle)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "svg" {
		t.Errorf("formats = %v", opts.Formats)
	}
	if opts.Animation != nil {
		t.Errorf("animation = %+v, want nil", opts.Animation)
	}
	if opts.Palettes != e.palettes {
		t.Error("palette registry not passed through")
	}
}

func TestOptionsRasterizer(t *testing.T) {
	c, e := newTestCLI(t)

	opts, err := c.options(context.Background(), &styleFlags{}, e)
	if err != nil {
		t.Fatal(err)
	}
	if opts.PreferRSVG != raster.RSVGAvailable() {
		t.Errorf("auto rasterizer: PreferRSVG = %v, rsvg-convert installed = %v", opts.PreferRSVG, raster.RSVGAvailable())
	}

	c.Config.Export.Rasterizer = config.RasterizerBuiltin
	opts, err = c.options(context.Background(), &styleFlags{}, e)
	if err != nil {
		t.Fatal(err)
	}
	if opts.PreferRSVG {
		t.Error("builtin rasterizer should not prefer rsvg-convert")
	}
}

func TestOptionsPrecedence(t *testing.T) {
	c, e := newTestCLI(t)
	ctx := context.Background()

	store, err := settings.Open(ctx, c.Config.Settings, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, settings.Settings{PresetID: "mesh-neon", PaletteID: "ocean-blue", AnimationsEnabled: settings.Bool(true)}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	opts, err := c.options(ctx, &styleFlags{preset: "solid-dark"}, e)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Preset != "solid-dark" {
		t.Errorf("flag should win: preset = %q", opts.Preset)
	}
	if opts.Palette != "ocean-blue" {
		t.Errorf("remembered palette should win over config: %q", opts.Palette)
	}
	if opts.Animation == nil || !opts.Animation.Enabled {
		t.Errorf("remembered animations not applied: %+v", opts.Animation)
	}
}

func TestOptionsTitleBarFeature(t *testing.T) {
	c, e := newTestCLI(t)
	f := &styleFlags{preset: "browser-macos", titleBar: "macos"}

	opts, err := c.options(context.Background(), f, e)
	if err != nil {
		t.Fatal(err)
	}
	if opts.TitleBar != "none" {
		t.Errorf("feature off: title bar = %q, want none", opts.TitleBar)
	}

	c.Config.Features.TitleBar = true
	opts, err = c.options(context.Background(), f, e)
	if err != nil {
		t.Fatal(err)
	}
	if opts.TitleBar != "macos" {
		t.Errorf("feature on: title bar = %q, want macos", opts.TitleBar)
	}
}

func TestOptionsAnimation(t *testing.T) {
	tests := []struct {
		name      string
		flags     styleFlags
		wantType  animation.Type
		wantSpeed animation.Speed
	}{
		{"animate uses config default", styleFlags{animate: true}, animation.Flow, animation.Medium},
		{"type implies animate", styleFlags{animation: "pulse"}, animation.Pulse, animation.Slow},
		{"speed override", styleFlags{animation: "wave", speed: "fast"}, animation.Wave, animation.Fast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, e := newTestCLI(t)
			opts, err := c.options(context.Background(), &tt.flags, e)
			if err != nil {
				t.Fatal(err)
			}
			a := opts.Animation
			if a == nil || !a.Enabled {
				t.Fatalf("animation = %+v, want enabled", a)
			}
			if a.Type != tt.wantType || a.Speed != tt.wantSpeed {
				t.Errorf("animation = %s/%s, want %s/%s", a.Type, a.Speed, tt.wantType, tt.wantSpeed)
			}
		})
	}
}

func TestOptionsFormats(t *testing.T) {
	c, e := newTestCLI(t)

	opts, err := c.options(context.Background(), &styleFlags{formats: "SVG, png,svg"}, e)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(opts.Formats, ",") != "svg,png" {
		t.Errorf("formats = %v", opts.Formats)
	}

	_, err = c.options(context.Background(), &styleFlags{formats: "gif"}, e)
	if !styerr.Is(err, styerr.ErrCodeInvalidFormat) {
		t.Errorf("gif: err = %v, want INVALID_FORMAT", err)
	}
}

func TestCodeInput(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "main.go")
	if err := os.WriteFile(src, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	in, err := c.codeInput(nil, []string{src}, codeFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if in.Language != "go" || in.Theme != "dracula" || in.Code != "package main\n" {
		t.Errorf("codeInput() = %+v", in)
	}

	in, err = c.codeInput(strings.NewReader("print(1)"), []string{"-"}, codeFlags{language: "python", theme: "nord"})
	if err != nil {
		t.Fatal(err)
	}
	if in.Language != "python" || in.Theme != "nord" || in.Code != "print(1)" {
		t.Errorf("stdin codeInput() = %+v", in)
	}

	in, err = c.codeInput(nil, nil, codeFlags{})
	if err != nil {
		t.Fatal(err)
	}
	if in.Code != "" || in.Language != "javascript" {
		t.Errorf("no file: %+v", in)
	}

	_, err = c.codeInput(nil, []string{filepath.Join(dir, "missing.go")}, codeFlags{})
	if !styerr.Is(err, styerr.ErrCodeFileNotFound) {
		t.Errorf("missing file: err = %v", err)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")
	shot := filepath.Join(dir, "shot.png")
	writePNG(t, shot, 200, 100)
	out := filepath.Join(dir, "styled.svg")

	if _, err := run(t, "--config", cfg, "render", shot, "-o", out, "-a", "1:1", "-p", "mesh-neon", "--remember"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("output is not an SVG: %.80s", data)
	}

	stdout, err := run(t, "--config", cfg, "settings", "show", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var s settings.Settings
	if err := json.Unmarshal([]byte(stdout), &s); err != nil {
		t.Fatalf("decode %q: %v", stdout, err)
	}
	if s.PresetID != "mesh-neon" || s.AspectRatio != "1:1" {
		t.Errorf("remembered = %+v", s)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")
	shot := filepath.Join(dir, "shot.png")
	writePNG(t, shot, 20, 20)
	text := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(text, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code styerr.Code
	}{
		{"missing file", []string{"render", filepath.Join(dir, "nope.png")}, styerr.ErrCodeFileNotFound},
		{"not an image", []string{"render", text}, styerr.ErrCodeInvalidImageType},
		{"unknown preset", []string{"render", shot, "-p", "glass"}, styerr.ErrCodeInvalidPreset},
		{"unknown format", []string{"render", shot, "-f", "gif"}, styerr.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"--config", cfg}, tt.args...)...)
			if !styerr.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCodeCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")
	src := filepath.Join(dir, "hello.py")
	if err := os.WriteFile(src, []byte("def hello():\n    return 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "code.svg")

	if _, err := run(t, "--config", cfg, "code", src, "-o", out, "-p", "dot-grid"); err != nil {
		t.Fatalf("code: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), `id="dot-pattern"`) {
		t.Errorf("unexpected code SVG: %.120s", data)
	}
}

func TestCatalogCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `
[[palettes]]
id = "brand"
label = "Brand"
swatches = ["#101010", "#FF6600"]
`)

	stdout, err := run(t, "--config", cfg, "presets", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var presets []preset.Preset
	if err := json.Unmarshal([]byte(stdout), &presets); err != nil {
		t.Fatal(err)
	}
	if len(presets) != len(preset.All()) {
		t.Errorf("presets = %d, want %d", len(presets), len(preset.All()))
	}

	stdout, err = run(t, "--config", cfg, "palettes", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `"brand"`) {
		t.Errorf("custom palette missing from %s", stdout)
	}

	for _, name := range []string{"presets", "palettes", "frames", "themes"} {
		stdout, err := run(t, "--config", cfg, name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if stdout == "" {
			t.Errorf("%s printed nothing", name)
		}
	}
}

func TestSettingsCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")

	if _, err := run(t, "--config", cfg, "settings", "set", "--preset", "gradient-ocean", "--animations=true"); err != nil {
		t.Fatal(err)
	}
	stdout, err := run(t, "--config", cfg, "settings", "show", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var s settings.Settings
	if err := json.Unmarshal([]byte(stdout), &s); err != nil {
		t.Fatal(err)
	}
	if s.PresetID != "gradient-ocean" || s.AnimationsEnabled == nil || !*s.AnimationsEnabled {
		t.Errorf("after set: %+v", s)
	}
	if s.PaletteID != "sunset-warm" {
		t.Errorf("unset palette should resolve to the default: %q", s.PaletteID)
	}

	tests := []struct {
		args []string
		code styerr.Code
	}{
		{[]string{"--preset", "glass"}, styerr.ErrCodeInvalidPreset},
		{[]string{"--palette", "nope"}, styerr.ErrCodeInvalidPalette},
		{[]string{"--title-bar", "beos"}, styerr.ErrCodeInvalidTitleBar},
		{[]string{"--aspect", "5:4"}, styerr.ErrCodeInvalidAspectRatio},
		{[]string{"--frame-style", "wood"}, styerr.ErrCodeInvalidFrameStyle},
		{[]string{"--animations", "maybe"}, styerr.ErrCodeInvalidInput},
		{nil, styerr.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		_, err := run(t, append([]string{"--config", cfg, "settings", "set"}, tt.args...)...)
		if !styerr.Is(err, tt.code) {
			t.Errorf("set %v: err = %v, want %s", tt.args, err, tt.code)
		}
	}

	if _, err := run(t, "--config", cfg, "settings", "reset"); err != nil {
		t.Fatal(err)
	}
	stdout, err = run(t, "--config", cfg, "settings", "show", "--json")
	if err != nil {
		t.Fatal(err)
	}
	s = settings.Settings{}
	if err := json.Unmarshal([]byte(stdout), &s); err != nil {
		t.Fatal(err)
	}
	if s.PresetID != string(preset.DefaultID) {
		t.Errorf("after reset: %+v", s)
	}
}

func TestCachePathAndClear(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "")

	stdout, err := run(t, "--config", cfg, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(stdout) != filepath.Join(dir, "cache") {
		t.Errorf("cache path = %q", stdout)
	}

	shot := filepath.Join(dir, "shot.png")
	writePNG(t, shot, 40, 40)
	if _, err := run(t, "--config", cfg, "render", shot, "-o", filepath.Join(dir, "a.svg")); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--config", cfg, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "cache"))
	for _, e := range entries {
		if !e.IsDir() {
			t.Errorf("cache entry left after clear: %s", e.Name())
		}
	}
}

func TestCompletion(t *testing.T) {
	cfg := writeConfig(t, t.TempDir(), "")
	stdout, err := run(t, "--config", cfg, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "styler") {
		t.Error("bash completion should mention styler")
	}
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "presets")
	if !styerr.Is(err, styerr.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}
