package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younextz/screenshot-styler/pkg/acquire"
	"github.com/younextz/screenshot-styler/pkg/cache"
	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/integrations/twitter"
	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/assets"
	"github.com/younextz/screenshot-styler/pkg/render/raster"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func quietRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"png4k", false},
		{"pdf", false},
		{"json", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !styerr.Is(err, styerr.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, styerr.GetCode(err))
		}
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, PNG,,png4k,svg ")
	want := []string{"svg", "png", "png4k"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFormats = %v, want %v", got, want)
	}
	if ParseFormats("") != nil {
		t.Error("empty input should give nil")
	}
}

func TestMIMEAndExtension(t *testing.T) {
	if MIME(FormatPNG4K) != "image/png" || Extension(FormatPNG4K) != "png" {
		t.Error("png4k should be a png")
	}
	if MIME(FormatSVG) != "image/svg+xml" || MIME(FormatPDF) != "application/pdf" {
		t.Error("wrong MIME types")
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.Preset != "gradient-sunset" || o.Palette != "sunset-warm" || o.TitleBar != "none" || o.AspectRatio != "auto" {
		t.Errorf("defaults = %+v", o)
	}
	if !reflect.DeepEqual(o.Formats, []string{"svg"}) {
		t.Errorf("Formats = %v", o.Formats)
	}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call = %v", err)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code styerr.Code
	}{
		{"preset", Options{Preset: "glass"}, styerr.ErrCodeInvalidPreset},
		{"palette", Options{Palette: "nope"}, styerr.ErrCodeInvalidPalette},
		{"title bar", Options{TitleBar: "beos"}, styerr.ErrCodeInvalidTitleBar},
		{"aspect", Options{AspectRatio: "3:2"}, styerr.ErrCodeInvalidAspectRatio},
		{"frame style", Options{FrameStyle: "polaroid"}, styerr.ErrCodeInvalidFrameStyle},
		{"animation", Options{Animation: &animation.Config{Type: "spin"}}, styerr.ErrCodeInvalidAnimation},
		{"format", Options{Formats: []string{"gif"}}, styerr.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !styerr.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Animation: &animation.Config{Type: animation.Flow, Speed: animation.Slow, Enabled: true}}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	k := o.ArtifactKeyOpts(FormatPNG)
	if k.Format != "png" || k.Preset != "gradient-sunset" || k.Animation != "flow/slow" || len(k.Swatches) == 0 {
		t.Errorf("key opts = %+v", k)
	}

	o.Animation.Enabled = false
	if o.ArtifactKeyOpts(FormatPNG).Animation != "" {
		t.Error("disabled animation should not affect the key")
	}
}

type pictureLoader struct{ data []byte }

func (l pictureLoader) Load(context.Context, string) ([]byte, error) { return l.data, nil }

func TestArtifactKeyPictureLoaded(t *testing.T) {
	tests := []struct {
		name   string
		preset string
		differ bool
	}{
		{"picture preset", "bg-picture-dark", true},
		{"gradient preset", "gradient-sunset", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := assets.NewProvider(pictureLoader{data: testPNG(t, 4, 4)})
			o := Options{Preset: tt.preset, Assets: p}
			if err := o.ValidateAndSetDefaults(); err != nil {
				t.Fatal(err)
			}
			before := o.ArtifactKeyOpts(FormatPNG)
			if err := p.Preload(context.Background()); err != nil {
				t.Fatal(err)
			}
			after := o.ArtifactKeyOpts(FormatPNG)

			if got := !reflect.DeepEqual(before, after); got != tt.differ {
				t.Errorf("keys differ = %v, want %v (before %+v, after %+v)", got, tt.differ, before, after)
			}
		})
	}
}

func TestAcquireNoInput(t *testing.T) {
	if _, err := Acquire(context.Background(), Input{}); !styerr.Is(err, styerr.ErrCodeInvalidInput) {
		t.Errorf("err = %v", err)
	}
	if got := (Input{}).Source(); got != "none" {
		t.Errorf("Source = %q", got)
	}
}

func TestExecuteSVG(t *testing.T) {
	r := quietRunner(t)
	ctx := context.Background()
	in := func() Input { return Input{Reader: bytes.NewReader(testPNG(t, 800, 450)), Name: "shot.png"} }
	opts := Options{AspectRatio: "16:9"}

	res, err := r.Execute(ctx, in(), opts)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(res.Artifacts[FormatSVG])
	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("artifact is not svg: %.60q", svg)
	}
	if strings.Count(svg, `href="data:image/png;base64,`) != 1 {
		t.Error("expected the screenshot embedded once")
	}
	if w, h := float64(res.Geometry.Width), float64(res.Geometry.Height); math.Abs(w/h-16.0/9) > 0.01 {
		t.Errorf("geometry %vx%v is not 16:9", w, h)
	}
	if res.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}
	if res.Stats.ImageWidth != 800 || res.ImageHash == "" {
		t.Errorf("stats = %+v hash = %q", res.Stats, res.ImageHash)
	}

	again, err := r.Execute(ctx, in(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheInfo.RenderHit || !bytes.Equal(again.Artifacts[FormatSVG], res.Artifacts[FormatSVG]) {
		t.Error("second run should be served from the cache")
	}

	opts.Refresh = true
	fresh, err := r.Execute(ctx, in(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.CacheInfo.RenderHit || len(fresh.CacheInfo.Hits) != 0 {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteOptionsChangeKey(t *testing.T) {
	r := quietRunner(t)
	ctx := context.Background()
	data := testPNG(t, 200, 100)

	first, err := r.Execute(ctx, Input{Reader: bytes.NewReader(data)}, Options{Preset: "gradient-ocean"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Execute(ctx, Input{Reader: bytes.NewReader(data)}, Options{Preset: "mesh-cosmic"})
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheInfo.RenderHit {
		t.Error("a different preset must not hit the cache")
	}
	if bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("different presets should render differently")
	}
}

func TestExecutePNG(t *testing.T) {
	r := quietRunner(t)
	img, err := acquire.FromBytes(testPNG(t, 320, 180), "shot.png")
	if err != nil {
		t.Fatal(err)
	}

	res, err := r.Execute(context.Background(), Input{Image: img}, Options{Formats: []string{FormatSVG, FormatPNG}})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(res.Artifacts[FormatPNG]))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != res.Geometry.Width || cfg.Height != res.Geometry.Height {
		t.Errorf("png %dx%d, geometry %dx%d", cfg.Width, cfg.Height, res.Geometry.Width, res.Geometry.Height)
	}
}

func TestExecuteRejectsBadImage(t *testing.T) {
	r := quietRunner(t)
	_, err := r.Execute(context.Background(), Input{Reader: strings.NewReader("not an image")}, Options{})
	if !styerr.Is(err, styerr.ErrCodeInvalidImageType) {
		t.Errorf("err = %v", err)
	}
}

func TestExecuteCode(t *testing.T) {
	r := quietRunner(t)
	res, err := r.ExecuteCode(context.Background(), CodeInput{Code: "package main\n", Language: "go"}, Options{Preset: "dot-grid"})
	if err != nil {
		t.Fatal(err)
	}
	svg := string(res.Artifacts[FormatSVG])
	if !strings.Contains(svg, "<tspan") || !strings.Contains(svg, `id="dot-pattern"`) {
		t.Errorf("unexpected code svg: %.200s", svg)
	}
	if res.Geometry.Width == 0 {
		t.Error("geometry not set")
	}

	sample, err := r.ExecuteCode(context.Background(), CodeInput{Language: "python"}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(sample.Artifacts[FormatSVG]), "greet") {
		t.Error("empty code should fall back to the language sample")
	}
}

func TestExecuteCodeErrors(t *testing.T) {
	r := quietRunner(t)
	ctx := context.Background()
	if _, err := r.ExecuteCode(ctx, CodeInput{Theme: "solarized-pink"}, Options{}); !styerr.Is(err, styerr.ErrCodeInvalidTheme) {
		t.Errorf("theme err = %v", err)
	}
	if _, err := r.ExecuteCode(ctx, CodeInput{Language: "cobol"}, Options{}); !styerr.Is(err, styerr.ErrCodeInvalidLanguage) {
		t.Errorf("language err = %v", err)
	}
	if _, err := r.ExecuteCode(ctx, CodeInput{}, Options{Preset: "glass"}); !styerr.Is(err, styerr.ErrCodeInvalidPreset) {
		t.Errorf("preset err = %v", err)
	}
	if raster.RSVGAvailable() {
		return
	}
	if _, err := r.ExecuteCode(ctx, CodeInput{}, Options{Formats: []string{FormatPNG}}); !styerr.Is(err, styerr.ErrCodeUnsupported) {
		t.Errorf("png without librsvg err = %v", err)
	}
}

func TestExecuteTweet(t *testing.T) {
	body, _ := json.Marshal(map[string]string{
		"author_name": "jack",
		"author_url":  "https://twitter.com/jack",
		"html":        `<blockquote><p>just setting up my twttr</p>&mdash; jack (@jack) <a href="https://twitter.com/jack/status/20">March 21, 2006</a></blockquote>`,
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	client := twitter.NewClient(cache.NewNullCache(), time.Hour).WithEndpoint(srv.URL)
	client.SetHTTPClient(srv.Client())

	r := quietRunner(t)
	res, err := r.ExecuteTweet(context.Background(), client, "https://twitter.com/jack/status/20", 720, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Stats.ImageWidth != 720 {
		t.Errorf("card width = %d, want 720", res.Stats.ImageWidth)
	}
	if !strings.Contains(string(res.Artifacts[FormatSVG]), "data:image/png;base64,") {
		t.Error("tweet card not embedded")
	}

	if _, err := r.ExecuteTweet(context.Background(), client, "https://example.com/x", 720, Options{}); err == nil {
		t.Error("non-tweet URL should fail")
	}
}
