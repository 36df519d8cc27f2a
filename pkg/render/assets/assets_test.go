package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/younextz/screenshot-styler/pkg/cache"
	"github.com/younextz/screenshot-styler/pkg/integrations"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

type countingLoader struct {
	data  []byte
	fail  map[string]bool
	calls int32
}

func (l *countingLoader) Load(_ context.Context, path string) ([]byte, error) {
	atomic.AddInt32(&l.calls, 1)
	if l.fail[path] {
		return nil, errors.New("boom")
	}
	return l.data, nil
}

func TestStaticURLs(t *testing.T) {
	if u, ok := StaticURL(preset.PictureDark); !ok || u != "/backgrounds/bg-dark-bubbles.png" {
		t.Errorf("dark = %q, %v", u, ok)
	}
	if u, ok := StaticURL(preset.PictureLight); !ok || u != "/backgrounds/bg-light-bubbles.png" {
		t.Errorf("light = %q, %v", u, ok)
	}
	if _, ok := StaticURL(preset.GradientSunset); ok {
		t.Error("non-picture preset should have no URL")
	}
	for _, p := range preset.All() {
		_, ok := StaticURL(p.ID)
		if ok != p.ID.IsPicture() {
			t.Errorf("%s: StaticURL ok=%v, IsPicture=%v", p.ID, ok, p.ID.IsPicture())
		}
	}
}

func TestProviderBeforePreload(t *testing.T) {
	p := NewProvider(&countingLoader{})
	if p.Has(preset.PictureDark) {
		t.Error("nothing should be loaded yet")
	}
	if got := p.Href(preset.PictureDark); got != "/backgrounds/bg-dark-bubbles.png" {
		t.Errorf("Href = %q", got)
	}
	if got := p.Href(preset.GradientSunset); got != "" {
		t.Errorf("Href(non-picture) = %q", got)
	}

	var nilProvider *Provider
	if _, ok := nilProvider.Get(preset.PictureDark); ok {
		t.Error("nil provider should miss")
	}
	if got := nilProvider.Href(preset.PictureLight); got != "/backgrounds/bg-light-bubbles.png" {
		t.Errorf("nil provider Href = %q", got)
	}
}

func TestProviderPreloadOnce(t *testing.T) {
	l := &countingLoader{data: pngBytes(t)}
	p := NewProvider(l)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.Preload(context.Background()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&l.calls); got != 2 {
		t.Errorf("loader calls = %d, want 2", got)
	}
	for _, id := range IDs() {
		u, ok := p.Get(id)
		if !ok || !strings.HasPrefix(u, "data:image/png;base64,") {
			t.Errorf("%s: %q, %v", id, u, ok)
		}
		if p.Href(id) != u {
			t.Errorf("%s: Href should prefer the data URL", id)
		}
	}
}

func TestProviderPartialFailure(t *testing.T) {
	l := &countingLoader{data: pngBytes(t), fail: map[string]bool{"/backgrounds/bg-light-bubbles.png": true}}
	p := NewProvider(l)

	err := p.Preload(context.Background())
	if err == nil || !strings.Contains(err.Error(), "bg-picture-light") {
		t.Fatalf("err = %v", err)
	}
	if !p.Has(preset.PictureDark) {
		t.Error("dark picture should still load")
	}
	if got := p.Href(preset.PictureLight); got != "/backgrounds/bg-light-bubbles.png" {
		t.Errorf("failed picture should fall back to static URL, got %q", got)
	}
}

func TestProviderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewProvider(&countingLoader{data: pngBytes(t)})
	if err := p.Preload(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestProviderUsesCache(t *testing.T) {
	store, _ := cache.NewFileCache(t.TempDir())
	data := pngBytes(t)

	first := NewProvider(&countingLoader{data: data}, WithCache(store, nil))
	if err := first.Preload(context.Background()); err != nil {
		t.Fatal(err)
	}

	l := &countingLoader{data: data}
	second := NewProvider(l, WithCache(store, nil))
	if err := second.Preload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if l.calls != 0 {
		t.Errorf("cached assets should skip the loader, calls = %d", l.calls)
	}
	if !second.Has(preset.PictureDark) {
		t.Error("cached asset missing")
	}
}

func TestDirLoader(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "backgrounds")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := pngBytes(t)
	if err := os.WriteFile(filepath.Join(dir, "bg-dark-bubbles.png"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := DirLoader{Root: root}.Load(context.Background(), "/backgrounds/bg-dark-bubbles.png")
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("Load = %d bytes, %v", len(got), err)
	}
	if _, err := (DirLoader{Root: root}).Load(context.Background(), "/backgrounds/missing.png"); err == nil {
		t.Error("missing file should error")
	}
}

func TestHTTPLoader(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/static/backgrounds/bg-dark-bubbles.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	client := integrations.NewClient(nil, "assets", time.Hour, nil)
	client.SetHTTPClient(srv.Client())
	l := HTTPLoader{BaseURL: srv.URL + "/static/", Client: client}

	got, err := l.Load(context.Background(), "/backgrounds/bg-dark-bubbles.png")
	if err != nil || !bytes.Equal(got, data) {
		t.Fatalf("Load = %d bytes, %v", len(got), err)
	}
	if _, err := l.Load(context.Background(), "/backgrounds/nope.png"); !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDataURL(t *testing.T) {
	u, err := DataURL(pngBytes(t))
	if err != nil || !strings.HasPrefix(u, "data:image/png;base64,iVBOR") {
		t.Errorf("DataURL = %q, %v", u, err)
	}
	if _, err := DataURL(nil); err == nil {
		t.Error("empty data should fail")
	}
	if _, err := DataURL([]byte("hello world")); err == nil {
		t.Error("text should fail")
	}
}

func TestDecodeDataURL(t *testing.T) {
	raw := pngBytes(t)
	u, err := DataURL(raw)
	if err != nil {
		t.Fatal(err)
	}
	data, mime, err := DecodeDataURL(u)
	if err != nil || mime != "image/png" || !bytes.Equal(data, raw) {
		t.Errorf("DecodeDataURL = %d bytes, %q, %v", len(data), mime, err)
	}

	for _, bad := range []string{
		"/backgrounds/bg-dark-bubbles.png",
		"data:image/png;base64",
		"data:image/svg+xml,<svg/>",
		"data:image/png;base64,!!!",
	} {
		if _, _, err := DecodeDataURL(bad); err == nil {
			t.Errorf("DecodeDataURL(%q) should fail", bad)
		}
	}
}
