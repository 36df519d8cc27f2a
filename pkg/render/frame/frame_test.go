package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

var testPalette = palette.Palette{
	ID:       "test",
	Swatches: []string{"#111111", "#222222", "#333333", "#444444", "#555555"},
}

func TestTitleBarHeight(t *testing.T) {
	tests := []struct {
		id   preset.ID
		mode TitleBar
		want int
	}{
		{preset.BrowserMacOS, TitleBarMacOS, 48},
		{preset.BrowserWindows, TitleBarWindows, 36},
		{preset.BrowserMacOS, TitleBarWindows, 0},
		{preset.BrowserWindows, TitleBarMacOS, 0},
		{preset.BrowserMacOS, TitleBarNone, 0},
		{preset.GradientSunset, TitleBarMacOS, 0},
		{preset.DeviceLaptop, TitleBarWindows, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.id)+"/"+string(tt.mode), func(t *testing.T) {
			if got := TitleBarHeight(tt.id, tt.mode); got != tt.want {
				t.Errorf("TitleBarHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseTitleBar(t *testing.T) {
	for _, s := range []string{"none", "macos", "windows"} {
		if _, ok := ParseTitleBar(s); !ok {
			t.Errorf("ParseTitleBar(%q) not ok", s)
		}
	}
	if _, ok := ParseTitleBar("linux"); ok {
		t.Error("ParseTitleBar(linux) should fail")
	}
}

func TestMacOSTitleBar(t *testing.T) {
	var buf bytes.Buffer
	MacOSTitleBar(&buf, testPalette, 60, 30.5, 800)
	got := buf.String()

	for _, want := range []string{
		`<g transform="translate(60, 30.5)">`,
		`<rect width="800" height="40" fill="#222222" rx="12" ry="12"/>`,
		`<rect y="40" width="800" height="8" fill="#222222"/>`,
		`fill="#FF5F56"`,
		`fill="#FFBD2E"`,
		`fill="#27C93F"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestWindowsTitleBar(t *testing.T) {
	var buf bytes.Buffer
	WindowsTitleBar(&buf, testPalette, 0, 0, 400)
	got := buf.String()

	for _, want := range []string{
		`<rect width="400" height="36" fill="#222222"/>`,
		`<line x1="320" y1="12" x2="332" y2="24" stroke="#555555"`,
		`<rect x="350" y="8" width="16" height="2" fill="#555555"/>`,
		`<rect x="378" y="8" width="14" height="14" fill="none" stroke="#555555"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestChromeFallbackColors(t *testing.T) {
	short := palette.Palette{ID: "one", Swatches: []string{"#ABCDEF"}}
	var buf bytes.Buffer
	WindowsTitleBar(&buf, short, 0, 0, 200)
	Laptop(&buf, short, 10, 10, 100, 100)
	got := buf.String()

	if !strings.Contains(got, `fill="#1A1A1A"`) {
		t.Errorf("expected bar fallback colour:\n%s", got)
	}
	if !strings.Contains(got, `stroke="#FFF"`) {
		t.Errorf("expected glyph fallback colour:\n%s", got)
	}
	if strings.Contains(got, `=""`) {
		t.Errorf("empty attribute in:\n%s", got)
	}
}

func TestLaptopAndPhone(t *testing.T) {
	var buf bytes.Buffer
	Laptop(&buf, testPalette, 60, 60, 800, 600)
	got := buf.String()
	if !strings.Contains(got, `<rect x="50" y="50" width="820" height="620" fill="#222222" rx="8"/>`) {
		t.Errorf("laptop bezel:\n%s", got)
	}
	if !strings.Contains(got, `<rect x="10" y="672" width="900" height="8" fill="#222222" rx="2"/>`) {
		t.Errorf("laptop base:\n%s", got)
	}

	buf.Reset()
	Phone(&buf, testPalette, 60, 60, 800, 600, 920)
	got = buf.String()
	if !strings.Contains(got, `<rect x="48" y="20" width="824" height="680" fill="#222222" rx="24"/>`) {
		t.Errorf("phone body:\n%s", got)
	}
	if !strings.Contains(got, `<circle cx="460" cy="710" r="15" fill="#111111"/>`) {
		t.Errorf("phone button:\n%s", got)
	}
}

func TestChromeOnlyWhenModeMatches(t *testing.T) {
	pl := Placement{CanvasWidth: 920, FrameX: 60, ContentTop: 60, ImageWidth: 800, ImageHeight: 600}
	tests := []struct {
		id    preset.ID
		mode  TitleBar
		empty bool
	}{
		{preset.BrowserMacOS, TitleBarMacOS, false},
		{preset.BrowserMacOS, TitleBarWindows, true},
		{preset.BrowserWindows, TitleBarWindows, false},
		{preset.BrowserWindows, TitleBarNone, true},
		{preset.DeviceLaptop, TitleBarNone, false},
		{preset.DevicePhone, TitleBarMacOS, false},
		{preset.GradientSunset, TitleBarMacOS, true},
		{preset.CardElevated, TitleBarNone, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Chrome(&buf, tt.id, tt.mode, testPalette, pl)
		if (buf.Len() == 0) != tt.empty {
			t.Errorf("Chrome(%s, %s) empty = %v, want %v", tt.id, tt.mode, buf.Len() == 0, tt.empty)
		}
	}
}

func TestStylesCatalogue(t *testing.T) {
	all := Styles()
	if len(all) != 6 {
		t.Fatalf("Styles() = %d entries, want 6", len(all))
	}
	seen := map[StyleID]bool{}
	for _, st := range all {
		if seen[st.ID] {
			t.Errorf("duplicate style %s", st.ID)
		}
		seen[st.ID] = true
		if st.Label == "" || st.Description == "" {
			t.Errorf("style %s missing label or description", st.ID)
		}
		if id, ok := ParseStyle(string(st.ID)); !ok || id != st.ID {
			t.Errorf("ParseStyle(%s) = %s, %v", st.ID, id, ok)
		}
	}
	if _, ok := ParseStyle("glass"); ok {
		t.Error("ParseStyle(glass) should fail")
	}
}

func TestRenderStyle(t *testing.T) {
	b := Bounds{X: 60, Y: 60, W: 800, H: 600, Radius: 24}
	for _, st := range Styles() {
		t.Run(string(st.ID), func(t *testing.T) {
			var buf bytes.Buffer
			RenderStyle(&buf, st.ID, b)
			got := buf.String()
			if st.ID == StyleNone {
				if got != "" {
					t.Errorf("none style wrote %q", got)
				}
				return
			}
			if got == "" {
				t.Fatal("empty output")
			}
			if strings.Contains(got, "<svg") {
				t.Error("frame style must not open a document")
			}
			if strings.Count(got, "<defs>") != strings.Count(got, "</defs>") {
				t.Errorf("unbalanced defs:\n%s", got)
			}
		})
	}
}

func TestRenderStyleUnknown(t *testing.T) {
	var buf bytes.Buffer
	RenderStyle(&buf, StyleID("glass"), Bounds{W: 10, H: 10})
	if buf.Len() != 0 {
		t.Errorf("unknown style wrote %q", buf.String())
	}
}

func TestRenderStyleIDsPrefixed(t *testing.T) {
	var buf bytes.Buffer
	RenderStyle(&buf, StyleStackLight, Bounds{X: 10, Y: 10, W: 100, H: 100, Radius: 8})
	got := buf.String()
	for _, want := range []string{`id="frame-stack-light-back"`, `id="frame-stack-light-mid"`, `id="frame-stack-light-glow"`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in:\n%s", want, got)
		}
	}
}
