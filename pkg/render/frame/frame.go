// Package frame draws the chrome around a screenshot: browser title bars,
// laptop and phone bezels, and decorative frame styles.
//
// Every function writes an SVG fragment; the composer in package sink is the
// only place a top-level <svg> element is produced.
package frame

import (
	"bytes"
	"fmt"

	"github.com/younextz/screenshot-styler/pkg/render/markup"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// TitleBar selects the browser chrome drawn above the screenshot.
type TitleBar string

const (
	TitleBarNone    TitleBar = "none"
	TitleBarMacOS   TitleBar = "macos"
	TitleBarWindows TitleBar = "windows"
)

// Title bar heights in pixels.
const (
	MacOSTitleBarHeight   = 48
	WindowsTitleBarHeight = 36
)

const chromeFallback = "#1A1A1A"

// ParseTitleBar reports whether s names a title bar mode.
func ParseTitleBar(s string) (TitleBar, bool) {
	switch TitleBar(s) {
	case TitleBarNone, TitleBarMacOS, TitleBarWindows:
		return TitleBar(s), true
	}
	return "", false
}

// TitleBarFor reports which title bar, if any, is drawn for a preset. The
// macOS bar needs the browser-macos preset and the macos mode; the Windows
// bar likewise.
func TitleBarFor(id preset.ID, mode TitleBar) TitleBar {
	switch {
	case id == preset.BrowserMacOS && mode == TitleBarMacOS:
		return TitleBarMacOS
	case id == preset.BrowserWindows && mode == TitleBarWindows:
		return TitleBarWindows
	}
	return TitleBarNone
}

// TitleBarHeight is the vertical space the title bar adds above the image.
func TitleBarHeight(id preset.ID, mode TitleBar) int {
	switch TitleBarFor(id, mode) {
	case TitleBarMacOS:
		return MacOSTitleBarHeight
	case TitleBarWindows:
		return WindowsTitleBarHeight
	}
	return 0
}

// MacOSTitleBar draws a rounded bar with the three traffic lights.
func MacOSTitleBar(buf *bytes.Buffer, p palette.Palette, x, y, width float64) {
	bar := p.SwatchOr(chromeFallback, 1)
	w := markup.Num(width)
	fmt.Fprintf(buf, `<g transform="translate(%s, %s)">
<rect width="%s" height="40" fill="%s" rx="12" ry="12"/>
<rect y="40" width="%s" height="8" fill="%s"/>
<circle cx="20" cy="20" r="6" fill="#FF5F56"/>
<circle cx="40" cy="20" r="6" fill="#FFBD2E"/>
<circle cx="60" cy="20" r="6" fill="#27C93F"/>
</g>
`, markup.Num(x), markup.Num(y), w, bar, w, bar)
}

// WindowsTitleBar draws a flat bar with minimise, maximise and close glyphs.
func WindowsTitleBar(buf *bytes.Buffer, p palette.Palette, x, y, width float64) {
	bar := p.SwatchOr(chromeFallback, 1)
	glyph := p.SwatchOr("#FFF", 4)
	fmt.Fprintf(buf, `<g transform="translate(%s, %s)">
<rect width="%s" height="36" fill="%s"/>
<line x1="%s" y1="12" x2="%s" y2="24" stroke="%s" stroke-width="2"/>
<rect x="%s" y="8" width="16" height="2" fill="%s"/>
<rect x="%s" y="8" width="14" height="14" fill="none" stroke="%s" stroke-width="2"/>
</g>
`, markup.Num(x), markup.Num(y), markup.Num(width), bar,
		markup.Num(width-80), markup.Num(width-68), glyph,
		markup.Num(width-50), glyph,
		markup.Num(width-22), glyph)
}

// Laptop draws a bezel around the image and a keyboard base below it.
func Laptop(buf *bytes.Buffer, p palette.Palette, frameX, contentTop, imgW, imgH float64) {
	body := p.SwatchOr(chromeFallback, 1)
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" rx="8"/>`+"\n",
		markup.Num(frameX-10), markup.Num(contentTop-10), markup.Num(imgW+20), markup.Num(imgH+20), body)
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="8" fill="%s" rx="2"/>`+"\n",
		markup.Num(frameX-50), markup.Num(contentTop+imgH+12), markup.Num(imgW+100), body)
}

// Phone draws a tall rounded body with a home button centred on the canvas.
func Phone(buf *bytes.Buffer, p palette.Palette, frameX, contentTop, imgW, imgH, outputW float64) {
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" rx="24"/>`+"\n",
		markup.Num(frameX-12), markup.Num(contentTop-40), markup.Num(imgW+24), markup.Num(imgH+80), p.SwatchOr(chromeFallback, 1))
	fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="15" fill="%s"/>`+"\n",
		markup.Num(outputW/2), markup.Num(contentTop+imgH+50), p.Swatch(0))
}

// Placement locates the image on the canvas.
type Placement struct {
	CanvasWidth float64
	FrameX      float64
	ContentTop  float64
	ImageWidth  float64
	ImageHeight float64
}

// Chrome draws whatever frame the preset calls for: a title bar when the
// preset and mode agree, or a device bezel. Other presets draw nothing.
func Chrome(buf *bytes.Buffer, id preset.ID, mode TitleBar, p palette.Palette, pl Placement) {
	switch id {
	case preset.BrowserMacOS:
		if TitleBarFor(id, mode) == TitleBarMacOS {
			MacOSTitleBar(buf, p, pl.FrameX, pl.ContentTop, pl.ImageWidth)
		}
	case preset.BrowserWindows:
		if TitleBarFor(id, mode) == TitleBarWindows {
			WindowsTitleBar(buf, p, pl.FrameX, pl.ContentTop, pl.ImageWidth)
		}
	case preset.DeviceLaptop:
		Laptop(buf, p, pl.FrameX, pl.ContentTop, pl.ImageWidth, pl.ImageHeight)
	case preset.DevicePhone:
		Phone(buf, p, pl.FrameX, pl.ContentTop, pl.ImageWidth, pl.ImageHeight, pl.CanvasWidth)
	}
}
