package frame

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// StyleID selects a decorative frame style.
type StyleID string

const (
	StyleStackLight StyleID = "stack-light"
	StyleStackDark  StyleID = "stack-dark"
	StyleArc        StyleID = "arc"
	StyleMacOSLight StyleID = "macos-light"
	StyleMacOSDark  StyleID = "macos-dark"
	StyleNone       StyleID = "none"
)

// Style is a catalogue entry for a frame style.
type Style struct {
	ID          StyleID `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Badge       string  `json:"badge,omitempty"`
}

var styles = []Style{
	{StyleStackLight, "Stack Light", "Layered pastel cards with a soft glow.", "Popular"},
	{StyleStackDark, "Stack Dark", "Offset dark cards with chrome edges.", ""},
	{StyleArc, "Arc", "Curved chrome halo inspired by Arc browser.", "New"},
	{StyleMacOSLight, "macOS Light", "Classic macOS window with light chrome.", ""},
	{StyleMacOSDark, "macOS Dark", "macOS frame with slate background.", ""},
	{StyleNone, "None", "Use the raw screenshot without a frame.", ""},
}

// Styles returns the frame style catalogue.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle reports whether s names a frame style.
func ParseStyle(s string) (StyleID, bool) {
	for _, st := range styles {
		if string(st.ID) == s {
			return st.ID, true
		}
	}
	return "", false
}

// Bounds is the image rectangle a frame style wraps, with its corner radius.
type Bounds struct {
	X, Y, W, H float64
	Radius     int
}

func (b Bounds) ints() (x, y, w, h int) {
	return int(math.Round(b.X)), int(math.Round(b.Y)), int(math.Round(b.W)), int(math.Round(b.H))
}

// Tailwind-derived tones used by the frame styles.
const (
	pink50    = "#FDF2F8"
	pink100   = "#FCE7F3"
	pink400   = "#F472B6"
	rose100   = "#FFE4E6"
	rose400   = "#FB7185"
	rose500   = "#F43F5E"
	amber400  = "#FBBF24"
	emerald   = "#34D399"
	cyan400   = "#22D3EE"
	indigo500 = "#6366F1"
	slate50   = "#F8FAFC"
	slate100  = "#F1F5F9"
	slate200  = "#E2E8F0"
	slate700  = "#334155"
	slate800  = "#1E293B"
	slate900  = "#0F172A"
	white     = "#FFFFFF"
)

// RenderStyle writes the decoration for style id around b. StyleNone and
// unknown ids write nothing.
func RenderStyle(w io.Writer, id StyleID, b Bounds) {
	canvas := svg.New(w)
	switch id {
	case StyleStackLight:
		stackLight(canvas, b)
	case StyleStackDark:
		stackDark(canvas, b)
	case StyleArc:
		arc(canvas, b)
	case StyleMacOSLight:
		window(canvas, b, windowTones{body: white, border: slate200, strip: slate100, red: rose400})
	case StyleMacOSDark:
		window(canvas, b, windowTones{body: slate900, border: slate700, strip: slate800, red: rose500})
	}
}

func attr(name, value string) string { return fmt.Sprintf(`%s="%s"`, name, value) }

func stackLight(c *svg.SVG, b Bounds) {
	x, y, w, h := b.ints()
	r := b.Radius + 8

	c.Def()
	c.LinearGradient("frame-stack-light-back", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: pink100, Opacity: 1},
		{Offset: 100, Color: rose100, Opacity: 1},
	})
	c.LinearGradient("frame-stack-light-mid", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: rose100, Opacity: 1},
		{Offset: 100, Color: pink50, Opacity: 1},
	})
	c.Filter("frame-stack-light-glow", `x="-20%" y="-20%" width="140%" height="140%"`)
	c.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic"}, 12, 12)
	c.Fend()
	c.DefEnd()

	c.Roundrect(x-8+10, y-8+12, w+16, h+16, r, r, attr("fill", "url(#frame-stack-light-back)"))
	c.Roundrect(x-4+4, y-4+6, w+8, h+8, r, r, attr("fill", "url(#frame-stack-light-mid)"))
	c.Roundrect(x, y+6, w, h, b.Radius, b.Radius,
		attr("fill", pink400), attr("opacity", "0.35"), attr("filter", "url(#frame-stack-light-glow)"))
}

func stackDark(c *svg.SVG, b Bounds) {
	x, y, w, h := b.ints()
	r := b.Radius + 10

	c.Def()
	c.Filter("frame-stack-dark-drop", `x="-20%" y="-20%" width="140%" height="140%"`)
	c.FeGaussianBlur(svg.Filterspec{In: "SourceAlpha"}, 15, 15)
	c.Fend()
	c.DefEnd()

	c.Roundrect(x-8-6, y-8+12, w+16, h+16, r, r, attr("fill", slate900), attr("opacity", "0.65"), attr("filter", "url(#frame-stack-dark-drop)"))
	c.Roundrect(x-8-6, y-8+12, w+16, h+16, r, r, attr("fill", slate900))
	c.Roundrect(x-4+4, y-4+4, w+8, h+8, r, r,
		attr("fill", slate800), attr("stroke", white), attr("stroke-opacity", "0.1"), attr("stroke-width", "1"))
}

func arc(c *svg.SVG, b Bounds) {
	x, y, w, h := b.ints()

	c.Def()
	c.LinearGradient("frame-arc-halo", 0, 0, 100, 0, []svg.Offcolor{
		{Offset: 0, Color: emerald, Opacity: 0.3},
		{Offset: 50, Color: cyan400, Opacity: 0.5},
		{Offset: 100, Color: indigo500, Opacity: 0.3},
	})
	c.Filter("frame-arc-blur", `x="-50%" y="-50%" width="200%" height="200%"`)
	c.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic"}, 24, 24)
	c.Fend()
	c.DefEnd()

	c.Ellipse(x+w/2, y+h/2, w/2+64, h/4, attr("fill", "url(#frame-arc-halo)"), attr("filter", "url(#frame-arc-blur)"))
	r := b.Radius + 10
	c.Roundrect(x-10, y-10, w+20, h+20, r, r,
		attr("fill", slate900), attr("fill-opacity", "0.8"),
		attr("stroke", white), attr("stroke-opacity", "0.15"), attr("stroke-width", "1"))
}

type windowTones struct {
	body, border, strip, red string
}

// window draws a macOS-style window whose content area is b; the window
// extends 40px above the image for its title strip.
func window(c *svg.SVG, b Bounds, t windowTones) {
	x, y, w, h := b.ints()
	r := b.Radius + 10

	c.Roundrect(x-12, y-40, w+24, h+52, r, r,
		attr("fill", t.body), attr("stroke", t.border), attr("stroke-width", "1"))
	c.Roundrect(x, y-30, w, 16, 8, 8, attr("fill", t.strip))
	c.Circle(x+14, y-22, 5, attr("fill", t.red))
	c.Circle(x+30, y-22, 5, attr("fill", amber400))
	c.Circle(x+46, y-22, 5, attr("fill", emerald))
	if t.body == white {
		c.Roundrect(x-2, y-2, w+4, h+4, b.Radius+2, b.Radius+2, attr("fill", slate50))
	} else {
		c.Roundrect(x-2, y-2, w+4, h+4, b.Radius+2, b.Radius+2, attr("fill", slate800))
	}
}
