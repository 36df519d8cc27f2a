package code

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/younextz/screenshot-styler/pkg/fonts"
	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/background"
	"github.com/younextz/screenshot-styler/pkg/render/markup"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// Layout defaults.
const (
	DefaultFontSize   = 14
	DefaultLineHeight = 22
	DefaultPadding    = 24
	CardRadius        = 12

	minWidth  = 400
	minHeight = 200
	charWidth = 0.6
	nbsp      = "\u00a0"
)

// Options describe one snippet render. Zero FontSize, LineHeight and Padding
// take the defaults.
type Options struct {
	Preset      string             `json:"preset"`
	Palette     palette.Palette    `json:"palette"`
	AspectRatio render.AspectRatio `json:"aspect_ratio"`
	Code        string             `json:"code"`
	Theme       string             `json:"theme"`
	Language    string             `json:"language"`
	FontSize    float64            `json:"font_size,omitempty"`
	LineHeight  float64            `json:"line_height,omitempty"`
	Padding     float64            `json:"padding,omitempty"`
	EmbedFont   bool               `json:"embed_font,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.LineHeight <= 0 {
		o.LineHeight = DefaultLineHeight
	}
	if o.Padding <= 0 {
		o.Padding = DefaultPadding
	}
	return o
}

// Dimensions returns the size of the code card: the longest line at 0.6em
// per character and every line at lineHeight, plus padding, but never less
// than 400×200.
func Dimensions(code string, fontSize, lineHeight, padding float64) (w, h float64) {
	lines := strings.Split(code, "\n")
	longest := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > longest {
			longest = n
		}
	}
	w = math.Max(minWidth, float64(longest)*fontSize*charWidth+padding*2)
	h = math.Max(minHeight, float64(len(lines))*lineHeight+padding*2)
	return w, h
}

// CanvasSize returns the size of the document RenderSVG produces for o.
func CanvasSize(o Options) render.Size {
	o = o.withDefaults()
	w, h := Dimensions(o.Code, o.FontSize, o.LineHeight, o.Padding)
	return render.CalculateOutputSize(w, h, o.AspectRatio)
}

// RenderSVG returns the SVG document for o.
func RenderSVG(o Options) []byte {
	o = o.withDefaults()
	theme := ThemeOrDefault(o.Theme)

	cardW, cardH := Dimensions(o.Code, o.FontSize, o.LineHeight, o.Padding)
	size := render.CalculateOutputSize(cardW, cardH, o.AspectRatio)
	x := (float64(size.Width) - cardW) / 2
	y := (float64(size.Height) - cardH) / 2

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		size.Width, size.Height, size.Width, size.Height)
	buf.WriteString("<defs>\n")
	buf.WriteString(ShadowFor(o.Preset).Filter() + "\n")
	if o.EmbedFont {
		buf.WriteString("<style>" + fonts.MonoFontFace() + "</style>\n")
	}
	buf.WriteString("</defs>\n")

	backgroundFor(o.Preset)(&buf, background.Canvas{Palette: o.Palette, Width: size.Width, Height: size.Height})

	buf.WriteString(`<g filter="url(#shadow)">` + "\n")
	fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%d" fill="%s"/>`+"\n",
		markup.Num(x), markup.Num(y), markup.Num(cardW), markup.Num(cardH), CardRadius, theme.Background)
	writeLines(&buf, Highlight(o.Code, o.Language, theme.ID), x+o.Padding, y+o.Padding+o.FontSize, o, theme.Foreground)
	buf.WriteString("</g>\n</svg>\n")
	return bytes.TrimSpace(buf.Bytes())
}

func writeLines(buf *bytes.Buffer, lines [][]Token, x, y float64, o Options, fg string) {
	family := markup.Escape(fonts.MonoFamily)
	for i, line := range lines {
		ly := markup.Num(y + float64(i)*o.LineHeight)
		if len(line) == 0 {
			fmt.Fprintf(buf, `<text x="%s" y="%s" xml:space="preserve" font-family="%s" font-size="%s" fill="%s">%s</text>`+"\n",
				markup.Num(x), ly, family, markup.Num(o.FontSize), fg, nbsp)
			continue
		}
		fmt.Fprintf(buf, `<text x="%s" y="%s" xml:space="preserve" font-family="%s" font-size="%s">`,
			markup.Num(x), ly, family, markup.Num(o.FontSize))
		for _, tok := range line {
			fmt.Fprintf(buf, `<tspan fill="%s">%s</tspan>`, tok.Color, markup.Escape(PreserveWhitespace(tok.Text)))
		}
		buf.WriteString("</text>\n")
	}
}

var whitespace = strings.NewReplacer("\t", nbsp+nbsp+nbsp+nbsp, " ", nbsp)

// PreserveWhitespace expands tabs to four spaces and makes every space
// non-breaking so renderers keep indentation.
func PreserveWhitespace(s string) string {
	return whitespace.Replace(s)
}

// ShadowFor returns the card shadow for a code preset. Frame and card ids
// use the heavy card shadow, except the outlined card.
func ShadowFor(id string) preset.Shadow {
	switch id {
	case GradientBold:
		return preset.ShadowLarge
	case DotGrid:
		return preset.ShadowSubtle
	case string(preset.CardOutlined):
		return preset.ShadowOutline
	}
	if p, ok := preset.Lookup(preset.ID(id)); ok && p.Kind != preset.KindBackground {
		return preset.ShadowCard
	}
	return preset.ShadowSoft
}
