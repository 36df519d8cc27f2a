package sink

import (
	"bytes"
	"fmt"

	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/assets"
	"github.com/younextz/screenshot-styler/pkg/render/background"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/markup"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// Options describe one render.
type Options struct {
	Preset      preset.ID          `json:"preset"`
	Palette     palette.Palette    `json:"palette"`
	TitleBar    frame.TitleBar     `json:"title_bar"`
	AspectRatio render.AspectRatio `json:"aspect_ratio"`
	ImageData   string             `json:"image_data"`
	ImageWidth  int                `json:"image_width"`
	ImageHeight int                `json:"image_height"`
	Animation   *animation.Config  `json:"animation,omitempty"`
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	assets        *assets.Provider
	reducedMotion bool
	frameStyle    frame.StyleID
	omitImage     bool
}

func WithAssets(p *assets.Provider) SVGOption   { return func(r *svgRenderer) { r.assets = p } }
func WithReducedMotion(on bool) SVGOption       { return func(r *svgRenderer) { r.reducedMotion = on } }
func WithFrameStyle(id frame.StyleID) SVGOption { return func(r *svgRenderer) { r.frameStyle = id } }

// WithoutImage leaves the screenshot out, keeping its backing card. The
// rasteriser paints the screenshot itself on top of this pass.
func WithoutImage() SVGOption { return func(r *svgRenderer) { r.omitImage = true } }

// RenderSVG returns the SVG document for o.
func RenderSVG(o Options, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	g := Layout(o)
	style := preset.StyleFor(o.Preset)

	var buf bytes.Buffer
	if g.Picture {
		r.renderPicture(&buf, o, g, style)
	} else {
		r.renderCard(&buf, o, g, style)
	}
	return bytes.TrimSpace(buf.Bytes())
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{frameStyle: frame.StyleNone}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderCard(buf *bytes.Buffer, o Options, g Geometry, style preset.Style) {
	openSVG(buf, g.Width, g.Height)
	buf.WriteString("<defs>\n")
	if f := style.Shadow.Filter(); f != "" {
		buf.WriteString(f + "\n")
	}
	buf.WriteString("</defs>\n")

	background.For(o.Preset)(buf, background.Canvas{
		Palette: o.Palette,
		Width:   g.Width,
		Height:  g.Height,
		Anim:    animation.New(o.Animation, r.reducedMotion),
	})
	r.renderFrameStyle(buf, g)
	frame.Chrome(buf, o.Preset, o.TitleBar, o.Palette, frame.Placement{
		CanvasWidth: float64(g.Width),
		FrameX:      g.FrameX,
		ContentTop:  g.ContentTop,
		ImageWidth:  g.ImageWidth,
		ImageHeight: g.ImageHeight,
	})

	openShadowGroup(buf, style.Shadow)
	x, y, w, h := markup.Num(g.FrameX), markup.Num(g.ImageY), markup.Num(g.ImageWidth), markup.Num(g.ImageHeight)
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%d" fill="white"/>`+"\n", x, y, w, h, g.CardRadius)
	if !r.omitImage {
		fmt.Fprintf(buf, `<image href="%s" x="%s" y="%s" width="%s" height="%s" clip-path="inset(0 round %dpx)" preserveAspectRatio="xMidYMid meet"/>`+"\n",
			markup.Escape(o.ImageData), x, y, w, h, g.CardRadius)
	}
	buf.WriteString("</g>\n</svg>\n")
}

func (r *svgRenderer) renderPicture(buf *bytes.Buffer, o Options, g Geometry, style preset.Style) {
	x, y, w, h := markup.Num(g.FrameX), markup.Num(g.ImageY), markup.Num(g.ImageWidth), markup.Num(g.ImageHeight)

	openSVG(buf, g.Width, g.Height)
	buf.WriteString("<defs>\n")
	if f := style.Shadow.Filter(); f != "" {
		buf.WriteString(f + "\n")
	}
	fmt.Fprintf(buf, `<clipPath id="rounded-clip"><rect x="%s" y="%s" width="%s" height="%s" rx="%d"/></clipPath>`+"\n",
		x, y, w, h, g.CardRadius)
	buf.WriteString("</defs>\n")

	background.Picture(buf, r.assets.Href(o.Preset), g.Width, g.Height)
	r.renderFrameStyle(buf, g)

	openShadowGroup(buf, style.Shadow)
	if r.omitImage {
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%d" fill="white"/>`+"\n", x, y, w, h, g.CardRadius)
	} else {
		fmt.Fprintf(buf, `<image href="%s" x="%s" y="%s" width="%s" height="%s" clip-path="url(#rounded-clip)" preserveAspectRatio="xMidYMid meet"/>`+"\n",
			markup.Escape(o.ImageData), x, y, w, h)
	}
	buf.WriteString("</g>\n</svg>\n")
}

func (r *svgRenderer) renderFrameStyle(buf *bytes.Buffer, g Geometry) {
	if r.frameStyle == "" || r.frameStyle == frame.StyleNone {
		return
	}
	frame.RenderStyle(buf, r.frameStyle, frame.Bounds{
		X: g.FrameX, Y: g.ImageY, W: g.ImageWidth, H: g.ImageHeight, Radius: g.CardRadius,
	})
}

func openSVG(buf *bytes.Buffer, w, h int) {
	fmt.Fprintf(buf, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n", w, h, w, h)
}

// openShadowGroup opens the card group, filtered only when the preset has a
// shadow.
func openShadowGroup(buf *bytes.Buffer, s preset.Shadow) {
	if s.IsZero() {
		buf.WriteString("<g>\n")
		return
	}
	buf.WriteString(`<g filter="url(#shadow)">` + "\n")
}
