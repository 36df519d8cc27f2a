// Package background generates the SVG fragments painted behind the
// screenshot: gradients, radial meshes, solid fills, tiling patterns and
// picture backgrounds.
//
// Every generator writes into a [bytes.Buffer] and must not fail: colours are
// looked up through [palette.Palette.Swatch] so short palettes degrade to the
// base swatch, and every element id is prefixed with a per-preset base id so
// fragments never collide inside one document.
package background

import (
	"bytes"
	"fmt"

	"github.com/younextz/screenshot-styler/pkg/render/animation"
	"github.com/younextz/screenshot-styler/pkg/render/markup"
	"github.com/younextz/screenshot-styler/pkg/render/palette"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// Canvas is what a generator paints onto.
type Canvas struct {
	Palette palette.Palette
	Width   int
	Height  int
	Anim    animation.Animator
}

// Generator writes one background fragment.
type Generator func(buf *bytes.Buffer, c Canvas)

var registry = map[preset.ID]Generator{
	preset.GradientSunset:   GradientSunset,
	preset.GradientOcean:    GradientOcean,
	preset.GradientAurora:   GradientAurora,
	preset.GradientRose:     GradientRose,
	preset.GradientMidnight: GradientMidnight,
	preset.GradientMint:     GradientMint,
	preset.GradientWave:     GradientWave,
	preset.MeshCosmic:       MeshCosmic,
	preset.MeshTropical:     MeshTropical,
	preset.MeshPastel:       MeshPastel,
	preset.MeshNeon:         MeshNeon,
	preset.SolidDark:        SolidDark,
	preset.SolidLight:       SolidLight,
	preset.SolidGradient:    SolidGradient,
	preset.PatternDots:      PatternDots,
	preset.PatternGrid:      PatternGrid,
	preset.PatternNoise:     PatternNoise,
}

// For returns the generator for id. Frame, card, picture and unknown presets
// get [Flat].
func For(id preset.ID) Generator {
	if g, ok := registry[id]; ok {
		return g
	}
	return Flat
}

// Has reports whether id has a dedicated generator.
func Has(id preset.ID) bool {
	_, ok := registry[id]
	return ok
}

// Render is a convenience that runs the generator for id into a new buffer.
func Render(id preset.ID, c Canvas) []byte {
	var buf bytes.Buffer
	For(id)(&buf, c)
	return buf.Bytes()
}

// Flat fills the canvas with the base swatch.
func Flat(buf *bytes.Buffer, c Canvas) {
	fill(buf, c, c.Palette.Swatch(0))
}

// Picture paints a raster image scaled to cover the canvas.
func Picture(buf *bytes.Buffer, href string, width, height int) {
	fmt.Fprintf(buf, `<image href="%s" x="0" y="0" width="%d" height="%d" preserveAspectRatio="xMidYMid slice"/>`+"\n",
		markup.Escape(href), width, height)
}

// Overlay layers a soft glow, a vignette and film grain over the canvas.
// Element ids are baseID-glow, baseID-vignette and baseID-grain.
func Overlay(buf *bytes.Buffer, width, height int, baseID string) {
	fmt.Fprintf(buf, `<defs>
<filter id="%[1]s-grain" x="-20%%" y="-20%%" width="140%%" height="140%%">
<feTurbulence type="fractalNoise" baseFrequency="0.8" numOctaves="2" seed="2" result="noise"/>
<feColorMatrix type="saturate" values="0"/>
<feComponentTransfer>
<feFuncA type="linear" slope="0.06"/>
</feComponentTransfer>
</filter>
<radialGradient id="%[1]s-vignette" cx="50%%" cy="50%%" r="70%%">
<stop offset="60%%" stop-color="#1A1A1A" stop-opacity="0"/>
<stop offset="100%%" stop-color="#1A1A1A" stop-opacity="0.18"/>
</radialGradient>
<radialGradient id="%[1]s-glow" cx="35%%" cy="25%%" r="45%%">
<stop offset="0%%" stop-color="#E6E6E6" stop-opacity="0.14"/>
<stop offset="100%%" stop-color="#E6E6E6" stop-opacity="0"/>
</radialGradient>
</defs>
`, baseID)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="url(#%s-glow)"/>`+"\n", width, height, baseID)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="url(#%s-vignette)"/>`+"\n", width, height, baseID)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" filter="url(#%s-grain)" opacity="0.35"/>`+"\n", width, height, baseID)
}

// =============================================================================
// Shared writers
// =============================================================================

// stop is one gradient stop. A negative opacity omits stop-opacity.
type stop struct {
	offset  int
	color   string
	opacity float64
	anim    string
}

func solid(offset int, color string) stop { return stop{offset: offset, color: color, opacity: -1} }

func fill(buf *bytes.Buffer, c Canvas, paint string) {
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="%s"/>`+"\n", c.Width, c.Height, paint)
}

func fillURL(buf *bytes.Buffer, c Canvas, id string) {
	fill(buf, c, "url(#"+id+")")
}

func writeStops(buf *bytes.Buffer, stops []stop) {
	for _, s := range stops {
		fmt.Fprintf(buf, `<stop offset="%d%%" stop-color="%s"`, s.offset, s.color)
		if s.opacity >= 0 {
			fmt.Fprintf(buf, ` stop-opacity="%s"`, markup.Num(s.opacity))
		}
		if s.anim == "" {
			buf.WriteString("/>\n")
			continue
		}
		buf.WriteString(">\n")
		buf.WriteString(s.anim)
		buf.WriteString("</stop>\n")
	}
}

// linear writes a <linearGradient> whose vector is given in percent. Stops
// get stop-color animation from the animator.
func linear(buf *bytes.Buffer, c Canvas, id string, x1, y1, x2, y2 int, stops []stop) {
	fmt.Fprintf(buf, `<linearGradient id="%s" x1="%d%%" y1="%d%%" x2="%d%%" y2="%d%%">`+"\n", id, x1, y1, x2, y2)
	buf.WriteString(c.Anim.LinearGradient(x1, y1, x2, y2))
	colors := make([]string, len(stops))
	for i, s := range stops {
		colors[i] = s.color
	}
	for i := range stops {
		if stops[i].anim == "" {
			stops[i].anim = c.Anim.StopColor(i, colors)
		}
	}
	writeStops(buf, stops)
	buf.WriteString("</linearGradient>\n")
}

// radial writes a <radialGradient> centred at (cx,cy) percent.
func radial(buf *bytes.Buffer, id string, cx, cy, r int, anim string, stops []stop) {
	fmt.Fprintf(buf, `<radialGradient id="%s" cx="%d%%" cy="%d%%" r="%d%%">`+"\n", id, cx, cy, r)
	buf.WriteString(anim)
	writeStops(buf, stops)
	buf.WriteString("</radialGradient>\n")
}
