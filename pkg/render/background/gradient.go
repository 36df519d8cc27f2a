package background

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/younextz/screenshot-styler/pkg/render/markup"
)

// GradientSunset is a horizontal three-stop gradient.
func GradientSunset(buf *bytes.Buffer, c Canvas) {
	threeStop(buf, c, "grad-sunset", 0, 50, 100, 50)
}

// GradientOcean is GradientSunset on the diagonal.
func GradientOcean(buf *bytes.Buffer, c Canvas) {
	threeStop(buf, c, "grad-ocean", 0, 0, 100, 100)
}

func threeStop(buf *bytes.Buffer, c Canvas, id string, x1, y1, x2, y2 int) {
	p := c.Palette
	buf.WriteString("<defs>\n")
	linear(buf, c, id, x1, y1, x2, y2, []stop{
		solid(0, p.Swatch(0)),
		solid(50, p.Swatch(2, 1)),
		solid(100, p.Swatch(4, 3, 1)),
	})
	buf.WriteString("</defs>\n")
	fillURL(buf, c, id)
	Overlay(buf, c.Width, c.Height, id)
}

// GradientAurora is a rising multi-stop gradient with two coloured glows.
func GradientAurora(buf *bytes.Buffer, c Canvas) {
	const id = "grad-aurora"
	p := c.Palette
	buf.WriteString("<defs>\n")
	linear(buf, c, id+"-base", 0, 100, 100, 0, []stop{
		solid(0, p.Swatch(0)),
		solid(35, p.Swatch(1, 0)),
		solid(65, p.Swatch(2, 1)),
		solid(100, p.Swatch(3, 2, 0)),
	})
	radial(buf, id+"-glow1", 20, 80, 60, c.Anim.Blob(0, 2, 20, 80, 60), []stop{
		{offset: 0, color: p.Swatch(4, 2), opacity: 0.4},
		{offset: 100, color: p.Swatch(0), opacity: 0},
	})
	radial(buf, id+"-glow2", 80, 30, 50, c.Anim.Blob(1, 2, 80, 30, 50), []stop{
		{offset: 0, color: p.Swatch(3, 1), opacity: 0.35},
		{offset: 100, color: p.Swatch(0), opacity: 0},
	})
	buf.WriteString("</defs>\n")
	fillURL(buf, c, id+"-base")
	fillURL(buf, c, id+"-glow1")
	fillURL(buf, c, id+"-glow2")
	Overlay(buf, c.Width, c.Height, id)
}

// GradientRose is a soft diagonal gradient with a white shimmer.
func GradientRose(buf *bytes.Buffer, c Canvas) {
	const id = "grad-rose"
	p := c.Palette
	buf.WriteString("<defs>\n")
	linear(buf, c, id, 0, 0, 100, 100, []stop{
		solid(0, p.Swatch(0)),
		solid(60, p.Swatch(1, 0)),
		solid(100, p.Swatch(2, 1, 0)),
	})
	radial(buf, id+"-shimmer", 70, 30, 50, "", []stop{
		{offset: 0, color: "#FFFFFF", opacity: 0.15, anim: c.Anim.Opacity("stop-opacity", 0.15)},
		{offset: 100, color: "#FFFFFF", opacity: 0},
	})
	buf.WriteString("</defs>\n")
	fillURL(buf, c, id)
	fillURL(buf, c, id+"-shimmer")
	Overlay(buf, c.Width, c.Height, id)
}

// GradientMidnight is a dark diagonal gradient with a faint starlight wash.
func GradientMidnight(buf *bytes.Buffer, c Canvas) {
	const id = "grad-midnight"
	p := c.Palette
	buf.WriteString("<defs>\n")
	linear(buf, c, id, 0, 0, 100, 100, []stop{
		solid(0, p.Swatch(0)),
		solid(50, p.Swatch(1, 0)),
		solid(100, p.Swatch(2, 1, 0)),
	})
	radial(buf, id+"-stars", 50, 50, 70, "", []stop{
		{offset: 0, color: p.SwatchOr("#FFFFFF", 4, 3), opacity: 0.08, anim: c.Anim.Opacity("stop-opacity", 0.08)},
		{offset: 100, color: p.Swatch(0), opacity: 0},
	})
	buf.WriteString("</defs>\n")
	fillURL(buf, c, id)
	fillURL(buf, c, id+"-stars")
	Overlay(buf, c.Width, c.Height, id)
}

// GradientMint runs from the top-right corner to the bottom-left.
func GradientMint(buf *bytes.Buffer, c Canvas) {
	const id = "grad-mint"
	p := c.Palette
	buf.WriteString("<defs>\n")
	linear(buf, c, id, 100, 0, 0, 100, []stop{
		solid(0, p.Swatch(0)),
		solid(50, p.Swatch(1, 0)),
		solid(100, p.Swatch(2, 1, 0)),
	})
	buf.WriteString("</defs>\n")
	fillURL(buf, c, id)
	Overlay(buf, c.Width, c.Height, id)
}

// waveLayer is one band of GradientWave: its crest line as a fraction of the
// canvas height, amplitude as a fraction of the height, and fill.
type waveLayer struct {
	level     float64
	amplitude float64
	swatches  []int
	opacity   float64
}

var waveLayers = []waveLayer{
	{0.55, 0.05, []int{2, 1}, 0.35},
	{0.67, 0.04, []int{3, 2}, 0.45},
	{0.80, 0.03, []int{4, 3, 1}, 0.6},
}

// GradientWave is a horizontal gradient with three translucent sine bands
// across the lower half. When animated the bands drift sideways by one
// wavelength, staggered per layer.
func GradientWave(buf *bytes.Buffer, c Canvas) {
	const id = "grad-wave"
	p := c.Palette
	buf.WriteString("<defs>\n")
	linear(buf, c, id, 0, 0, 100, 0, []stop{
		solid(0, p.Swatch(0)),
		solid(50, p.Swatch(1, 0)),
		solid(100, p.Swatch(2, 1, 0)),
	})
	buf.WriteString("</defs>\n")
	fillURL(buf, c, id)

	w, h := float64(c.Width), float64(c.Height)
	wavelength := w / 2
	for i, l := range waveLayers {
		d := wavePath(w, h, wavelength, l.level*h, l.amplitude*h)
		anim := c.Anim.Drift(i, len(waveLayers), -wavelength, 0)
		fmt.Fprintf(buf, `<path d="%s" fill="%s" opacity="%s"`, d, p.Swatch(l.swatches...), markup.Num(l.opacity))
		if anim == "" {
			buf.WriteString("/>\n")
			continue
		}
		buf.WriteString(">\n")
		buf.WriteString(anim)
		buf.WriteString("</path>\n")
	}
	Overlay(buf, c.Width, c.Height, id)
}

// wavePath traces a sine-like crest from one wavelength left of the canvas
// to one wavelength past its right edge, then closes along the bottom, so a
// horizontal shift of one wavelength never exposes an edge.
func wavePath(w, h, wavelength, y, amp float64) string {
	if wavelength <= 0 {
		wavelength = 1
	}
	var b strings.Builder
	x := -wavelength
	fmt.Fprintf(&b, "M%s %s", round2(x), round2(y))
	fmt.Fprintf(&b, " Q%s %s %s %s", round2(x+wavelength/4), round2(y-amp), round2(x+wavelength/2), round2(y))
	x += wavelength / 2
	for x < w+wavelength {
		x += wavelength / 2
		fmt.Fprintf(&b, " T%s %s", round2(x), round2(y))
	}
	fmt.Fprintf(&b, " L%s %s L%s %s Z", round2(x), round2(h), round2(-wavelength), round2(h))
	return b.String()
}

func round2(v float64) string {
	return markup.Num(math.Round(v*100) / 100)
}
