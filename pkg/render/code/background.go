package code

import (
	"bytes"
	"fmt"

	"github.com/younextz/screenshot-styler/pkg/render/background"
	"github.com/younextz/screenshot-styler/pkg/render/markup"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// Code backgrounds. Frame and card preset ids are accepted too and paint the
// base swatch.
const (
	GradientSoft = "gradient-soft"
	GradientBold = "gradient-bold"
	MeshGradient = "mesh-gradient"
	BlobDuo      = "blob-duo"
	BlobTrio     = "blob-trio"
	DotGrid      = "dot-grid"
)

// DefaultPreset is the code background used when nothing is selected.
const DefaultPreset = GradientSoft

// Preset is one code background.
type Preset struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var presets = []Preset{
	{GradientSoft, "Soft Gradient"},
	{GradientBold, "Bold Gradient"},
	{MeshGradient, "Mesh Gradient"},
	{BlobDuo, "Blob Duo"},
	{BlobTrio, "Blob Trio"},
	{DotGrid, "Dot Grid"},
}

// Presets returns the code backgrounds in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ValidatePreset accepts the code backgrounds and every screenshot preset id.
func ValidatePreset(id string) error {
	if _, ok := generators[id]; ok {
		return nil
	}
	if _, ok := preset.Parse(id); ok {
		return nil
	}
	return fmt.Errorf("invalid code preset: %q", id)
}

var generators = map[string]background.Generator{
	GradientSoft: gradientSoft,
	GradientBold: gradientBold,
	MeshGradient: meshGradient,
	BlobDuo:      blobDuo,
	BlobTrio:     blobTrio,
	DotGrid:      dotGrid,
}

func backgroundFor(id string) background.Generator {
	if g, ok := generators[id]; ok {
		return g
	}
	return background.Flat
}

func fill(buf *bytes.Buffer, c background.Canvas, paint string) {
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="%s"/>`+"\n", c.Width, c.Height, paint)
}

func gradientSoft(buf *bytes.Buffer, c background.Canvas) {
	const id = "grad-soft"
	p := c.Palette
	fmt.Fprintf(buf, `<defs>
<linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
<stop offset="0%%" stop-color="%s"/>
<stop offset="70%%" stop-color="%s"/>
<stop offset="100%%" stop-color="%s"/>
</linearGradient>
</defs>
`, id, p.Swatch(0), p.Swatch(1, 0), p.Swatch(1, 0))
	fill(buf, c, "url(#"+id+")")
	background.Overlay(buf, c.Width, c.Height, id)
}

func gradientBold(buf *bytes.Buffer, c background.Canvas) {
	const id = "grad-bold"
	p := c.Palette
	fmt.Fprintf(buf, `<defs>
<linearGradient id="%s" x1="-20%%" y1="0%%" x2="120%%" y2="100%%">
<stop offset="0%%" stop-color="%s"/>
<stop offset="55%%" stop-color="%s"/>
<stop offset="100%%" stop-color="%s"/>
</linearGradient>
</defs>
`, id, p.Swatch(2, 0), p.Swatch(3, 1), p.Swatch(4, 0))
	fill(buf, c, "url(#"+id+")")
	background.Overlay(buf, c.Width, c.Height, id)
}

func meshGradient(buf *bytes.Buffer, c background.Canvas) {
	const id = "mesh"
	p := c.Palette
	fmt.Fprintf(buf, `<defs>
<radialGradient id="%[1]s-1" cx="28%%" cy="32%%" r="45%%">
<stop offset="0%%" stop-color="%[2]s" stop-opacity="0.9"/>
<stop offset="100%%" stop-color="%[4]s" stop-opacity="1"/>
</radialGradient>
<radialGradient id="%[1]s-2" cx="72%%" cy="68%%" r="50%%">
<stop offset="0%%" stop-color="%[3]s" stop-opacity="0.9"/>
<stop offset="100%%" stop-color="%[4]s" stop-opacity="1"/>
</radialGradient>
</defs>
`, id, p.Swatch(2, 0), p.Swatch(3, 1), p.Swatch(0))
	background.Flat(buf, c)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="url(#%s-1)" opacity="0.9"/>`+"\n", c.Width, c.Height, id)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="url(#%s-2)" opacity="0.9"/>`+"\n", c.Width, c.Height, id)
	background.Overlay(buf, c.Width, c.Height, id)
}

// ellipse is a blurred blob placed in canvas fractions.
type ellipse struct {
	cx, cy, rx, ry float64
	color          string
}

func blobs(buf *bytes.Buffer, c background.Canvas, id string, blur int, opacity float64, es []ellipse) {
	fmt.Fprintf(buf, `<defs>
<filter id="%s">
<feGaussianBlur in="SourceGraphic" stdDeviation="%d"/>
</filter>
</defs>
`, id, blur)
	background.Flat(buf, c)
	w, h := float64(c.Width), float64(c.Height)
	for _, e := range es {
		fmt.Fprintf(buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" filter="url(#%s)" opacity="%s"/>`+"\n",
			markup.Num(w*e.cx), markup.Num(h*e.cy), markup.Num(w*e.rx), markup.Num(h*e.ry),
			e.color, id, markup.Num(opacity))
	}
	background.Overlay(buf, c.Width, c.Height, id)
}

func blobDuo(buf *bytes.Buffer, c background.Canvas) {
	p := c.Palette
	blobs(buf, c, "blur-duo", 80, 0.6, []ellipse{
		{0.3, 0.4, 0.3, 0.35, p.Swatch(2, 0)},
		{0.7, 0.6, 0.35, 0.3, p.Swatch(3, 1)},
	})
}

func blobTrio(buf *bytes.Buffer, c background.Canvas) {
	p := c.Palette
	blobs(buf, c, "blur-trio", 70, 0.55, []ellipse{
		{0.25, 0.35, 0.25, 0.3, p.Swatch(2, 0)},
		{0.75, 0.45, 0.3, 0.25, p.Swatch(3, 1)},
		{0.5, 0.75, 0.35, 0.28, p.Swatch(4, 2)},
	})
}

func dotGrid(buf *bytes.Buffer, c background.Canvas) {
	fmt.Fprintf(buf, `<defs>
<pattern id="dot-pattern" x="0" y="0" width="30" height="30" patternUnits="userSpaceOnUse">
<circle cx="15" cy="15" r="2" fill="%s" opacity="0.25"/>
</pattern>
</defs>
`, c.Palette.Swatch(2, 1))
	background.Flat(buf, c)
	fill(buf, c, "url(#dot-pattern)")
	background.Overlay(buf, c.Width, c.Height, "dot")
}
