package background

import (
	"bytes"
	"fmt"
)

// blob is one radial colour spot of a mesh.
type blob struct {
	cx, cy, r int
	swatches  []int
	opacity   float64
}

var (
	cosmicBlobs = []blob{
		{25, 25, 50, []int{2, 0}, 0.9},
		{75, 30, 45, []int{3, 1}, 0.85},
		{50, 75, 55, []int{4, 2}, 0.8},
		{20, 70, 40, []int{1, 0}, 0.7},
	}
	tropicalBlobs = []blob{
		{15, 40, 55, []int{1, 0}, 0.95},
		{85, 25, 50, []int{2, 1}, 0.9},
		{60, 80, 60, []int{3, 2}, 0.85},
		{30, 90, 45, []int{4, 3}, 0.75},
	}
	pastelBlobs = []blob{
		{30, 20, 50, []int{1, 0}, 0.7},
		{70, 35, 45, []int{2, 1}, 0.65},
		{45, 70, 55, []int{3, 2}, 0.6},
		{85, 75, 40, []int{4, 3}, 0.55},
	}
	neonBlobs = []blob{
		{20, 30, 55, []int{2, 0}, 0.95},
		{80, 20, 50, []int{3, 1}, 0.9},
		{50, 80, 60, []int{4, 2}, 0.85},
		{75, 65, 45, []int{1, 0}, 0.8},
	}
)

// MeshCosmic layers four purple and blue glows over the base swatch.
func MeshCosmic(buf *bytes.Buffer, c Canvas) { mesh(buf, c, "mesh-cosmic", cosmicBlobs, false) }

// MeshTropical layers four saturated glows over the base swatch.
func MeshTropical(buf *bytes.Buffer, c Canvas) { mesh(buf, c, "mesh-tropical", tropicalBlobs, false) }

// MeshPastel layers four soft glows over the base swatch.
func MeshPastel(buf *bytes.Buffer, c Canvas) { mesh(buf, c, "mesh-pastel", pastelBlobs, false) }

// MeshNeon is a mesh whose glows are bloomed with a blur filter.
func MeshNeon(buf *bytes.Buffer, c Canvas) { mesh(buf, c, "mesh-neon", neonBlobs, true) }

func mesh(buf *bytes.Buffer, c Canvas, id string, blobs []blob, bloom bool) {
	p := c.Palette
	buf.WriteString("<defs>\n")
	if bloom {
		fmt.Fprintf(buf, `<filter id="%s-bloom">
<feGaussianBlur stdDeviation="3" result="coloredBlur"/>
<feMerge>
<feMergeNode in="coloredBlur"/>
<feMergeNode in="SourceGraphic"/>
</feMerge>
</filter>
`, id)
	}
	for i, b := range blobs {
		radial(buf, fmt.Sprintf("%s-%d", id, i+1), b.cx, b.cy, b.r,
			c.Anim.Blob(i, len(blobs), b.cx, b.cy, b.r),
			[]stop{
				{offset: 0, color: p.Swatch(b.swatches...), opacity: b.opacity},
				{offset: 100, color: p.Swatch(0), opacity: 0},
			})
	}
	buf.WriteString("</defs>\n")
	fill(buf, c, p.Swatch(0))
	if bloom {
		fmt.Fprintf(buf, `<g filter="url(#%s-bloom)">`+"\n", id)
	}
	for i := range blobs {
		fillURL(buf, c, fmt.Sprintf("%s-%d", id, i+1))
	}
	if bloom {
		buf.WriteString("</g>\n")
	}
	Overlay(buf, c.Width, c.Height, id)
}
