package background

import (
	"bytes"
	"fmt"
)

// SolidDark is the base swatch with the soft overlay.
func SolidDark(buf *bytes.Buffer, c Canvas) {
	Flat(buf, c)
	Overlay(buf, c.Width, c.Height, "solid-dark")
}

// SolidLight is the base swatch with the soft overlay.
func SolidLight(buf *bytes.Buffer, c Canvas) {
	Flat(buf, c)
	Overlay(buf, c.Width, c.Height, "solid-light")
}

// SolidGradient is a barely-there diagonal between the first two swatches.
func SolidGradient(buf *bytes.Buffer, c Canvas) {
	const id = "solid-gradient"
	p := c.Palette
	buf.WriteString("<defs>\n")
	linear(buf, c, id, 0, 0, 100, 100, []stop{
		solid(0, p.Swatch(0)),
		solid(100, p.Swatch(1, 0)),
	})
	buf.WriteString("</defs>\n")
	fillURL(buf, c, id)
	Overlay(buf, c.Width, c.Height, id)
}

// PatternDots tiles small dots every 24px.
func PatternDots(buf *bytes.Buffer, c Canvas) {
	const id = "pattern-dots"
	p := c.Palette
	fmt.Fprintf(buf, `<defs>
<pattern id="%s-pattern" x="0" y="0" width="24" height="24" patternUnits="userSpaceOnUse">
<circle cx="12" cy="12" r="2" fill="%s" opacity="0.3"/>
</pattern>
</defs>
`, id, p.Swatch(2, 1))
	Flat(buf, c)
	fillURL(buf, c, id+"-pattern")
	Overlay(buf, c.Width, c.Height, id)
}

// PatternGrid draws faint 40px grid lines.
func PatternGrid(buf *bytes.Buffer, c Canvas) {
	const id = "pattern-grid"
	line := c.Palette.Swatch(2, 1)
	fmt.Fprintf(buf, `<defs>
<pattern id="%[1]s-pattern" x="0" y="0" width="40" height="40" patternUnits="userSpaceOnUse">
<line x1="40" y1="0" x2="40" y2="40" stroke="%[2]s" stroke-width="1" opacity="0.15"/>
<line x1="0" y1="40" x2="40" y2="40" stroke="%[2]s" stroke-width="1" opacity="0.15"/>
</pattern>
</defs>
`, id, line)
	Flat(buf, c)
	fillURL(buf, c, id+"-pattern")
	Overlay(buf, c.Width, c.Height, id)
}

// PatternNoise blends fractal noise into the base swatch.
func PatternNoise(buf *bytes.Buffer, c Canvas) {
	const id = "pattern-noise"
	base := c.Palette.Swatch(0)
	fmt.Fprintf(buf, `<defs>
<filter id="%s-noise" x="0%%" y="0%%" width="100%%" height="100%%">
<feTurbulence type="fractalNoise" baseFrequency="0.7" numOctaves="3" seed="5" result="noise"/>
<feColorMatrix type="saturate" values="0"/>
<feComponentTransfer>
<feFuncA type="linear" slope="0.12"/>
</feComponentTransfer>
<feBlend in="SourceGraphic" mode="overlay"/>
</filter>
</defs>
`, id)
	Flat(buf, c)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="%s" filter="url(#%s-noise)"/>`+"\n", c.Width, c.Height, base, id)
	Overlay(buf, c.Width, c.Height, id)
}
