// Package palette defines the colour palettes applied to backgrounds and
// frames, and the safe swatch lookup every generator goes through.
//
// Generators never index a swatch slice directly. [Palette.Swatch] walks a
// list of preferred indices and falls back to swatch 0, then to
// [FallbackColor], so a palette with fewer than five swatches still renders
// and no attribute ever receives an empty colour.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FallbackColor is used when a palette has no usable swatch at all.
const FallbackColor = "#1A1A1A"

// Palette is an ordered list of hex colours. By convention swatch 0 is the
// darkest/base tone and later swatches are accents.
type Palette struct {
	ID       string   `json:"id" toml:"id" yaml:"id" validate:"required"`
	Label    string   `json:"label" toml:"label" yaml:"label"`
	Swatches []string `json:"swatches" toml:"swatches" yaml:"swatches" validate:"min=1,max=8,dive,hexcolor"`
}

// Swatch returns the first existing, non-empty swatch among indices. When none
// of them exist it returns swatch 0, and [FallbackColor] for an empty palette.
func (p Palette) Swatch(indices ...int) string {
	if c, ok := p.lookup(indices); ok {
		return c
	}
	if len(p.Swatches) > 0 && p.Swatches[0] != "" {
		return p.Swatches[0]
	}
	return FallbackColor
}

// SwatchOr is like Swatch but returns def instead of swatch 0 when none of
// the indices exist.
func (p Palette) SwatchOr(def string, indices ...int) string {
	if c, ok := p.lookup(indices); ok {
		return c
	}
	return def
}

func (p Palette) lookup(indices []int) (string, bool) {
	for _, i := range indices {
		if i >= 0 && i < len(p.Swatches) && p.Swatches[i] != "" {
			return p.Swatches[i], true
		}
	}
	return "", false
}

// Len returns the number of swatches.
func (p Palette) Len() int { return len(p.Swatches) }

// Validate checks that the palette has at least one swatch and that every
// swatch parses as a hex colour.
func (p Palette) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("palette id cannot be empty")
	}
	if len(p.Swatches) == 0 {
		return fmt.Errorf("palette %q has no swatches", p.ID)
	}
	for i, s := range p.Swatches {
		if _, err := colorful.Hex(s); err != nil {
			return fmt.Errorf("palette %q swatch %d: invalid colour %q", p.ID, i, s)
		}
	}
	return nil
}

// IsDark reports whether the base swatch is dark, measured by CIE L*.
func (p Palette) IsDark() bool {
	c, err := colorful.Hex(p.Swatch(0))
	if err != nil {
		return true
	}
	l, _, _ := c.Lab()
	return l < 0.5
}

// Contrast returns the swatch (or white/black) that reads best on top of the
// base swatch.
func (p Palette) Contrast() string {
	base, err := colorful.Hex(p.Swatch(0))
	if err != nil {
		return "#FFFFFF"
	}
	best, bestDist := "", -1.0
	for _, s := range append([]string{"#FFFFFF", "#000000"}, p.Swatches[min(1, len(p.Swatches)):]...) {
		c, err := colorful.Hex(s)
		if err != nil {
			continue
		}
		if d := base.DistanceLab(c); d > bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
