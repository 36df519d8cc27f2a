package render

import (
	"fmt"
	"math"
	"strings"
)

// Padding is the space added on every side of the image before the aspect
// ratio is applied.
const Padding = 60

// AspectRatio selects the output canvas shape.
type AspectRatio string

const (
	AspectAuto      AspectRatio = "auto"
	AspectSquare    AspectRatio = "1:1"
	AspectWide      AspectRatio = "16:9"
	AspectClassic   AspectRatio = "4:3"
	AspectPortrait  AspectRatio = "9:16"
	AspectOpenGraph AspectRatio = "1200x630"
)

// DefaultAspectRatio is used when nothing else is configured.
const DefaultAspectRatio = AspectAuto

var aspectRatios = []AspectRatio{
	AspectAuto, AspectSquare, AspectWide, AspectClassic, AspectPortrait, AspectOpenGraph,
}

var ratioValues = map[AspectRatio]float64{
	AspectSquare:    1,
	AspectWide:      16.0 / 9.0,
	AspectClassic:   4.0 / 3.0,
	AspectPortrait:  9.0 / 16.0,
	AspectOpenGraph: 1200.0 / 630.0,
}

// AspectRatios returns every supported ratio in display order.
func AspectRatios() []AspectRatio {
	out := make([]AspectRatio, len(aspectRatios))
	copy(out, aspectRatios)
	return out
}

// ParseAspectRatio reports whether s names a supported ratio.
func ParseAspectRatio(s string) (AspectRatio, bool) {
	for _, ar := range aspectRatios {
		if string(ar) == s {
			return ar, true
		}
	}
	return "", false
}

// ValidateAspectRatio returns an error naming the valid ratios when s is not one.
func ValidateAspectRatio(s string) error {
	if _, ok := ParseAspectRatio(s); ok {
		return nil
	}
	names := make([]string, len(aspectRatios))
	for i, ar := range aspectRatios {
		names[i] = string(ar)
	}
	return fmt.Errorf("invalid aspect ratio: %q (must be one of: %s)", s, strings.Join(names, ", "))
}

// Value returns the width/height ratio, or false for auto and unknown ratios.
func (a AspectRatio) Value() (float64, bool) {
	r, ok := ratioValues[a]
	return r, ok
}

// Size is a canvas size in whole pixels.
type Size struct {
	Width  int
	Height int
}

// CalculateOutputSize returns the canvas for an image of w×h pixels.
//
// The image is padded by [Padding] on each side. For a named ratio the padded
// box is then grown along exactly one axis until it matches the ratio, so the
// result is never smaller than the padded box. Auto and unknown ratios return
// the padded box unchanged.
func CalculateOutputSize(w, h float64, ar AspectRatio) Size {
	baseW := int(math.Ceil(w + Padding*2))
	baseH := int(math.Ceil(h + Padding*2))

	r, ok := ar.Value()
	if !ok {
		return Size{Width: baseW, Height: baseH}
	}

	widthFromHeight := int(math.Ceil(float64(baseH) * r))
	if widthFromHeight >= baseW {
		return Size{Width: widthFromHeight, Height: baseH}
	}
	return Size{Width: baseW, Height: int(math.Ceil(float64(baseW) / r))}
}
