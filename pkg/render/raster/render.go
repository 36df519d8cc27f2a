package raster

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"github.com/younextz/screenshot-styler/pkg/render/assets"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
	"github.com/younextz/screenshot-styler/pkg/render/sink"
)

// UHDLongSide is the long side of a 4K export.
const UHDLongSide = 3840

// Options control a PNG render.
type Options struct {
	// LongSide rescales the result so its longer side has this many pixels.
	// Zero keeps the canvas size.
	LongSide int
	// PreferRSVG uses rsvg-convert when it is installed.
	PreferRSVG bool
	// Assets supplies picture backgrounds to the in-process renderer, which
	// cannot resolve the SVG's <image> reference itself.
	Assets     *assets.Provider
	SVGOptions []sink.SVGOption
}

// PNG renders o to PNG bytes. shot is the decoded screenshot named by
// o.ImageData.
func PNG(ctx context.Context, o sink.Options, shot image.Image, opts Options) ([]byte, error) {
	g := sink.Layout(o)

	if opts.PreferRSVG && RSVGAvailable() {
		width := 0
		if opts.LongSide > 0 {
			width = opts.LongSide
			if g.Height > g.Width {
				width = int(float64(opts.LongSide) * float64(g.Width) / float64(g.Height))
			}
		}
		return ToPNG(ctx, sink.RenderSVG(o, opts.SVGOptions...), width)
	}

	img, err := Image(o, shot, opts)
	if err != nil {
		return nil, err
	}
	var out image.Image = img
	if opts.LongSide > 0 {
		out = FitLongSide(img, opts.LongSide)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Image renders o in process at canvas size. Picture presets are drawn
// from opts.Assets; without a loaded picture the canvas stays transparent
// behind the card.
func Image(o sink.Options, shot image.Image, opts Options) (*image.RGBA, error) {
	g := sink.Layout(o)
	bgOpts := append([]sink.SVGOption{}, opts.SVGOptions...)
	if opts.Assets != nil {
		bgOpts = append(bgOpts, sink.WithAssets(opts.Assets))
	}
	bgOpts = append(bgOpts, sink.WithoutImage())
	bg, err := Rasterize(sink.RenderSVG(o, bgOpts...), g.Width, g.Height)
	if err != nil {
		return nil, err
	}
	if g.Picture {
		layer, ok, err := pictureLayer(opts.Assets, o.Preset, g.Width, g.Height)
		if err != nil {
			return nil, err
		}
		if ok {
			bg = underlay(bg, layer)
		}
	}
	if shot == nil {
		return bg, nil
	}
	x, y, w, h := g.ImageRect()
	return Compose(bg, shot, Card{
		X: x, Y: y, W: w, H: h,
		Radius: float64(g.CardRadius),
		Shadow: preset.StyleFor(o.Preset).Shadow,
	}), nil
}
