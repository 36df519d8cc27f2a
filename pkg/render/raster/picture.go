package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/younextz/screenshot-styler/pkg/render/assets"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// pictureLayer returns the loaded background picture for id scaled to cover
// w×h and centred, matching preserveAspectRatio="xMidYMid slice". ok is
// false when the provider has not loaded the picture.
func pictureLayer(p *assets.Provider, id preset.ID, w, h int) (img image.Image, ok bool, err error) {
	u, ok := p.Get(id)
	if !ok {
		return nil, false, nil
	}
	data, mime, err := assets.DecodeDataURL(u)
	if err != nil {
		return nil, false, err
	}
	if mime == "image/svg+xml" {
		m, err := Rasterize(data, w, h)
		if err != nil {
			return nil, false, err
		}
		return m, true, nil
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decode %s background: %w", id, err)
	}
	return imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos), true, nil
}

// underlay paints layer beneath fg and returns the result.
func underlay(fg *image.RGBA, layer image.Image) *image.RGBA {
	b := fg.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, layer, layer.Bounds().Min, draw.Src)
	draw.Draw(out, b, fg, b.Min, draw.Over)
	return out
}
