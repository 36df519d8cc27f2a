package sink

import (
	"math"

	"github.com/younextz/screenshot-styler/pkg/render"
	"github.com/younextz/screenshot-styler/pkg/render/frame"
	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// pictureWidthRatio is the share of the canvas width the screenshot takes on
// picture backgrounds.
const pictureWidthRatio = 0.8

// Geometry is where everything lands on the canvas.
type Geometry struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	FrameX     float64 `json:"frame_x"`
	ContentTop float64 `json:"content_top"`
	ImageY     float64 `json:"image_y"`

	ImageWidth     float64 `json:"image_width"`
	ImageHeight    float64 `json:"image_height"`
	TitleBarHeight int     `json:"title_bar_height"`
	CardRadius     int     `json:"card_radius"`
	Picture        bool    `json:"picture"`
}

// ImageRect returns the screenshot rectangle as x, y, w, h.
func (g Geometry) ImageRect() (x, y, w, h float64) {
	return g.FrameX, g.ImageY, g.ImageWidth, g.ImageHeight
}

// Layout computes the geometry RenderSVG uses for o.
func Layout(o Options) Geometry {
	w, h := float64(o.ImageWidth), float64(o.ImageHeight)
	radius := preset.StyleFor(o.Preset).CardRadius

	if o.Preset.IsPicture() {
		picW := math.Ceil(w / pictureWidthRatio)
		pad := (picW - w) / 2
		picH := math.Ceil(h + pad*2)
		return Geometry{
			Width:       int(picW),
			Height:      int(picH),
			FrameX:      pad,
			ContentTop:  pad,
			ImageY:      pad,
			ImageWidth:  w,
			ImageHeight: h,
			CardRadius:  radius,
			Picture:     true,
		}
	}

	bar := frame.TitleBarHeight(o.Preset, o.TitleBar)
	contentH := h + float64(bar)
	size := render.CalculateOutputSize(w, contentH, o.AspectRatio)
	frameX := (float64(size.Width) - w) / 2
	contentTop := (float64(size.Height) - contentH) / 2

	return Geometry{
		Width:          size.Width,
		Height:         size.Height,
		FrameX:         frameX,
		ContentTop:     contentTop,
		ImageY:         contentTop + float64(bar),
		ImageWidth:     w,
		ImageHeight:    h,
		TitleBarHeight: bar,
		CardRadius:     radius,
	}
}
