package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/younextz/screenshot-styler/pkg/render/preset"
)

// Card is where a screenshot is pasted.
type Card struct {
	X, Y, W, H float64
	Radius     float64
	Shadow     preset.Shadow
}

// Compose paints shot into card on top of bg and returns a new image. The
// screenshot is scaled to the card and clipped to its rounded corners.
func Compose(bg image.Image, shot image.Image, card Card) *image.RGBA {
	b := bg.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, bg, b.Min, draw.Src)

	if !card.Shadow.IsZero() {
		drawShadow(out, card)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, int(math.Round(card.W)), int(math.Round(card.H))))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), shot, shot.Bounds(), xdraw.Src, nil)

	dc := gg.NewContextForRGBA(out)
	dc.DrawRoundedRectangle(card.X, card.Y, card.W, card.H, card.Radius)
	dc.Clip()
	dc.SetColor(color.White)
	dc.DrawRectangle(card.X, card.Y, card.W, card.H)
	dc.Fill()
	dc.DrawImage(scaled, int(math.Round(card.X)), int(math.Round(card.Y)))
	dc.ResetClip()
	return out
}

// drawShadow approximates feDropShadow: a black rounded rect at the shadow's
// opacity, offset by dy, Gaussian blurred by its standard deviation.
func drawShadow(dst *image.RGBA, card Card) {
	b := dst.Bounds()
	layer := gg.NewContext(b.Dx(), b.Dy())
	layer.SetRGBA(0, 0, 0, card.Shadow.Opacity)
	layer.DrawRoundedRectangle(card.X-float64(b.Min.X), card.Y+float64(card.Shadow.DY)-float64(b.Min.Y), card.W, card.H, card.Radius)
	layer.Fill()

	blurred := imaging.Blur(layer.Image(), float64(card.Shadow.StdDeviation))
	draw.Draw(dst, b, blurred, image.Point{}, draw.Over)
}

// FitLongSide scales img so its longer side is exactly long pixels.
func FitLongSide(img image.Image, long int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() >= b.Dy() {
		return imaging.Resize(img, long, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, long, imaging.Lanczos)
}
