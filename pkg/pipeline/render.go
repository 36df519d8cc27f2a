package pipeline

import (
	"context"
	"image"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/render/code"
	"github.com/younextz/screenshot-styler/pkg/render/raster"
	"github.com/younextz/screenshot-styler/pkg/render/sink"
)

// Render produces format from the composer input. shot is the decoded
// screenshot, needed for the raster formats only.
func Render(ctx context.Context, format string, o sink.Options, shot image.Image, opts *Options) ([]byte, error) {
	svgOpts := opts.SVGOptions()

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(o, svgOpts...)
	case FormatPNG:
		data, err = raster.PNG(ctx, o, shot, raster.Options{PreferRSVG: opts.PreferRSVG, Assets: opts.Assets, SVGOptions: svgOpts})
	case FormatPNG4K:
		data, err = raster.PNG(ctx, o, shot, raster.Options{LongSide: raster.UHDLongSide, PreferRSVG: opts.PreferRSVG, Assets: opts.Assets, SVGOptions: svgOpts})
	case FormatPDF:
		data, err = raster.ToPDF(ctx, sink.RenderSVG(o, svgOpts...))
	default:
		return nil, ValidateFormat(format)
	}
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeRender, err, "render %s", format)
	}
	return data, nil
}

// RenderCode produces format for a code snippet. Raster formats need
// rsvg-convert since the in-process rasteriser does not draw text.
func RenderCode(ctx context.Context, format string, o code.Options) ([]byte, error) {
	svg := code.RenderSVG(o)
	if format == FormatSVG {
		return svg, nil
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if !raster.RSVGAvailable() {
		return nil, styerr.New(styerr.ErrCodeUnsupported, "%s export of code snippets requires librsvg (rsvg-convert)", format)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPNG:
		data, err = raster.ToPNG(ctx, svg, 0)
	case FormatPNG4K:
		size := code.CanvasSize(o)
		width := raster.UHDLongSide
		if size.Height > size.Width {
			width = raster.UHDLongSide * size.Width / size.Height
		}
		data, err = raster.ToPNG(ctx, svg, width)
	case FormatPDF:
		data, err = raster.ToPDF(ctx, svg)
	}
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeRender, err, "render %s", format)
	}
	return data, nil
}
