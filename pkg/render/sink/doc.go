// Package sink composes the final SVG document for a styled screenshot.
//
// [RenderSVG] is pure: the same [Options] always produce the same bytes. It
// computes the canvas from the image size, title bar and aspect ratio, then
// layers the preset's background, an optional decorative frame style, the
// preset's chrome and finally the screenshot inside a rounded, shadowed card.
//
// Picture background presets take a separate path: the canvas is sized so the
// screenshot fills about 80% of its width with equal padding on every side,
// and the screenshot is clipped through a clipPath instead of an inset.
//
//	svg := sink.RenderSVG(sink.Options{
//	    Preset:      preset.GradientSunset,
//	    Palette:     palette.Default(),
//	    TitleBar:    frame.TitleBarNone,
//	    AspectRatio: render.AspectWide,
//	    ImageData:   dataURL,
//	    ImageWidth:  800,
//	    ImageHeight: 400,
//	}, sink.WithAssets(provider))
package sink
