// Package code renders source code snippets as styled SVG cards.
//
// A snippet is tokenised with chroma, coloured with one of the built-in
// editor themes and laid out as monospace <text> rows on a rounded card. The
// card sits on one of the code backgrounds (see [Presets]) or, for the
// frame and card preset ids shared with screenshots, on a flat base swatch.
//
//	svg := code.RenderSVG(code.Options{
//		Preset:   code.GradientSoft,
//		Palette:  palette.Default(),
//		Code:     src,
//		Theme:    "nord",
//		Language: "go",
//	})
package code
