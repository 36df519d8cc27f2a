// Package render is the root of the screenshot composition engine.
//
// # Overview
//
// The engine turns a screenshot (or a rendered tweet card or code snippet)
// into one self-contained SVG document: a styled background, optional device
// or browser chrome, a drop shadow, and the image itself clipped to rounded
// corners. Rendering is pure and deterministic: the same inputs always yield
// byte-identical output.
//
// This package holds the canvas geometry shared by every sub-package:
//
//   - [CalculateOutputSize]: canvas size from image size and aspect ratio
//   - [AspectRatio]: the supported output ratios
//
// # Sub-packages
//
//   - [markup]: number formatting and XML escaping
//   - [palette]: colour palettes and safe swatch lookup
//   - [preset]: the closed preset catalogue and per-preset card styles
//   - [animation]: SMIL animate/animateTransform helpers
//   - [background]: background generators, one per background preset
//   - [frame]: title bars, device bezels and decorative frame styles
//   - [assets]: preloaded picture backgrounds as data URLs
//   - [sink]: the composer that assembles the final SVG document
//   - [raster]: SVG to PNG conversion, including 4K export
//   - [code]: syntax-highlighted code snippet documents
//   - [tweet]: tweet cards drawn as PNG images
//
// [markup]: github.com/younextz/screenshot-styler/pkg/render/markup
// [palette]: github.com/younextz/screenshot-styler/pkg/render/palette
// [preset]: github.com/younextz/screenshot-styler/pkg/render/preset
// [animation]: github.com/younextz/screenshot-styler/pkg/render/animation
// [background]: github.com/younextz/screenshot-styler/pkg/render/background
// [frame]: github.com/younextz/screenshot-styler/pkg/render/frame
// [assets]: github.com/younextz/screenshot-styler/pkg/render/assets
// [sink]: github.com/younextz/screenshot-styler/pkg/render/sink
// [raster]: github.com/younextz/screenshot-styler/pkg/render/raster
// [code]: github.com/younextz/screenshot-styler/pkg/render/code
// [tweet]: github.com/younextz/screenshot-styler/pkg/render/tweet
package render
