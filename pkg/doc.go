// Package pkg provides the libraries behind screenshot-styler.
//
// # Overview
//
// screenshot-styler places a screenshot on a decorative background (gradient,
// mesh, solid, pattern or picture), wraps it in a rounded card with a shadow
// and an optional macOS-style title bar, and exports the result as SVG, PNG or
// PDF. Code snippets and tweets are turned into screenshots first, then styled
// the same way. The pkg directory is organized into four areas:
//
//  1. [render] - The composition engine (catalogues, layout, SVG document)
//  2. [pipeline] - Orchestration (acquire → validate → render → export)
//  3. [integrations] - External HTTP clients (tweet embeds, picture assets)
//  4. Infrastructure - [cache], [settings], [config], [errors], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	Image file / stdin / clipboard / code / tweet URL
//	         ↓
//	    [acquire] package (decode, sniff MIME, measure)
//	         ↓
//	    [render/preset] + [render/palette] (resolve the style)
//	         ↓
//	    [render/sink] package (layout + SVG document)
//	         ↓
//	    [render/raster] package (SVG → PNG/PDF)
//	         ↓
//	    [export] package (file, clipboard)
//
// # Quick Start
//
// Style a screenshot and write an SVG:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/younextz/screenshot-styler/pkg/cache"
//	    "github.com/younextz/screenshot-styler/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	defer runner.Close()
//
//	res, err := runner.Execute(context.Background(),
//	    pipeline.Input{Path: "shot.png"},
//	    pipeline.Options{Preset: "gradient-sunset", Palette: "sunset-warm"})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("styled.svg", res.Artifacts["svg"], 0o644)
//
// # Main Packages
//
// ## Rendering
//
// [render] - Shared geometry: aspect ratios, canvas sizing and the card fit.
//
//   - [render/preset]: The preset catalogue (background kind, radius, shadow)
//   - [render/palette]: Colour palettes and custom palette loading
//   - [render/background]: Gradient, mesh, solid and pattern fills
//   - [render/frame]: Title bars and frame styles
//   - [render/animation]: Optional SVG animations and reduced motion
//   - [render/assets]: Picture backgrounds (directory or HTTP)
//   - [render/markup]: Escaping and attribute helpers for SVG output
//   - [render/sink]: The document writer producing the final SVG
//   - [render/raster]: PNG and PDF conversion, with rsvg-convert when present
//   - [render/code]: Syntax-highlighted code cards via chroma
//   - [render/tweet]: Tweet cards drawn with gg and freetype
//
// ## Pipeline
//
// [pipeline] - The single entry point used by the CLI and the HTTP server, so
// both produce identical artifacts for identical options. Results are cached
// by a hash of the input bytes and the options.
//
// [acquire] - Loads the screenshot from a path, reader or the clipboard.
//
// [export] - File naming, writing and clipboard delivery.
//
// ## Infrastructure
//
// [cache] - File, Redis and null caches behind one interface, with TTLs per
// entry kind.
//
// [settings] - Remembered user choices stored in a file, Redis or MongoDB.
//
// [config] - TOML/YAML configuration with validation.
//
// [server] - The chi-based HTTP API.
//
// [errors] - Coded errors shared by every entry point.
//
// [observability] - Pipeline hooks for logging.
//
// [render]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/pipeline
// [integrations]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/cache
// [settings]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/settings
// [config]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/config
// [errors]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/errors
// [observability]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/observability
// [server]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/server
// [acquire]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/acquire
// [export]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/export
// [render/preset]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/preset
// [render/palette]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/palette
// [render/background]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/background
// [render/frame]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/frame
// [render/animation]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/animation
// [render/assets]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/assets
// [render/markup]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/markup
// [render/sink]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/sink
// [render/raster]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/raster
// [render/code]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/code
// [render/tweet]: https://pkg.go.dev/github.com/younextz/screenshot-styler/pkg/render/tweet
package pkg
