// Package raster turns composed SVG documents into PNG images.
//
// Two paths exist. When rsvg-convert (librsvg) is installed, [ToPNG] hands it
// the complete document, which renders filters, clip paths and embedded
// images faithfully. Otherwise [PNG] renders in process: the document is
// composed without the screenshot ([sink.WithoutImage]), rasterised with
// oksvg, and the decoded screenshot is pasted into the card with gg, with a
// blurred drop shadow drawn underneath.
package raster
