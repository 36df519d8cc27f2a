// Package fonts provides the Go font family for raster drawing and for
// embedding into SVG documents.
//
// The TTF data ships with golang.org/x/image, so no font files are needed at
// runtime. Parsed fonts and base64 encodings are computed once.
package fonts

import (
	"encoding/base64"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Style selects a face of the family.
type Style int

const (
	Regular Style = iota
	Bold
	Mono
)

// MonoFamily is the CSS font stack used for code snippets. The embedded Go
// Mono comes first so exported SVGs look the same everywhere.
const MonoFamily = `'Go Mono', 'JetBrains Mono', 'Fira Code', 'SF Mono', Menlo, Consolas, monospace`

// SansFamily is the CSS stack for UI text.
const SansFamily = `'Go', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif`

var ttf = map[Style][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Mono:    gomono.TTF,
}

var (
	parseOnce sync.Once
	parsed    map[Style]*truetype.Font
	parseErr  error
)

func load() (map[Style]*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed = make(map[Style]*truetype.Font, len(ttf))
		for s, data := range ttf {
			f, err := truetype.Parse(data)
			if err != nil {
				parseErr = err
				return
			}
			parsed[s] = f
		}
	})
	return parsed, parseErr
}

// Font returns the parsed font for s.
func Font(s Style) (*truetype.Font, error) {
	m, err := load()
	if err != nil {
		return nil, err
	}
	return m[s], nil
}

// Face returns a face of size points at 72 DPI, so one point is one pixel.
func Face(s Style, size float64) (font.Face, error) {
	f, err := Font(s)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// TTF returns the raw font data for s.
func TTF(s Style) []byte { return ttf[s] }

var (
	monoBase64     string
	monoBase64Once sync.Once
)

// MonoBase64 returns Go Mono as base64, for an @font-face data URL.
func MonoBase64() string {
	monoBase64Once.Do(func() {
		monoBase64 = base64.StdEncoding.EncodeToString(gomono.TTF)
	})
	return monoBase64
}

// MonoFontFace returns an SVG <style> rule declaring the embedded Go Mono.
func MonoFontFace() string {
	return `@font-face { font-family: 'Go Mono'; src: url(data:font/ttf;base64,` + MonoBase64() + `) format('truetype'); }`
}
