// Package tweet draws a fetched tweet as a white rounded card. The resulting
// PNG is styled like any other screenshot.
package tweet

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/younextz/screenshot-styler/pkg/fonts"
	"github.com/younextz/screenshot-styler/pkg/integrations/twitter"
)

// Card metrics in pixels.
const (
	DefaultWidth = 720

	padding         = 32
	avatarSize      = 44
	headerGap       = 16
	bodyFontSize    = 20
	bodyLineHeight  = 30
	metaFontSize    = 14
	metaLineHeight  = 20
	metaGap         = 16
	timestampGap    = 18
	paragraphGap    = 12
	titleFontSize   = 18
	initialFontSize = 16
	cardRadius      = 28
)

// Card colours.
const (
	colorCard     = "#ffffff"
	colorBorder   = "#e2e8f0"
	colorInitials = "#334155"
	colorText     = "#0f172a"
	colorMuted    = "#64748b"
	colorMetrics  = "#475569"
)

// Result is a rendered card.
type Result struct {
	PNG    []byte
	Width  int
	Height int
}

// Measurer returns the advance width of s.
type Measurer func(s string) float64

type faces struct {
	body, meta, title, initials font.Face
}

func loadFaces() (faces, error) {
	var f faces
	var err error
	if f.body, err = fonts.Face(fonts.Regular, bodyFontSize); err != nil {
		return f, err
	}
	if f.meta, err = fonts.Face(fonts.Regular, metaFontSize); err != nil {
		return f, err
	}
	if f.title, err = fonts.Face(fonts.Bold, titleFontSize); err != nil {
		return f, err
	}
	f.initials, err = fonts.Face(fonts.Bold, initialFontSize)
	return f, err
}

// Render draws t as a PNG card. A width of zero or less uses DefaultWidth.
func Render(t *twitter.Tweet, width int) (*Result, error) {
	img, err := Draw(t, width)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	dc := gg.NewContextForRGBA(img)
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode tweet card: %w", err)
	}
	b := img.Bounds()
	return &Result{PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

// Draw is Render without the PNG encoding.
func Draw(t *twitter.Tweet, width int) (*image.RGBA, error) {
	if t == nil {
		return nil, fmt.Errorf("tweet is nil")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	f, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	measure := gg.NewContext(1, 1)
	measure.SetFontFace(f.body)
	lines := Wrap(func(s string) float64 { w, _ := measure.MeasureString(s); return w }, t.Text, float64(width-padding*2))
	hasTimestamp := t.Timestamp != ""
	metrics := Metrics(t.Retweets, t.Likes)
	height := Height(lines, hasTimestamp, metrics != "")

	dc := gg.NewContext(width, height)
	dc.DrawRoundedRectangle(0.5, 0.5, float64(width)-1, float64(height)-1, cardRadius)
	dc.SetHexColor(colorCard)
	dc.FillPreserve()
	dc.SetHexColor(colorBorder)
	dc.SetLineWidth(1)
	dc.Stroke()

	ax, ay := float64(padding), float64(padding)
	dc.SetHexColor(colorBorder)
	dc.DrawCircle(ax+avatarSize/2, ay+avatarSize/2, avatarSize/2)
	dc.Fill()
	if initials := Initials(t.Author); initials != "" {
		dc.SetFontFace(f.initials)
		dc.SetHexColor(colorInitials)
		dc.DrawStringAnchored(initials, ax+avatarSize/2, ay+avatarSize/2, 0.5, 0.35)
	}

	nameX, nameY := ax+avatarSize+14, ay+2
	author := t.Author
	if author == "" {
		author = "Unknown"
	}
	dc.SetFontFace(f.title)
	dc.SetHexColor(colorText)
	dc.DrawStringAnchored(author, nameX, nameY, 0, 1)
	nameWidth, _ := dc.MeasureString(author)
	if t.Handle != "" {
		dc.SetFontFace(f.meta)
		dc.SetHexColor(colorMuted)
		dc.DrawStringAnchored("@"+t.Handle, nameX+nameWidth+8, nameY+2, 0, 1)
	}

	y := ay + avatarSize + headerGap
	dc.SetFontFace(f.body)
	dc.SetHexColor(colorText)
	for _, line := range lines {
		if line == "" {
			y += paragraphGap
			continue
		}
		dc.DrawStringAnchored(line, padding, y, 0, 1)
		y += bodyLineHeight
	}

	if hasTimestamp {
		y += timestampGap
		dc.SetFontFace(f.meta)
		dc.SetHexColor(colorMuted)
		dc.DrawStringAnchored(t.Timestamp, padding, y, 0, 1)
		y += metaLineHeight
	}
	if metrics != "" {
		y += metaGap
		dc.SetFontFace(f.meta)
		dc.SetHexColor(colorMetrics)
		dc.DrawStringAnchored(metrics, padding, y, 0, 1)
	}

	rgba, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected image type %T", dc.Image())
	}
	return rgba, nil
}

// Height returns the card height for wrapped body lines.
func Height(lines []string, hasTimestamp, hasMetrics bool) int {
	h := float64(padding + avatarSize + headerGap + padding)
	for _, l := range lines {
		if l == "" {
			h += paragraphGap
		} else {
			h += bodyLineHeight
		}
	}
	if hasTimestamp {
		h += timestampGap + metaLineHeight
	}
	if hasMetrics {
		h += metaGap + metaLineHeight
	}
	return int(math.Ceil(h))
}

// Metrics formats the engagement line, e.g. "3 Retweets · 12 Likes". Zero
// counts are left out.
func Metrics(retweets, likes int) string {
	var parts []string
	if retweets > 0 {
		parts = append(parts, fmt.Sprintf("%d Retweets", retweets))
	}
	if likes > 0 {
		parts = append(parts, fmt.Sprintf("%d Likes", likes))
	}
	return strings.Join(parts, " · ")
}

// Initials returns up to two upper-case letters for an avatar: the first
// letters of the first two words, or the first two letters of a single word.
func Initials(author string) string {
	parts := strings.Fields(author)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		r := []rune(parts[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	}
	a, _ := utf8.DecodeRuneInString(parts[0])
	b, _ := utf8.DecodeRuneInString(parts[1])
	return strings.ToUpper(string([]rune{a, b}))
}

// Wrap breaks text into lines no wider than maxWidth. Each newline starts a
// new paragraph and an empty string marks the gap between paragraphs. Words
// wider than maxWidth are split by character.
func Wrap(measure Measurer, text string, maxWidth float64) []string {
	paragraphs := strings.Split(text, "\n")
	var lines []string
	for i, p := range paragraphs {
		line := ""
		for _, word := range strings.Fields(p) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			if measure(word) <= maxWidth {
				line = word
				continue
			}
			lines = append(lines, splitWord(measure, word, maxWidth)...)
			line = ""
		}
		if line != "" {
			lines = append(lines, line)
		}
		if i < len(paragraphs)-1 {
			lines = append(lines, "")
		}
	}
	return lines
}

func splitWord(measure Measurer, word string, maxWidth float64) []string {
	var out []string
	rest := []rune(word)
	for len(rest) > 0 {
		n := len(rest)
		for n > 1 && measure(string(rest[:n])) > maxWidth {
			n--
		}
		out = append(out, string(rest[:n]))
		rest = rest[n:]
	}
	return out
}
